// Package mapping turns persisted domain entities into response payloads.
package mapping

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// Mapper translates a source into a target, optionally localized to culture.
type Mapper[S, T any] interface {
	Map(source S, culture language.Tag) (T, error)
}

// Func adapts a plain function to Mapper.
type Func[S, T any] func(source S, culture language.Tag) (T, error)

func (f Func[S, T]) Map(source S, culture language.Tag) (T, error) {
	return f(source, culture)
}

type Identifiable interface {
	Identifier() uuid.UUID
}

// ServiceReceipt acknowledges a state change on an identified entity.
type ServiceReceipt struct {
	Identifier uuid.UUID `json:"identifier"`
	EventDate  time.Time `json:"event_date"`
}

func NewServiceReceiptMapper[S Identifiable](now func() time.Time) Mapper[S, ServiceReceipt] {
	return Func[S, ServiceReceipt](func(source S, _ language.Tag) (ServiceReceipt, error) {
		return ServiceReceipt{
			Identifier: source.Identifier(),
			EventDate:  now().UTC(),
		}, nil
	})
}
