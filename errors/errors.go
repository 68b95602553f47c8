package errors

import (
	stderrors "errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Kind classifies every error that may reach a caller of a command handler.
type Kind int

const (
	KindBusiness Kind = iota + 1
	KindRepository
	KindSystem
)

func (k Kind) String() string {
	switch k {
	case KindBusiness:
		return "business"
	case KindRepository:
		return "repository"
	case KindSystem:
		return "system"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// IntranetError is a classified error carrying a catalogued message.
type IntranetError struct {
	Kind     Kind
	Code     Code
	Args     []any
	Message  string
	Metadata map[string]string
	Cause    error
}

func (e *IntranetError) Error() string {
	return e.Message
}

func (e *IntranetError) Unwrap() error {
	return e.Cause
}

// Localize renders the message in the given culture, falling back to the base catalog.
func (e *IntranetError) Localize(tag language.Tag) string {
	return Printer(tag).Sprintf(string(e.Code), e.Args...)
}

func newIntranetError(kind Kind, code Code, cause error, args ...any) *IntranetError {
	return &IntranetError{
		Kind:    kind,
		Code:    code,
		Args:    args,
		Message: message.NewPrinter(BaseLocale).Sprintf(string(code), args...),
		Cause:   cause,
	}
}

// NewBusinessError reports a violated business rule.
func NewBusinessError(code Code, args ...any) *IntranetError {
	return newIntranetError(KindBusiness, code, nil, args...)
}

// NewRepositoryError reports that the storage could not find or store an entity.
func NewRepositoryError(code Code, cause error, args ...any) *IntranetError {
	return newIntranetError(KindRepository, code, cause, args...)
}

// NewSystemError reports an unanticipated failure; cause keeps the original error.
func NewSystemError(code Code, cause error, args ...any) *IntranetError {
	return newIntranetError(KindSystem, code, cause, args...)
}

// KindOf returns the kind of the first IntranetError found in err's chain.
func KindOf(err error) (Kind, bool) {
	var ie *IntranetError
	if stderrors.As(err, &ie) {
		return ie.Kind, true
	}
	return 0, false
}

// HasCode reports whether err's chain holds an IntranetError with the given code.
func HasCode(err error, code Code) bool {
	var ie *IntranetError
	return stderrors.As(err, &ie) && ie.Code == code
}

var ErrArgument = fmt.Errorf("invalid argument")

// ArgumentError is a contract violation: a caller passed a nil or unusable argument.
// It is never routed through Build when raised by the pipeline guard.
type ArgumentError struct {
	Param  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrArgument, e.Param, e.Reason)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrArgument
}

func NewArgumentNilError(param string) error {
	return &ArgumentError{Param: param, Reason: "must not be nil"}
}

func NewArgumentError(param, reason string) error {
	return &ArgumentError{Param: param, Reason: reason}
}

// IsArgumentError reports whether err is a contract violation.
func IsArgumentError(err error) bool {
	return stderrors.Is(err, ErrArgument)
}

// ErrHandlerPanic marks a panic recovered from command handler code.
var ErrHandlerPanic = fmt.Errorf("command handler panic")
