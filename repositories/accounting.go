//go:generate go run go.uber.org/mock/mockgen -source=accounting.go -destination=../mocks/mock_accounting_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"

	"household-intranet/domain"

	"github.com/dgraph-io/badger/v4"
)

type IAccountingRepository interface {
	GetAccounting(number int) (*domain.Accounting, error)
	InsertAccounting(accounting *domain.Accounting) (*domain.Accounting, error)
	// AddPostingLine stores the line under the next free line number and returns it.
	AddPostingLine(accountingNumber int, line domain.PostingLine) (domain.PostingLine, error)
}

type AccountingRepository struct {
	store
}

func NewAccountingRepository(db *badger.DB, log *slog.Logger) IAccountingRepository {
	return &AccountingRepository{store{db: db, log: log}}
}

// The accounting is stored as one document, posting lines included.
func accountingKey(number int) string { return fmt.Sprintf("accounting:%010d", number) }

func (r *AccountingRepository) GetAccounting(number int) (*domain.Accounting, error) {
	var accounting domain.Accounting
	err := r.db.View(func(txn *badger.Txn) error {
		return get(txn, accountingKey(number), &accounting)
	})
	if err != nil {
		return nil, translate(err, "accounting", number, "reading accounting")
	}
	return &accounting, nil
}

func (r *AccountingRepository) InsertAccounting(accounting *domain.Accounting) (*domain.Accounting, error) {
	err := r.db.Update(func(txn *badger.Txn) error {
		taken, err := exists(txn, accountingKey(accounting.Number))
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("accounting %d already exists", accounting.Number)
		}
		return set(txn, accountingKey(accounting.Number), accounting)
	})
	if err != nil {
		return nil, translate(err, "accounting", accounting.Number, "inserting accounting")
	}
	r.log.Debug("Accounting inserted", "number", accounting.Number)
	return accounting, nil
}

func (r *AccountingRepository) AddPostingLine(accountingNumber int, line domain.PostingLine) (domain.PostingLine, error) {
	err := r.db.Update(func(txn *badger.Txn) error {
		var accounting domain.Accounting
		if err := get(txn, accountingKey(accountingNumber), &accounting); err != nil {
			return err
		}
		line.LineNumber = accounting.NextLineNumber()
		accounting.PostingLines = append(accounting.PostingLines, line)
		return set(txn, accountingKey(accountingNumber), accounting)
	})
	if err != nil {
		return domain.PostingLine{}, translate(err, "accounting", accountingNumber, "adding posting line")
	}
	r.log.Debug("Posting line added", "accounting", accountingNumber, "line", line.LineNumber)
	return line, nil
}
