package repositories

import (
	"testing"
	"time"

	"household-intranet/domain"
	"household-intranet/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_Add_Posting_Lines_Numbers_Them(t *testing.T) {
	req := require.New(t)
	db, log := openTestDB(t)
	repository := NewAccountingRepository(db, log)

	_, err := repository.InsertAccounting(&domain.Accounting{
		Number:   1,
		Name:     "Home",
		Accounts: []domain.Account{{Number: "BANK", Name: "Bank"}},
	})
	req.NoError(err)

	date := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 3; i++ {
		line, err := repository.AddPostingLine(1, domain.PostingLine{
			Date:          date,
			AccountNumber: "BANK",
			Description:   "Groceries",
			Debit:         decimal.NewFromInt(int64(i * 10)),
		})
		req.NoError(err)
		req.Equal(i, line.LineNumber)
	}

	accounting, err := repository.GetAccounting(1)
	req.NoError(err)
	req.Len(accounting.PostingLines, 3)
	req.True(decimal.NewFromInt(60).Equal(accounting.Balance("BANK")))
}

func Test_Accounting_Not_Found(t *testing.T) {
	req := require.New(t)
	db, log := openTestDB(t)
	repository := NewAccountingRepository(db, log)

	_, err := repository.GetAccounting(99)
	req.True(errors.HasCode(err, errors.CodeCantFindObjectByID))

	_, err = repository.AddPostingLine(99, domain.PostingLine{})
	req.True(errors.HasCode(err, errors.CodeCantFindObjectByID))
}

func Test_Insert_Accounting_Twice(t *testing.T) {
	req := require.New(t)
	db, log := openTestDB(t)
	repository := NewAccountingRepository(db, log)

	_, err := repository.InsertAccounting(&domain.Accounting{Number: 2})
	req.NoError(err)
	_, err = repository.InsertAccounting(&domain.Accounting{Number: 2})
	req.True(errors.HasCode(err, errors.CodeRepositoryError))
}
