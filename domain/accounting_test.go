package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestAccounting() *Accounting {
	return &Accounting{
		Number: 1,
		Name:   "Household budget",
		Accounts: []Account{
			{Number: "BANK", Name: "Bank", Credit: decimal.NewFromInt(100)},
		},
		BudgetAccounts: []BudgetAccount{
			{Number: "FOOD", Name: "Groceries", Budget: decimal.NewFromInt(500)},
		},
	}
}

func TestAccounting_RecordPostingLine_WithoutWarnings(t *testing.T) {
	accounting := newTestAccounting()
	date := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	warnings := accounting.RecordPostingLine(PostingLine{
		LineNumber:          accounting.NextLineNumber(),
		Date:                date,
		AccountNumber:       "BANK",
		BudgetAccountNumber: "FOOD",
		Debit:               decimal.NewFromInt(200),
	})

	require.Empty(t, warnings)
	require.NotNil(t, warnings)
	require.Equal(t, 2, accounting.NextLineNumber())
	require.True(t, decimal.NewFromInt(200).Equal(accounting.Balance("BANK")))
}

func TestAccounting_RecordPostingLine_ReportsOverdraftAndBudget(t *testing.T) {
	accounting := newTestAccounting()
	date := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	accounting.RecordPostingLine(PostingLine{LineNumber: 1, Date: date, AccountNumber: "BANK", BudgetAccountNumber: "FOOD", Debit: decimal.NewFromInt(450)})

	warnings := accounting.RecordPostingLine(PostingLine{
		LineNumber:          2,
		Date:                date.AddDate(0, 0, 3),
		AccountNumber:       "BANK",
		BudgetAccountNumber: "FOOD",
		Debit:               decimal.NewFromInt(100),
		Credit:              decimal.NewFromInt(750),
	})

	require.Len(t, warnings, 1)
	require.Equal(t, WarningAccountOverdrawn, warnings[0].Reason)
	require.True(t, decimal.NewFromInt(100).Equal(warnings[0].Amount))

	warnings = accounting.RecordPostingLine(PostingLine{LineNumber: 3, Date: date, BudgetAccountNumber: "FOOD", Debit: decimal.NewFromInt(800)})
	require.Len(t, warnings, 1)
	require.Equal(t, WarningBudgetExceeded, warnings[0].Reason)
	require.Equal(t, "FOOD", warnings[0].AccountNumber)
}

func TestAccounting_BudgetUsage_OnlyCountsTheMonth(t *testing.T) {
	accounting := newTestAccounting()
	october := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	accounting.PostingLines = []PostingLine{
		{LineNumber: 1, Date: october, BudgetAccountNumber: "FOOD", Debit: decimal.NewFromInt(300)},
		{LineNumber: 2, Date: october.AddDate(0, -1, 0), BudgetAccountNumber: "FOOD", Debit: decimal.NewFromInt(900)},
	}

	require.True(t, decimal.NewFromInt(300).Equal(accounting.BudgetUsage("FOOD", october)))
}
