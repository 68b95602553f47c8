package domain

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type Accounting struct {
	Number          int
	Name            string
	Accounts        []Account
	BudgetAccounts  []BudgetAccount
	ContactAccounts []ContactAccount
	PostingLines    []PostingLine
}

// Account balance is debit minus credit of its posting lines. Credit is the
// overdraft the account may use.
type Account struct {
	Number string
	Name   string
	Credit decimal.Decimal
}

// BudgetAccount.Budget is the net debit allowed per calendar month.
type BudgetAccount struct {
	Number string
	Name   string
	Budget decimal.Decimal
}

type ContactAccount struct {
	Number int
	Name   string
}

type PostingLine struct {
	LineNumber           int
	Date                 time.Time
	Reference            string
	AccountNumber        string
	Description          string
	BudgetAccountNumber  string
	Debit                decimal.Decimal
	Credit               decimal.Decimal
	ContactAccountNumber int
}

type WarningReason string

const (
	WarningAccountOverdrawn WarningReason = "ACCOUNT_OVERDRAWN"
	WarningBudgetExceeded   WarningReason = "BUDGET_EXCEEDED"
)

type PostingWarning struct {
	Reason        WarningReason
	AccountNumber string
	Amount        decimal.Decimal
}

func (a *Accounting) Account(number string) (Account, bool) {
	return lo.Find(a.Accounts, func(acc Account) bool { return acc.Number == number })
}

func (a *Accounting) BudgetAccount(number string) (BudgetAccount, bool) {
	return lo.Find(a.BudgetAccounts, func(acc BudgetAccount) bool { return acc.Number == number })
}

func (a *Accounting) ContactAccount(number int) (ContactAccount, bool) {
	return lo.Find(a.ContactAccounts, func(acc ContactAccount) bool { return acc.Number == number })
}

func (a *Accounting) NextLineNumber() int {
	return lo.Max(lo.Map(a.PostingLines, func(l PostingLine, _ int) int { return l.LineNumber })) + 1
}

// Balance is debit minus credit over every line posted on the account.
func (a *Accounting) Balance(accountNumber string) decimal.Decimal {
	return lo.Reduce(a.PostingLines, func(sum decimal.Decimal, l PostingLine, _ int) decimal.Decimal {
		if l.AccountNumber != accountNumber {
			return sum
		}
		return sum.Add(l.Debit).Sub(l.Credit)
	}, decimal.Zero)
}

// BudgetUsage is the net debit on the budget account within the month of at.
func (a *Accounting) BudgetUsage(budgetAccountNumber string, at time.Time) decimal.Decimal {
	year, month, _ := at.Date()
	return lo.Reduce(a.PostingLines, func(sum decimal.Decimal, l PostingLine, _ int) decimal.Decimal {
		y, m, _ := l.Date.Date()
		if l.BudgetAccountNumber != budgetAccountNumber || y != year || m != month {
			return sum
		}
		return sum.Add(l.Debit).Sub(l.Credit)
	}, decimal.Zero)
}

// RecordPostingLine appends the line and reports the warnings it raises.
func (a *Accounting) RecordPostingLine(line PostingLine) []PostingWarning {
	a.PostingLines = append(a.PostingLines, line)

	warnings := make([]PostingWarning, 0)
	if account, ok := a.Account(line.AccountNumber); ok {
		available := account.Credit.Add(a.Balance(account.Number))
		if available.IsNegative() {
			warnings = append(warnings, PostingWarning{
				Reason:        WarningAccountOverdrawn,
				AccountNumber: account.Number,
				Amount:        available.Abs(),
			})
		}
	}
	if budget, ok := a.BudgetAccount(line.BudgetAccountNumber); ok {
		usage := a.BudgetUsage(budget.Number, line.Date)
		if usage.GreaterThan(budget.Budget) {
			warnings = append(warnings, PostingWarning{
				Reason:        WarningBudgetExceeded,
				AccountNumber: budget.Number,
				Amount:        usage.Sub(budget.Budget),
			})
		}
	}
	return warnings
}

// PostingResult is the outcome of recording one posting line.
type PostingResult struct {
	AccountingNumber int
	Line             PostingLine
	Warnings         []PostingWarning
}
