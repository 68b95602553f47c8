package mapping

import (
	"time"

	"household-intranet/domain"
	"household-intranet/errors"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type BookkeepingWarning struct {
	Reason        domain.WarningReason `json:"reason"`
	Text          string               `json:"text"`
	AccountNumber string               `json:"account_number"`
	Amount        decimal.Decimal      `json:"amount"`
}

type BookkeepingResponse struct {
	AccountingNumber int                  `json:"accounting_number"`
	LineNumber       int                  `json:"line_number"`
	PostingDate      time.Time            `json:"posting_date"`
	Reference        string               `json:"reference"`
	AccountNumber    string               `json:"account_number"`
	Debit            decimal.Decimal      `json:"debit"`
	Credit           decimal.Decimal      `json:"credit"`
	Warnings         []BookkeepingWarning `json:"warnings"`
}

var warningTexts = map[language.Tag]map[domain.WarningReason]string{
	language.English: {
		domain.WarningAccountOverdrawn: "The account %s is overdrawn by %s.",
		domain.WarningBudgetExceeded:   "The budget on %s is exceeded by %s.",
	},
	language.Danish: {
		domain.WarningAccountOverdrawn: "Kontoen %s er overtrukket med %s.",
		domain.WarningBudgetExceeded:   "Budgettet på %s er overskredet med %s.",
	},
}

func init() {
	for tag, texts := range warningTexts {
		for reason, text := range texts {
			if err := message.SetString(tag, string(reason), text); err != nil {
				panic(err)
			}
		}
	}
}

func NewBookkeepingMapper() Mapper[domain.PostingResult, BookkeepingResponse] {
	return Func[domain.PostingResult, BookkeepingResponse](mapBookkeeping)
}

func mapBookkeeping(result domain.PostingResult, culture language.Tag) (BookkeepingResponse, error) {
	printer := errors.Printer(culture)
	return BookkeepingResponse{
		AccountingNumber: result.AccountingNumber,
		LineNumber:       result.Line.LineNumber,
		PostingDate:      result.Line.Date,
		Reference:        result.Line.Reference,
		AccountNumber:    result.Line.AccountNumber,
		Debit:            result.Line.Debit,
		Credit:           result.Line.Credit,
		Warnings: lo.Map(result.Warnings, func(w domain.PostingWarning, _ int) BookkeepingWarning {
			return BookkeepingWarning{
				Reason:        w.Reason,
				Text:          printer.Sprintf(string(w.Reason), w.AccountNumber, w.Amount.StringFixed(2)),
				AccountNumber: w.AccountNumber,
				Amount:        w.Amount,
			}
		}),
	}, nil
}
