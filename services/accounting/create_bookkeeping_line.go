package accounting

import (
	"context"
	"log/slog"
	"time"

	"household-intranet/domain"
	"household-intranet/errors"
	"household-intranet/mapping"
	"household-intranet/repositories"
	"household-intranet/services/pipeline"
	"household-intranet/specification"

	"golang.org/x/text/language"
)

const referenceMaxLength = 16

type Options struct {
	PostingDaysBack      int
	DescriptionMaxLength int
	Culture              language.Tag
}

type CreateBookkeepingLinePipeline = pipeline.Pipeline[
	domain.CreateBookkeepingLineCommand,
	*domain.Accounting,
	domain.PostingResult,
	mapping.BookkeepingResponse,
]

// CreateBookkeepingLine posts one line on an account of an accounting.
type CreateBookkeepingLine struct {
	repository  repositories.IAccountingRepository
	validations specification.CommonValidations
	options     Options
	now         func() time.Time
	log         *slog.Logger
}

func NewCreateBookkeepingLine(
	repository repositories.IAccountingRepository,
	validations specification.CommonValidations,
	options Options,
	now func() time.Time,
	log *slog.Logger,
) *CreateBookkeepingLinePipeline {
	strategy := &CreateBookkeepingLine{
		repository:  repository,
		validations: validations,
		options:     options,
		now:         now,
		log:         log,
	}
	descriptor := pipeline.Descriptor{
		Handler:  "CreateBookkeepingLine",
		Command:  "CreateBookkeepingLineCommand",
		Response: "BookkeepingResponse",
	}
	return pipeline.New[domain.CreateBookkeepingLineCommand, *domain.Accounting](descriptor, strategy, mapping.NewBookkeepingMapper(), log).
		WithCulture(func(*domain.Accounting, *domain.CreateBookkeepingLineCommand) language.Tag {
			return options.Culture
		})
}

func (h *CreateBookkeepingLine) Acquire(_ context.Context, command *domain.CreateBookkeepingLineCommand) (*domain.Accounting, error) {
	return h.repository.GetAccounting(command.AccountingNumber)
}

func (h *CreateBookkeepingLine) AddValidationRules(accounting *domain.Accounting, command *domain.CreateBookkeepingLineCommand, spec *specification.Specification) {
	now := h.now()
	year, month, day := now.Date()
	oldest := time.Date(year, month, day, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -h.options.PostingDaysBack)
	postingDate := command.PostingDate.Format(time.DateOnly)
	maxLength := h.options.DescriptionMaxLength

	spec.
		IsSatisfiedBy(func() bool { return !command.PostingDate.Before(oldest) },
			errors.NewBusinessError(errors.CodePostingDateTooOld, postingDate, h.options.PostingDaysBack)).
		IsSatisfiedBy(func() bool { return !command.PostingDate.After(now) },
			errors.NewBusinessError(errors.CodePostingDateInFuture, postingDate))

	if h.validations.HasValue(command.Reference) {
		spec.IsSatisfiedBy(func() bool { return h.validations.IsLengthValid(command.Reference, 1, referenceMaxLength) },
			errors.NewBusinessError(errors.CodeLengthForPropertyIsInvalid, "Reference", 1, referenceMaxLength))
	}

	spec.
		IsSatisfiedBy(func() bool { return h.validations.HasValue(command.AccountNumber) },
			errors.NewBusinessError(errors.CodeValueMustBeGivenForProperty, "AccountNumber")).
		IsSatisfiedBy(func() bool {
			_, ok := accounting.Account(command.AccountNumber)
			return ok
		}, errors.NewBusinessError(errors.CodeAccountNotFound, command.AccountNumber, accounting.Number)).
		IsSatisfiedBy(func() bool { return h.validations.HasValue(command.Description) },
			errors.NewBusinessError(errors.CodeValueMustBeGivenForProperty, "Description")).
		IsSatisfiedBy(func() bool { return h.validations.IsLengthValid(command.Description, 1, maxLength) },
			errors.NewBusinessError(errors.CodeLengthForPropertyIsInvalid, "Description", 1, maxLength)).
		IsSatisfiedBy(func() bool { return !h.validations.ContainsIllegalChar(command.Description) },
			errors.NewBusinessError(errors.CodeValueContainsIllegalChars, "Description"))

	if h.validations.HasValue(command.BudgetAccountNumber) {
		spec.IsSatisfiedBy(func() bool {
			_, ok := accounting.BudgetAccount(command.BudgetAccountNumber)
			return ok
		}, errors.NewBusinessError(errors.CodeBudgetAccountNotFound, command.BudgetAccountNumber, accounting.Number))
	}

	spec.
		IsSatisfiedBy(func() bool { return h.validations.IsGreaterThanOrEqualToZero(command.Debit) },
			errors.NewBusinessError(errors.CodeValueMustBeGreaterOrEqualTo, "Debit")).
		IsSatisfiedBy(func() bool { return h.validations.IsGreaterThanOrEqualToZero(command.Credit) },
			errors.NewBusinessError(errors.CodeValueMustBeGreaterOrEqualTo, "Credit")).
		IsSatisfiedBy(func() bool { return command.Debit.IsPositive() || command.Credit.IsPositive() },
			errors.NewBusinessError(errors.CodeDebitOrCreditRequired))

	if command.ContactAccountNumber != 0 {
		spec.IsSatisfiedBy(func() bool {
			_, ok := accounting.ContactAccount(command.ContactAccountNumber)
			return ok
		}, errors.NewBusinessError(errors.CodeContactAccountNotFound, command.ContactAccountNumber, accounting.Number))
	}
}

func (h *CreateBookkeepingLine) ModifyData(_ context.Context, accounting *domain.Accounting, command *domain.CreateBookkeepingLineCommand, _ *specification.Specification) (domain.PostingResult, error) {
	line := domain.PostingLine{
		LineNumber:           accounting.NextLineNumber(),
		Date:                 command.PostingDate,
		Reference:            command.Reference,
		AccountNumber:        command.AccountNumber,
		Description:          command.Description,
		BudgetAccountNumber:  command.BudgetAccountNumber,
		Debit:                command.Debit,
		Credit:               command.Credit,
		ContactAccountNumber: command.ContactAccountNumber,
	}
	warnings := accounting.RecordPostingLine(line)
	if len(warnings) > 0 {
		h.log.Debug("Posting line raised warnings", "accounting", accounting.Number, "warnings", len(warnings))
	}
	return domain.PostingResult{
		AccountingNumber: accounting.Number,
		Line:             line,
		Warnings:         warnings,
	}, nil
}

func (h *CreateBookkeepingLine) Persist(result domain.PostingResult) (domain.PostingResult, error) {
	line, err := h.repository.AddPostingLine(result.AccountingNumber, result.Line)
	if err != nil {
		return domain.PostingResult{}, err
	}
	result.Line = line
	return result, nil
}
