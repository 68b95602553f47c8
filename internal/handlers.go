package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"household-intranet/auth"
	"household-intranet/errors"
	"household-intranet/repositories"
	"household-intranet/services/accounting"
	"household-intranet/services/foodwaste"
	"household-intranet/services/household"
	"household-intranet/services/pipeline"
	"household-intranet/specification"

	"github.com/dgraph-io/badger/v4"
)

// Executor decodes one JSON command and runs it through its handler.
type Executor func(ctx context.Context, payload []byte) (any, error)

// Intranet holds every command handler behind the name the CLI knows it by.
type Intranet struct {
	Households  repositories.IHouseholdRepository
	Accountings repositories.IAccountingRepository
	FoodWaste   repositories.IFoodWasteRepository
	Tokens      auth.TokenIssuer
	executors   map[string]Executor
}

func NewIntranet(config Config, db *badger.DB, dispatcher household.IWelcomeLetterDispatcher, now func() time.Time, log *slog.Logger) (*Intranet, error) {
	validations, err := specification.NewCommonValidations(config.IllegalCharacterList())
	if err != nil {
		return nil, fmt.Errorf("illegal characters: %w", err)
	}

	households := repositories.NewHouseholdRepository(db, log)
	accountings := repositories.NewAccountingRepository(db, log)
	foodWaste := repositories.NewFoodWasteRepository(db, log)

	if dispatcher == nil {
		dispatcher = household.NewLogWelcomeLetterDispatcher(log)
	}
	creator := household.NewMemberCreator(households, dispatcher, now, log)

	householdDeps := household.Dependencies{
		Repository:  households,
		Claims:      auth.NewClaimValueProvider(),
		Validations: validations,
		Options: household.Options{
			NameMaxLength:        config.HouseholdNameMaxLen,
			DescriptionMaxLength: config.DescriptionMaxLength,
		},
		Now: now,
		Log: log,
	}
	foodWasteDeps := foodwaste.Dependencies{
		Repository:  foodWaste,
		Validations: validations,
		Now:         now,
		Log:         log,
	}
	bookkeeping := accounting.NewCreateBookkeepingLine(accountings, validations, accounting.Options{
		PostingDaysBack:      config.PostingDaysBack,
		DescriptionMaxLength: config.DescriptionMaxLength,
		Culture:              config.Culture(),
	}, now, log)

	return &Intranet{
		Households:  households,
		Accountings: accountings,
		FoodWaste:   foodWaste,
		Tokens:      NewTokenIssuer(config),
		executors: map[string]Executor{
			"bookkeeping-line-create":         executor(bookkeeping),
			"household-add":                   executor(household.NewHouseholdAdd(householdDeps)),
			"household-update":                executor(household.NewHouseholdUpdate(householdDeps)),
			"household-member-attach":         executor(household.NewHouseholdAddHouseholdMember(householdDeps, creator)),
			"household-member-detach":         executor(household.NewHouseholdRemoveHouseholdMember(householdDeps)),
			"household-member-add":            executor(household.NewHouseholdMemberAdd(householdDeps, creator)),
			"household-member-activate":       executor(household.NewHouseholdMemberActivate(householdDeps)),
			"household-member-accept-privacy": executor(household.NewHouseholdMemberAcceptPrivacyPolicy(householdDeps)),
			"food-item-import":                executor(foodwaste.NewFoodItemImport(foodWasteDeps)),
			"food-group-import":               executor(foodwaste.NewFoodGroupImport(foodWasteDeps)),
		},
	}, nil
}

func executor[C, A, T, R any](p *pipeline.Pipeline[C, A, T, R]) Executor {
	return func(ctx context.Context, payload []byte) (any, error) {
		var command C
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &command); err != nil {
				return nil, errors.NewArgumentError(p.Descriptor().Command, err.Error())
			}
		}
		return p.Run(ctx, &command)
	}
}

// Commands lists the known command names in alphabetical order.
func (i *Intranet) Commands() []string {
	names := make([]string, 0, len(i.executors))
	for name := range i.executors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs the named command as the caller identified by token. An empty
// token runs without claims, which only the member-add command accepts.
func (i *Intranet) Execute(ctx context.Context, name, token string, payload []byte) (any, error) {
	run, ok := i.executors[name]
	if !ok {
		return nil, fmt.Errorf("unknown command %q", name)
	}
	if token != "" {
		claims, err := i.Tokens.Validate(token)
		if err != nil {
			return nil, err
		}
		ctx = auth.ContextWithClaims(ctx, claims)
	}
	return run(ctx, payload)
}
