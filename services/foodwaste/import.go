// Package foodwaste imports food items and food groups delivered by external data providers.
package foodwaste

import (
	"log/slog"
	"time"

	"household-intranet/domain"
	"household-intranet/errors"
	"household-intranet/mapping"
	"household-intranet/repositories"
	"household-intranet/specification"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"
)

const (
	keyMaxLength  = 128
	nameMaxLength = 255
)

// Imported is the outcome of one import: the entity and whether the import created it.
type Imported[T mapping.Identifiable] struct {
	Entity  T
	Created bool
}

func (i Imported[T]) Identifier() uuid.UUID {
	return i.Entity.Identifier()
}

// Scope is what an import command resolves before validation. Group is the
// primary food group of an item import, or the parent of a group import.
type Scope struct {
	Provider *domain.DataProvider
	Info     *domain.TranslationInfo
	Group    *domain.FoodGroup
}

type Dependencies struct {
	Repository  repositories.IFoodWasteRepository
	Validations specification.CommonValidations
	Now         func() time.Time
	Log         *slog.Logger
}

// scope loads the data provider, which must exist, and the translation info,
// which is validated later.
func (d Dependencies) scope(dataProviderID, translationInfoID uuid.UUID) (Scope, error) {
	provider, err := d.Repository.GetDataProvider(dataProviderID)
	if err != nil {
		return Scope{}, err
	}
	info, err := d.Repository.FindTranslationInfo(translationInfoID)
	if err != nil {
		return Scope{}, err
	}
	return Scope{Provider: provider, Info: info}, nil
}

func (d Dependencies) addImportRules(scope Scope, translationInfoID uuid.UUID, key, name string, spec *specification.Specification) {
	v := d.Validations
	spec.
		IsSatisfiedBy(func() bool { return scope.Info != nil },
			errors.NewBusinessError(errors.CodeIdentifierUnknownToSystem, translationInfoID)).
		IsSatisfiedBy(func() bool { return v.HasValue(key) },
			errors.NewBusinessError(errors.CodeValueMustBeGivenForProperty, "Key")).
		IsSatisfiedBy(func() bool { return v.IsLengthValid(key, 1, keyMaxLength) },
			errors.NewBusinessError(errors.CodeLengthForPropertyIsInvalid, "Key", 1, keyMaxLength)).
		IsSatisfiedBy(func() bool { return v.HasValue(name) },
			errors.NewBusinessError(errors.CodeValueMustBeGivenForProperty, "Name")).
		IsSatisfiedBy(func() bool { return v.IsLengthValid(name, 1, nameMaxLength) },
			errors.NewBusinessError(errors.CodeLengthForPropertyIsInvalid, "Name", 1, nameMaxLength)).
		IsSatisfiedBy(func() bool { return !v.ContainsIllegalChar(name) },
			errors.NewBusinessError(errors.CodeValueContainsIllegalChars, "Name"))
}

// checkLanguage warns when a name does not look like the culture it is imported for.
// Unreliable detections are ignored.
func (d Dependencies) checkLanguage(info *domain.TranslationInfo, key, name string) {
	detected := whatlanggo.Detect(name)
	if !detected.IsReliable() {
		return
	}
	base, _ := info.Culture().Base()
	if code := detected.Lang.Iso6391(); code != "" && code != base.String() {
		d.Log.Warn("Imported name does not match the translation culture",
			"key", key,
			"culture", info.CultureName,
			"detected", code,
			"confidence", detected.Confidence)
	}
}
