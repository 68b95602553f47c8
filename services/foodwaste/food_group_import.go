package foodwaste

import (
	"context"

	"household-intranet/domain"
	"household-intranet/errors"
	"household-intranet/mapping"
	"household-intranet/services/pipeline"
	"household-intranet/specification"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type FoodGroupImportPipeline = pipeline.Pipeline[
	domain.FoodGroupImportCommand,
	Scope,
	Imported[*domain.FoodGroup],
	mapping.ServiceReceipt,
]

// FoodGroupImport creates a food group for an unknown data provider key. A known
// group gets its active flag, its parent and its translation in the imported culture refreshed.
type FoodGroupImport struct {
	Dependencies
}

func NewFoodGroupImport(deps Dependencies) *FoodGroupImportPipeline {
	descriptor := pipeline.Descriptor{
		Handler:  "FoodGroupImportFromDataProvider",
		Command:  "FoodGroupImportFromDataProviderCommand",
		Response: "ServiceReceipt",
	}
	mapper := mapping.NewServiceReceiptMapper[Imported[*domain.FoodGroup]](deps.Now)
	return pipeline.New[domain.FoodGroupImportCommand, Scope](descriptor, &FoodGroupImport{deps}, mapper, deps.Log)
}

func (h *FoodGroupImport) Acquire(_ context.Context, command *domain.FoodGroupImportCommand) (Scope, error) {
	scope, err := h.scope(command.DataProviderID, command.TranslationInfoID)
	if err != nil {
		return Scope{}, err
	}
	if h.Validations.HasValue(command.ParentKey) {
		scope.Group, err = h.Repository.FoodGroupGetByForeignKey(scope.Provider.ID, command.ParentKey)
		if err != nil {
			return Scope{}, err
		}
	}
	return scope, nil
}

func (h *FoodGroupImport) AddValidationRules(scope Scope, command *domain.FoodGroupImportCommand, spec *specification.Specification) {
	h.addImportRules(scope, command.TranslationInfoID, command.Key, command.Name, spec)
	if h.Validations.HasValue(command.ParentKey) {
		spec.
			IsSatisfiedBy(func() bool { return !h.Validations.Equals(command.ParentKey, command.Key, false) },
				errors.NewBusinessError(errors.CodeIllegalValue, command.ParentKey, "ParentKey")).
			IsSatisfiedBy(func() bool { return scope.Group != nil },
				errors.NewBusinessError(errors.CodeParentFoodGroupUnknown, command.ParentKey))
	}
}

func (h *FoodGroupImport) ModifyData(_ context.Context, scope Scope, command *domain.FoodGroupImportCommand, _ *specification.Specification) (Imported[*domain.FoodGroup], error) {
	existing, err := h.Repository.FoodGroupGetByForeignKey(scope.Provider.ID, command.Key)
	if err != nil {
		return Imported[*domain.FoodGroup]{}, err
	}
	if existing != nil {
		existing.IsActive = command.IsActive
		existing.ParentID = parentIdentifier(scope.Group)
		if err = h.refreshTranslation(existing, *scope.Info, command.Name); err != nil {
			return Imported[*domain.FoodGroup]{}, err
		}
		return Imported[*domain.FoodGroup]{Entity: existing}, nil
	}

	h.checkLanguage(scope.Info, command.Key, command.Name)

	group, err := h.Repository.InsertFoodGroup(&domain.FoodGroup{
		ParentID: parentIdentifier(scope.Group),
		IsActive: command.IsActive,
	})
	if err != nil {
		return Imported[*domain.FoodGroup]{}, err
	}
	foreignKey, err := h.Repository.InsertForeignKey(domain.NewForeignKey(*scope.Provider, group.ID, domain.ForeignKeyForFoodGroup, command.Key))
	if err != nil {
		return Imported[*domain.FoodGroup]{}, err
	}
	group.ForeignKeys = append(group.ForeignKeys, foreignKey)

	translation, err := h.Repository.InsertTranslation(domain.NewTranslation(group.ID, *scope.Info, command.Name))
	if err != nil {
		return Imported[*domain.FoodGroup]{}, err
	}
	group.Translations = append(group.Translations, translation)

	h.Log.Debug("Food group imported", "key", command.Key, "id", group.ID)
	return Imported[*domain.FoodGroup]{Entity: group, Created: true}, nil
}

// refreshTranslation stores name as the group's translation for info, inserting it when missing.
func (h *FoodGroupImport) refreshTranslation(group *domain.FoodGroup, info domain.TranslationInfo, name string) error {
	current, ok := group.TranslationFor(info)
	if !ok {
		inserted, err := h.Repository.InsertTranslation(domain.NewTranslation(group.ID, info, name))
		if err != nil {
			return err
		}
		group.Translations = append(group.Translations, inserted)
		return nil
	}
	if current.Value == name {
		return nil
	}
	current.Value = name
	updated, err := h.Repository.UpdateTranslation(current)
	if err != nil {
		return err
	}
	group.Translations = lo.Map(group.Translations, func(t domain.Translation, _ int) domain.Translation {
		if t.ID == updated.ID {
			return updated
		}
		return t
	})
	return nil
}

func (h *FoodGroupImport) Persist(imported Imported[*domain.FoodGroup]) (Imported[*domain.FoodGroup], error) {
	if imported.Created {
		return imported, nil
	}
	group, err := h.Repository.UpdateFoodGroup(imported.Entity)
	if err != nil {
		return Imported[*domain.FoodGroup]{}, err
	}
	return Imported[*domain.FoodGroup]{Entity: group}, nil
}

func parentIdentifier(parent *domain.FoodGroup) *uuid.UUID {
	if parent == nil {
		return nil
	}
	return lo.ToPtr(parent.ID)
}
