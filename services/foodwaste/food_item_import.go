package foodwaste

import (
	"context"

	"household-intranet/domain"
	"household-intranet/errors"
	"household-intranet/mapping"
	"household-intranet/services/pipeline"
	"household-intranet/specification"
)

type FoodItemImportPipeline = pipeline.Pipeline[
	domain.FoodItemImportCommand,
	Scope,
	Imported[*domain.FoodItem],
	mapping.ServiceReceipt,
]

// FoodItemImport creates a food item for an unknown data provider key, or
// updates the active flag of the item the key already points to.
type FoodItemImport struct {
	Dependencies
}

func NewFoodItemImport(deps Dependencies) *FoodItemImportPipeline {
	descriptor := pipeline.Descriptor{
		Handler:  "FoodItemImportFromDataProvider",
		Command:  "FoodItemImportFromDataProviderCommand",
		Response: "ServiceReceipt",
	}
	mapper := mapping.NewServiceReceiptMapper[Imported[*domain.FoodItem]](deps.Now)
	return pipeline.New[domain.FoodItemImportCommand, Scope](descriptor, &FoodItemImport{deps}, mapper, deps.Log)
}

func (h *FoodItemImport) Acquire(_ context.Context, command *domain.FoodItemImportCommand) (Scope, error) {
	scope, err := h.scope(command.DataProviderID, command.TranslationInfoID)
	if err != nil {
		return Scope{}, err
	}
	scope.Group, err = h.Repository.FindFoodGroup(command.PrimaryFoodGroupID)
	if err != nil {
		return Scope{}, err
	}
	return scope, nil
}

func (h *FoodItemImport) AddValidationRules(scope Scope, command *domain.FoodItemImportCommand, spec *specification.Specification) {
	h.addImportRules(scope, command.TranslationInfoID, command.Key, command.Name, spec)
	spec.IsSatisfiedBy(func() bool { return scope.Group != nil },
		errors.NewBusinessError(errors.CodeIdentifierUnknownToSystem, command.PrimaryFoodGroupID))
}

func (h *FoodItemImport) ModifyData(_ context.Context, scope Scope, command *domain.FoodItemImportCommand, _ *specification.Specification) (Imported[*domain.FoodItem], error) {
	existing, err := h.Repository.FoodItemGetByForeignKey(scope.Provider.ID, command.Key)
	if err != nil {
		return Imported[*domain.FoodItem]{}, err
	}
	if existing != nil {
		existing.IsActive = command.IsActive
		return Imported[*domain.FoodItem]{Entity: existing}, nil
	}

	h.checkLanguage(scope.Info, command.Key, command.Name)

	item, err := h.Repository.InsertFoodItem(domain.NewFoodItem(scope.Group.ID, command.IsActive))
	if err != nil {
		return Imported[*domain.FoodItem]{}, err
	}
	foreignKey, err := h.Repository.InsertForeignKey(domain.NewForeignKey(*scope.Provider, item.ID, domain.ForeignKeyForFoodItem, command.Key))
	if err != nil {
		return Imported[*domain.FoodItem]{}, err
	}
	item.ForeignKeys = append(item.ForeignKeys, foreignKey)

	translation, err := h.Repository.InsertTranslation(domain.NewTranslation(item.ID, *scope.Info, command.Name))
	if err != nil {
		return Imported[*domain.FoodItem]{}, err
	}
	item.Translations = append(item.Translations, translation)

	h.Log.Debug("Food item imported", "key", command.Key, "id", item.ID)
	return Imported[*domain.FoodItem]{Entity: item, Created: true}, nil
}

// Persist updates known items only; a created item is stored with its key and translation already.
func (h *FoodItemImport) Persist(imported Imported[*domain.FoodItem]) (Imported[*domain.FoodItem], error) {
	if imported.Created {
		return imported, nil
	}
	item, err := h.Repository.UpdateFoodItem(imported.Entity)
	if err != nil {
		return Imported[*domain.FoodItem]{}, err
	}
	return Imported[*domain.FoodItem]{Entity: item}, nil
}
