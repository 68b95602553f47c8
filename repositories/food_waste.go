//go:generate go run go.uber.org/mock/mockgen -source=food_waste.go -destination=../mocks/mock_food_waste_repository.go -package=mocks
package repositories

import (
	stderrors "errors"
	"fmt"
	"log/slog"

	"household-intranet/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IFoodWasteRepository interface {
	GetDataProvider(id uuid.UUID) (*domain.DataProvider, error)
	InsertDataProvider(provider *domain.DataProvider) (*domain.DataProvider, error)
	// FindTranslationInfo and FindFoodGroup return nil without error when absent.
	FindTranslationInfo(id uuid.UUID) (*domain.TranslationInfo, error)
	InsertTranslationInfo(info *domain.TranslationInfo) (*domain.TranslationInfo, error)
	FindFoodGroup(id uuid.UUID) (*domain.FoodGroup, error)
	FoodGroupGetByForeignKey(dataProviderID uuid.UUID, key string) (*domain.FoodGroup, error)
	FoodItemGetByForeignKey(dataProviderID uuid.UUID, key string) (*domain.FoodItem, error)
	InsertFoodGroup(group *domain.FoodGroup) (*domain.FoodGroup, error)
	UpdateFoodGroup(group *domain.FoodGroup) (*domain.FoodGroup, error)
	InsertFoodItem(item *domain.FoodItem) (*domain.FoodItem, error)
	UpdateFoodItem(item *domain.FoodItem) (*domain.FoodItem, error)
	InsertForeignKey(foreignKey domain.ForeignKey) (domain.ForeignKey, error)
	InsertTranslation(translation domain.Translation) (domain.Translation, error)
	UpdateTranslation(translation domain.Translation) (domain.Translation, error)
}

type FoodWasteRepository struct {
	store
}

func NewFoodWasteRepository(db *badger.DB, log *slog.Logger) IFoodWasteRepository {
	return &FoodWasteRepository{store{db: db, log: log}}
}

// Food groups and items are stored without their translations and foreign keys,
// which live under "translation:<of>:<id>" and "foreignkey:<for>:<id>".
type diskFoodGroup struct {
	ID       uuid.UUID  `json:"id"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
	IsActive bool       `json:"is_active"`
}

type diskFoodItem struct {
	ID                 uuid.UUID   `json:"id"`
	PrimaryFoodGroupID uuid.UUID   `json:"primary_food_group_id"`
	FoodGroupIDs       []uuid.UUID `json:"food_group_ids"`
	IsActive           bool        `json:"is_active"`
}

func dataProviderKey(id uuid.UUID) string    { return "dataprovider:" + id.String() }
func translationInfoKey(id uuid.UUID) string { return "translationinfo:" + id.String() }
func foodGroupKey(id uuid.UUID) string       { return "foodgroup:" + id.String() }
func foodItemKey(id uuid.UUID) string        { return "fooditem:" + id.String() }
func translationPrefix(ofID uuid.UUID) string {
	return "translation:" + ofID.String() + ":"
}
func foreignKeyPrefix(forID uuid.UUID) string {
	return "foreignkey:" + forID.String() + ":"
}
func foreignKeyIndex(providerID uuid.UUID, forType domain.ForeignKeyFor, value string) string {
	return fmt.Sprintf("idx:foreignkey:%s:%s:%s", providerID, forType, value)
}

func (r *FoodWasteRepository) GetDataProvider(id uuid.UUID) (*domain.DataProvider, error) {
	var provider domain.DataProvider
	err := r.db.View(func(txn *badger.Txn) error {
		return get(txn, dataProviderKey(id), &provider)
	})
	if err != nil {
		return nil, translate(err, "data provider", id, "reading data provider")
	}
	return &provider, nil
}

func (r *FoodWasteRepository) InsertDataProvider(provider *domain.DataProvider) (*domain.DataProvider, error) {
	inserted := *provider
	if inserted.ID == uuid.Nil {
		inserted.ID = uuid.New()
	}
	err := r.db.Update(func(txn *badger.Txn) error {
		return set(txn, dataProviderKey(inserted.ID), inserted)
	})
	if err != nil {
		return nil, translate(err, "data provider", inserted.ID, "inserting data provider")
	}
	return &inserted, nil
}

func (r *FoodWasteRepository) FindTranslationInfo(id uuid.UUID) (*domain.TranslationInfo, error) {
	var info domain.TranslationInfo
	found, err := r.find(translationInfoKey(id), &info)
	if err != nil || !found {
		return nil, translate(err, "translation info", id, "reading translation info")
	}
	return &info, nil
}

func (r *FoodWasteRepository) InsertTranslationInfo(info *domain.TranslationInfo) (*domain.TranslationInfo, error) {
	inserted := *info
	if inserted.ID == uuid.Nil {
		inserted.ID = uuid.New()
	}
	err := r.db.Update(func(txn *badger.Txn) error {
		return set(txn, translationInfoKey(inserted.ID), inserted)
	})
	if err != nil {
		return nil, translate(err, "translation info", inserted.ID, "inserting translation info")
	}
	return &inserted, nil
}

func (r *FoodWasteRepository) find(key string, out any) (bool, error) {
	err := r.db.View(func(txn *badger.Txn) error {
		return get(txn, key, out)
	})
	switch {
	case err == nil:
		return true, nil
	case stderrors.Is(err, badger.ErrKeyNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (r *FoodWasteRepository) FindFoodGroup(id uuid.UUID) (*domain.FoodGroup, error) {
	var group *domain.FoodGroup
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		group, err = loadFoodGroup(txn, id)
		return err
	})
	if err != nil {
		return nil, translate(err, "food group", id, "reading food group")
	}
	return group, nil
}

func (r *FoodWasteRepository) FoodGroupGetByForeignKey(dataProviderID uuid.UUID, key string) (*domain.FoodGroup, error) {
	var group *domain.FoodGroup
	err := r.db.View(func(txn *badger.Txn) error {
		id, found, err := lookupForeignKey(txn, dataProviderID, domain.ForeignKeyForFoodGroup, key)
		if err != nil || !found {
			return err
		}
		group, err = loadFoodGroup(txn, id)
		return err
	})
	if err != nil {
		return nil, translate(err, "food group", key, "reading food group by foreign key")
	}
	return group, nil
}

func (r *FoodWasteRepository) FoodItemGetByForeignKey(dataProviderID uuid.UUID, key string) (*domain.FoodItem, error) {
	var item *domain.FoodItem
	err := r.db.View(func(txn *badger.Txn) error {
		id, found, err := lookupForeignKey(txn, dataProviderID, domain.ForeignKeyForFoodItem, key)
		if err != nil || !found {
			return err
		}
		item, err = loadFoodItem(txn, id)
		return err
	})
	if err != nil {
		return nil, translate(err, "food item", key, "reading food item by foreign key")
	}
	return item, nil
}

func lookupForeignKey(txn *badger.Txn, providerID uuid.UUID, forType domain.ForeignKeyFor, value string) (uuid.UUID, bool, error) {
	var id uuid.UUID
	err := get(txn, foreignKeyIndex(providerID, forType, value), &id)
	switch {
	case err == nil:
		return id, true, nil
	case stderrors.Is(err, badger.ErrKeyNotFound):
		return uuid.Nil, false, nil
	default:
		return uuid.Nil, false, err
	}
}

// loadFoodGroup returns nil without error when the group does not exist.
func loadFoodGroup(txn *badger.Txn, id uuid.UUID) (*domain.FoodGroup, error) {
	var dg diskFoodGroup
	if err := get(txn, foodGroupKey(id), &dg); err != nil {
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	translations, err := scan[domain.Translation](txn, translationPrefix(id))
	if err != nil {
		return nil, err
	}
	foreignKeys, err := scan[domain.ForeignKey](txn, foreignKeyPrefix(id))
	if err != nil {
		return nil, err
	}
	return &domain.FoodGroup{
		ID:           dg.ID,
		ParentID:     dg.ParentID,
		IsActive:     dg.IsActive,
		Translations: translations,
		ForeignKeys:  foreignKeys,
	}, nil
}

func loadFoodItem(txn *badger.Txn, id uuid.UUID) (*domain.FoodItem, error) {
	var di diskFoodItem
	if err := get(txn, foodItemKey(id), &di); err != nil {
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	translations, err := scan[domain.Translation](txn, translationPrefix(id))
	if err != nil {
		return nil, err
	}
	foreignKeys, err := scan[domain.ForeignKey](txn, foreignKeyPrefix(id))
	if err != nil {
		return nil, err
	}
	return &domain.FoodItem{
		ID:                 di.ID,
		PrimaryFoodGroupID: di.PrimaryFoodGroupID,
		FoodGroupIDs:       di.FoodGroupIDs,
		IsActive:           di.IsActive,
		Translations:       translations,
		ForeignKeys:        foreignKeys,
	}, nil
}

func (r *FoodWasteRepository) InsertFoodGroup(group *domain.FoodGroup) (*domain.FoodGroup, error) {
	dg := diskFoodGroup{ID: group.ID, ParentID: group.ParentID, IsActive: group.IsActive}
	if dg.ID == uuid.Nil {
		dg.ID = uuid.New()
	}
	err := r.db.Update(func(txn *badger.Txn) error {
		return set(txn, foodGroupKey(dg.ID), dg)
	})
	if err != nil {
		return nil, translate(err, "food group", dg.ID, "inserting food group")
	}
	r.log.Debug("Food group inserted", "id", dg.ID)
	return &domain.FoodGroup{ID: dg.ID, ParentID: dg.ParentID, IsActive: dg.IsActive}, nil
}

func (r *FoodWasteRepository) UpdateFoodGroup(group *domain.FoodGroup) (*domain.FoodGroup, error) {
	dg := diskFoodGroup{ID: group.ID, ParentID: group.ParentID, IsActive: group.IsActive}
	var updated *domain.FoodGroup
	err := r.db.Update(func(txn *badger.Txn) error {
		if err := get(txn, foodGroupKey(dg.ID), &diskFoodGroup{}); err != nil {
			return err
		}
		if err := set(txn, foodGroupKey(dg.ID), dg); err != nil {
			return err
		}
		var err error
		updated, err = loadFoodGroup(txn, dg.ID)
		return err
	})
	if err != nil {
		return nil, translate(err, "food group", dg.ID, "updating food group")
	}
	return updated, nil
}

func (r *FoodWasteRepository) InsertFoodItem(item *domain.FoodItem) (*domain.FoodItem, error) {
	di := diskFoodItem{
		ID:                 item.ID,
		PrimaryFoodGroupID: item.PrimaryFoodGroupID,
		FoodGroupIDs:       item.FoodGroupIDs,
		IsActive:           item.IsActive,
	}
	if di.ID == uuid.Nil {
		di.ID = uuid.New()
	}
	err := r.db.Update(func(txn *badger.Txn) error {
		return set(txn, foodItemKey(di.ID), di)
	})
	if err != nil {
		return nil, translate(err, "food item", di.ID, "inserting food item")
	}
	r.log.Debug("Food item inserted", "id", di.ID)
	return &domain.FoodItem{
		ID:                 di.ID,
		PrimaryFoodGroupID: di.PrimaryFoodGroupID,
		FoodGroupIDs:       di.FoodGroupIDs,
		IsActive:           di.IsActive,
	}, nil
}

func (r *FoodWasteRepository) UpdateFoodItem(item *domain.FoodItem) (*domain.FoodItem, error) {
	di := diskFoodItem{
		ID:                 item.ID,
		PrimaryFoodGroupID: item.PrimaryFoodGroupID,
		FoodGroupIDs:       item.FoodGroupIDs,
		IsActive:           item.IsActive,
	}
	var updated *domain.FoodItem
	err := r.db.Update(func(txn *badger.Txn) error {
		if err := get(txn, foodItemKey(di.ID), &diskFoodItem{}); err != nil {
			return err
		}
		if err := set(txn, foodItemKey(di.ID), di); err != nil {
			return err
		}
		var err error
		updated, err = loadFoodItem(txn, di.ID)
		return err
	})
	if err != nil {
		return nil, translate(err, "food item", di.ID, "updating food item")
	}
	return updated, nil
}

func (r *FoodWasteRepository) InsertForeignKey(foreignKey domain.ForeignKey) (domain.ForeignKey, error) {
	if foreignKey.ID == uuid.Nil {
		foreignKey.ID = uuid.New()
	}
	index := foreignKeyIndex(foreignKey.DataProviderID, foreignKey.ForType, foreignKey.Value)
	err := r.db.Update(func(txn *badger.Txn) error {
		taken, err := exists(txn, index)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("foreign key %s is already in use for the data provider", foreignKey.Value)
		}
		if err = set(txn, foreignKeyPrefix(foreignKey.ForID)+foreignKey.ID.String(), foreignKey); err != nil {
			return err
		}
		return set(txn, index, foreignKey.ForID)
	})
	if err != nil {
		return domain.ForeignKey{}, translate(err, "foreign key", foreignKey.ID, "inserting foreign key")
	}
	return foreignKey, nil
}

func (r *FoodWasteRepository) InsertTranslation(translation domain.Translation) (domain.Translation, error) {
	if translation.ID == uuid.Nil {
		translation.ID = uuid.New()
	}
	err := r.db.Update(func(txn *badger.Txn) error {
		return set(txn, translationPrefix(translation.OfID)+translation.ID.String(), translation)
	})
	if err != nil {
		return domain.Translation{}, translate(err, "translation", translation.ID, "inserting translation")
	}
	return translation, nil
}

func (r *FoodWasteRepository) UpdateTranslation(translation domain.Translation) (domain.Translation, error) {
	key := translationPrefix(translation.OfID) + translation.ID.String()
	err := r.db.Update(func(txn *badger.Txn) error {
		if err := get(txn, key, &domain.Translation{}); err != nil {
			return err
		}
		return set(txn, key, translation)
	})
	if err != nil {
		return domain.Translation{}, translate(err, "translation", translation.ID, "updating translation")
	}
	return translation, nil
}
