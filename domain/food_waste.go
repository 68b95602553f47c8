package domain

import (
	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/text/language"
)

type DataProvider struct {
	ID                  uuid.UUID
	Name                string
	HandlesPayments     bool
	DataSourceStatement string
}

type TranslationInfo struct {
	ID          uuid.UUID
	CultureName string
}

func (t TranslationInfo) Culture() language.Tag {
	return language.Make(t.CultureName)
}

type Translation struct {
	ID                uuid.UUID
	OfID              uuid.UUID
	TranslationInfoID uuid.UUID
	CultureName       string
	Value             string
}

func NewTranslation(ofID uuid.UUID, info TranslationInfo, value string) Translation {
	return Translation{
		OfID:              ofID,
		TranslationInfoID: info.ID,
		CultureName:       info.CultureName,
		Value:             value,
	}
}

type ForeignKeyFor string

const (
	ForeignKeyForFoodItem  ForeignKeyFor = "FoodItem"
	ForeignKeyForFoodGroup ForeignKeyFor = "FoodGroup"
)

type ForeignKey struct {
	ID             uuid.UUID
	ForID          uuid.UUID
	ForType        ForeignKeyFor
	DataProviderID uuid.UUID
	Value          string
}

func NewForeignKey(provider DataProvider, forID uuid.UUID, forType ForeignKeyFor, value string) ForeignKey {
	return ForeignKey{
		ForID:          forID,
		ForType:        forType,
		DataProviderID: provider.ID,
		Value:          value,
	}
}

type FoodGroup struct {
	ID           uuid.UUID
	ParentID     *uuid.UUID
	IsActive     bool
	Translations []Translation
	ForeignKeys  []ForeignKey
}

func (g *FoodGroup) Identifier() uuid.UUID { return g.ID }

func (g *FoodGroup) TranslationFor(info TranslationInfo) (Translation, bool) {
	return lo.Find(g.Translations, func(t Translation) bool { return t.TranslationInfoID == info.ID })
}

// FoodItem belongs to its primary food group plus any number of other groups.
type FoodItem struct {
	ID                 uuid.UUID
	PrimaryFoodGroupID uuid.UUID
	FoodGroupIDs       []uuid.UUID
	IsActive           bool
	Translations       []Translation
	ForeignKeys        []ForeignKey
}

// NewFoodItem returns an unsaved item whose group set holds only the primary group.
func NewFoodItem(primaryFoodGroupID uuid.UUID, isActive bool) *FoodItem {
	return &FoodItem{
		PrimaryFoodGroupID: primaryFoodGroupID,
		FoodGroupIDs:       []uuid.UUID{primaryFoodGroupID},
		IsActive:           isActive,
	}
}

func (f *FoodItem) Identifier() uuid.UUID { return f.ID }

// Translate picks the translation closest to the requested culture.
func Translate(translations []Translation, culture language.Tag) (Translation, bool) {
	if len(translations) == 0 {
		return Translation{}, false
	}
	tags := lo.Map(translations, func(t Translation, _ int) language.Tag { return language.Make(t.CultureName) })
	_, index, confidence := language.NewMatcher(tags).Match(culture)
	if confidence == language.No {
		return translations[0], true
	}
	return translations[index], true
}
