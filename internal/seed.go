package internal

import (
	"fmt"
	"strconv"

	"household-intranet/domain"

	"golang.org/x/text/language"
)

// Seed is reference data the command handlers need but never create themselves.
type Seed struct {
	DataProviders    []domain.DataProvider    `json:"data_providers"`
	TranslationInfos []domain.TranslationInfo `json:"translation_infos"`
	Accountings      []domain.Accounting      `json:"accountings"`
}

// Seed inserts the reference data and returns one row per stored entity.
func (i *Intranet) Seed(seed Seed) ([]InspectRow, error) {
	var rows []InspectRow
	for _, provider := range seed.DataProviders {
		inserted, err := i.FoodWaste.InsertDataProvider(&provider)
		if err != nil {
			return rows, err
		}
		rows = append(rows, InspectRow{Key: "dataprovider:" + inserted.ID.String(), Entity: "dataprovider", ID: inserted.ID.String(), Detail: inserted.Name})
	}
	for _, info := range seed.TranslationInfos {
		if _, err := language.Parse(info.CultureName); err != nil {
			return rows, fmt.Errorf("translation info %q has no usable culture: %w", info.CultureName, err)
		}
		inserted, err := i.FoodWaste.InsertTranslationInfo(&info)
		if err != nil {
			return rows, err
		}
		rows = append(rows, InspectRow{Key: "translationinfo:" + inserted.ID.String(), Entity: "translationinfo", ID: inserted.ID.String(), Detail: inserted.CultureName})
	}
	for _, accounting := range seed.Accountings {
		inserted, err := i.Accountings.InsertAccounting(&accounting)
		if err != nil {
			return rows, err
		}
		number := strconv.Itoa(inserted.Number)
		rows = append(rows, InspectRow{Key: fmt.Sprintf("accounting:%010d", inserted.Number), Entity: "accounting", ID: number, Detail: inserted.Name})
	}
	return rows, nil
}
