package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Commands are immutable inputs. Handlers validate them and never change them.

type CreateBookkeepingLineCommand struct {
	AccountingNumber     int             `json:"accounting_number"`
	PostingDate          time.Time       `json:"posting_date"`
	Reference            string          `json:"reference"`
	AccountNumber        string          `json:"account_number"`
	Description          string          `json:"description"`
	BudgetAccountNumber  string          `json:"budget_account_number"`
	Debit                decimal.Decimal `json:"debit"`
	Credit               decimal.Decimal `json:"credit"`
	ContactAccountNumber int             `json:"contact_account_number"`
}

type HouseholdAddCommand struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type HouseholdUpdateCommand struct {
	HouseholdID uuid.UUID `json:"household_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// Culture is the BCP 47 tag the welcome letter of a new member is written in.
type HouseholdAddHouseholdMemberCommand struct {
	HouseholdID uuid.UUID `json:"household_id"`
	MailAddress string    `json:"mail_address"`
	Culture     string    `json:"culture"`
}

type HouseholdRemoveHouseholdMemberCommand struct {
	HouseholdID uuid.UUID `json:"household_id"`
	MailAddress string    `json:"mail_address"`
}

type HouseholdMemberAddCommand struct {
	MailAddress string `json:"mail_address"`
	Culture     string `json:"culture"`
}

type HouseholdMemberActivateCommand struct {
	ActivationCode string `json:"activation_code"`
}

type HouseholdMemberAcceptPrivacyPolicyCommand struct{}

type FoodItemImportCommand struct {
	DataProviderID     uuid.UUID `json:"data_provider_id"`
	TranslationInfoID  uuid.UUID `json:"translation_info_id"`
	PrimaryFoodGroupID uuid.UUID `json:"primary_food_group_id"`
	Key                string    `json:"key"`
	Name               string    `json:"name"`
	IsActive           bool      `json:"is_active"`
}

type FoodGroupImportCommand struct {
	DataProviderID    uuid.UUID `json:"data_provider_id"`
	TranslationInfoID uuid.UUID `json:"translation_info_id"`
	Key               string    `json:"key"`
	Name              string    `json:"name"`
	ParentKey         string    `json:"parent_key"`
	IsActive          bool      `json:"is_active"`
}
