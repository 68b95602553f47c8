package errors

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Code is the catalog key of an error message.
type Code string

const (
	// Generic validation
	CodeValueMustBeGivenForProperty Code = "VALUE_MUST_BE_GIVEN_FOR_PROPERTY"
	CodeLengthForPropertyIsInvalid  Code = "LENGTH_FOR_PROPERTY_IS_INVALID"
	CodeValueContainsIllegalChars   Code = "VALUE_FOR_PROPERTY_CONTAINS_ILLEGAL_CHARS"
	CodeIllegalValue                Code = "ILLEGAL_VALUE"
	CodeIdentifierUnknownToSystem   Code = "IDENTIFIER_UNKNOWN_TO_SYSTEM"

	// Accounting
	CodePostingDateTooOld           Code = "POSTING_DATE_TOO_OLD"
	CodePostingDateInFuture         Code = "POSTING_DATE_IN_FUTURE"
	CodeAccountNotFound             Code = "ACCOUNT_NOT_FOUND"
	CodeBudgetAccountNotFound       Code = "BUDGET_ACCOUNT_NOT_FOUND"
	CodeContactAccountNotFound      Code = "CONTACT_ACCOUNT_NOT_FOUND"
	CodeValueMustBeGreaterOrEqualTo Code = "VALUE_MUST_BE_GREATER_THAN_OR_EQUAL_TO_ZERO"
	CodeDebitOrCreditRequired       Code = "DEBIT_OR_CREDIT_REQUIRED"

	// Household
	CodeUserAppropriateClaimNotFound     Code = "USER_APPROPRIATE_CLAIM_NOT_FOUND"
	CodeHouseholdMemberNotCreated        Code = "HOUSEHOLD_MEMBER_NOT_CREATED"
	CodeHouseholdMemberNotActivated      Code = "HOUSEHOLD_MEMBER_NOT_ACTIVATED"
	CodeHouseholdMemberHasNotAccepted    Code = "HOUSEHOLD_MEMBER_HAS_NOT_ACCEPTED_PRIVACY_POLICY"
	CodeHouseholdMemberMissingMembership Code = "HOUSEHOLD_MEMBER_HAS_NOT_REQUIRED_MEMBERSHIP"
	CodeHouseholdMemberAlreadyActivated  Code = "HOUSEHOLD_MEMBER_ALREADY_ACTIVATED"
	CodeHouseholdMemberAlreadyAccepted   Code = "HOUSEHOLD_MEMBER_ALREADY_ACCEPTED_PRIVACY_POLICY"
	CodeWrongActivationCode              Code = "WRONG_ACTIVATION_CODE"
	CodeHouseholdMemberAlreadyExists     Code = "HOUSEHOLD_MEMBER_ALREADY_EXISTS"
	CodeHouseholdMemberAlreadyOnHouse    Code = "HOUSEHOLD_MEMBER_ALREADY_ON_HOUSEHOLD"
	CodeHouseholdMemberNotOnHousehold    Code = "HOUSEHOLD_MEMBER_DOES_NOT_EXIST_ON_HOUSEHOLD"
	CodeCannotRemoveYourself             Code = "CANNOT_REMOVE_YOURSELF"
	CodeHouseholdLimitReached            Code = "HOUSEHOLD_LIMIT_REACHED"

	// Food waste
	CodeParentFoodGroupUnknown Code = "PARENT_FOOD_GROUP_UNKNOWN"

	// Repository
	CodeCantFindObjectByID Code = "CANT_FIND_OBJECT_BY_ID"
	CodeRepositoryError    Code = "REPOSITORY_ERROR"

	// System
	CodeErrorInCommandHandler Code = "ERROR_IN_COMMAND_HANDLER"
)

// BaseLocale is the culture IntranetError.Message is rendered in.
var BaseLocale = language.English

var catalogs = map[language.Tag]map[Code]string{
	language.English: {
		CodeValueMustBeGivenForProperty: "Value for the property named %s must be given.",
		CodeLengthForPropertyIsInvalid:  "The length of the value for the property named %s must be between %d and %d.",
		CodeValueContainsIllegalChars:   "The value for the property named %s contains illegal characters.",
		CodeIllegalValue:                "The value %v is illegal for the property named %s.",
		CodeIdentifierUnknownToSystem:   "The identifier %v is unknown to the system.",

		CodePostingDateTooOld:           "The posting date %s is older than %d days.",
		CodePostingDateInFuture:         "The posting date %s is in the future.",
		CodeAccountNotFound:             "The account %s does not exist in accounting %d.",
		CodeBudgetAccountNotFound:       "The budget account %s does not exist in accounting %d.",
		CodeContactAccountNotFound:      "The contact account %d does not exist in accounting %d.",
		CodeValueMustBeGreaterOrEqualTo: "The value for the property named %s must be greater than or equal to zero.",
		CodeDebitOrCreditRequired:       "Either debit or credit must be greater than zero.",

		CodeUserAppropriateClaimNotFound:     "The caller has no claim identifying a household member.",
		CodeHouseholdMemberNotCreated:        "No household member has been created for %s.",
		CodeHouseholdMemberNotActivated:      "The household member has not been activated.",
		CodeHouseholdMemberHasNotAccepted:    "The household member has not accepted the privacy policy.",
		CodeHouseholdMemberMissingMembership: "The household member does not have the required membership %s.",
		CodeHouseholdMemberAlreadyActivated:  "The household member has already been activated.",
		CodeHouseholdMemberAlreadyAccepted:   "The household member has already accepted the privacy policy.",
		CodeWrongActivationCode:              "The activation code is wrong.",
		CodeHouseholdMemberAlreadyExists:     "A household member with the mail address %s already exists.",
		CodeHouseholdMemberAlreadyOnHouse:    "The household member %s is already a member of the household.",
		CodeHouseholdMemberNotOnHousehold:    "The household member %s is not a member of the household.",
		CodeCannotRemoveYourself:             "You cannot remove yourself from a household.",
		CodeHouseholdLimitReached:            "The membership %s does not allow more than %d households.",

		CodeParentFoodGroupUnknown: "The parent food group with the key %s is unknown for the data provider.",

		CodeCantFindObjectByID: "Can't find %s with the identifier %v.",
		CodeRepositoryError:    "An error occurred in the repository while %s: %s",

		CodeErrorInCommandHandler: "An error occurred in %s for the command type %s with the return type %s: %s",
	},
	language.Danish: {
		CodeValueMustBeGivenForProperty: "Der skal angives en værdi for egenskaben %s.",
		CodeLengthForPropertyIsInvalid:  "Længden af værdien for egenskaben %s skal være mellem %d og %d.",
		CodeValueContainsIllegalChars:   "Værdien for egenskaben %s indeholder ulovlige tegn.",
		CodeIllegalValue:                "Værdien %v er ulovlig for egenskaben %s.",
		CodeIdentifierUnknownToSystem:   "Identifikationen %v er ukendt for systemet.",

		CodePostingDateTooOld:           "Bogføringsdatoen %s er ældre end %d dage.",
		CodePostingDateInFuture:         "Bogføringsdatoen %s ligger i fremtiden.",
		CodeAccountNotFound:             "Kontoen %s findes ikke i regnskabet %d.",
		CodeBudgetAccountNotFound:       "Budgetkontoen %s findes ikke i regnskabet %d.",
		CodeContactAccountNotFound:      "Adressekontoen %d findes ikke i regnskabet %d.",
		CodeValueMustBeGreaterOrEqualTo: "Værdien for egenskaben %s skal være større end eller lig med nul.",
		CodeDebitOrCreditRequired:       "Enten debet eller kredit skal være større end nul.",

		CodeUserAppropriateClaimNotFound:     "Kalderen har ingen rettighed, der identificerer et husstandsmedlem.",
		CodeHouseholdMemberNotCreated:        "Der er ikke oprettet et husstandsmedlem for %s.",
		CodeHouseholdMemberNotActivated:      "Husstandsmedlemmet er ikke aktiveret.",
		CodeHouseholdMemberHasNotAccepted:    "Husstandsmedlemmet har ikke accepteret privatlivspolitikken.",
		CodeHouseholdMemberMissingMembership: "Husstandsmedlemmet har ikke det krævede medlemskab %s.",
		CodeHouseholdMemberAlreadyActivated:  "Husstandsmedlemmet er allerede aktiveret.",
		CodeHouseholdMemberAlreadyAccepted:   "Husstandsmedlemmet har allerede accepteret privatlivspolitikken.",
		CodeWrongActivationCode:              "Aktiveringskoden er forkert.",
		CodeHouseholdMemberAlreadyExists:     "Der findes allerede et husstandsmedlem med mailadressen %s.",
		CodeHouseholdMemberAlreadyOnHouse:    "Husstandsmedlemmet %s er allerede medlem af husstanden.",
		CodeHouseholdMemberNotOnHousehold:    "Husstandsmedlemmet %s er ikke medlem af husstanden.",
		CodeCannotRemoveYourself:             "Du kan ikke fjerne dig selv fra en husstand.",
		CodeHouseholdLimitReached:            "Medlemskabet %s tillader ikke mere end %d husstande.",

		CodeParentFoodGroupUnknown: "Den overordnede fødevaregruppe med nøglen %s er ukendt for dataleverandøren.",

		CodeCantFindObjectByID: "Kan ikke finde %s med identifikationen %v.",
		CodeRepositoryError:    "Der opstod en fejl i repository under %s: %s",

		CodeErrorInCommandHandler: "Der opstod en fejl i %s for kommandotypen %s med returtypen %s: %s",
	},
}

func init() {
	for tag, messages := range catalogs {
		for code, msg := range messages {
			if err := message.SetString(tag, string(code), msg); err != nil {
				panic(err)
			}
		}
	}
}

// Cultures lists the cultures with a registered catalog. The first one is the fallback.
func Cultures() []language.Tag {
	return []language.Tag{language.English, language.Danish}
}

var cultureMatcher = language.NewMatcher(Cultures())

// SupportedCulture returns the catalog culture closest to tag, or BaseLocale when none matches.
func SupportedCulture(tag language.Tag) language.Tag {
	_, index, confidence := cultureMatcher.Match(tag)
	if confidence == language.No {
		return BaseLocale
	}
	return Cultures()[index]
}

// Printer renders catalog messages in the supported culture closest to tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(SupportedCulture(tag))
}
