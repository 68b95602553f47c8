// Package household holds the command handlers acting on households and their members.
package household

import (
	"context"
	"log/slog"
	"time"

	"household-intranet/auth"
	"household-intranet/domain"
	"household-intranet/errors"
	"household-intranet/repositories"
	"household-intranet/specification"

	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// Policy declares what the calling member must satisfy before any validation rule runs.
type Policy struct {
	RequiresActivation            bool
	RequiresAcceptedPrivacyPolicy bool
	RequiredMembership            domain.Membership
}

// Gate checks activation, then privacy policy, then membership.
func (p Policy) Gate(now func() time.Time) func(Scope) error {
	return func(scope Scope) error {
		member := scope.Member
		if p.RequiresActivation && !member.IsActivated() {
			return errors.NewBusinessError(errors.CodeHouseholdMemberNotActivated)
		}
		if p.RequiresAcceptedPrivacyPolicy && !member.IsPrivacyPolicyAccepted() {
			return errors.NewBusinessError(errors.CodeHouseholdMemberHasNotAccepted)
		}
		if !member.HasRequiredMembership(p.RequiredMembership, now()) {
			return errors.NewBusinessError(errors.CodeHouseholdMemberMissingMembership, p.RequiredMembership.String())
		}
		return nil
	}
}

var (
	householdAddPolicy = Policy{
		RequiresActivation:            true,
		RequiresAcceptedPrivacyPolicy: true,
		RequiredMembership:            domain.MembershipBasic,
	}
	householdUpdatePolicy  = householdAddPolicy
	memberManagementPolicy = Policy{
		RequiresActivation:            true,
		RequiresAcceptedPrivacyPolicy: true,
		RequiredMembership:            domain.MembershipDeluxe,
	}
	activatePolicy      = Policy{RequiredMembership: domain.MembershipBasic}
	acceptPrivacyPolicy = Policy{RequiresActivation: true, RequiredMembership: domain.MembershipBasic}
)

// Scope is the aggregate of member-scoped handlers: the calling member and,
// for household commands, a household the member belongs to.
type Scope struct {
	Member    *domain.HouseholdMember
	Household *domain.Household
}

type Options struct {
	NameMaxLength        int
	DescriptionMaxLength int
}

// Dependencies are shared by every handler in this package.
type Dependencies struct {
	Repository  repositories.IHouseholdRepository
	Claims      auth.IClaimValueProvider
	Validations specification.CommonValidations
	Options     Options
	Now         func() time.Time
	Log         *slog.Logger
}

// caller resolves the household member behind the claims of ctx.
func (d Dependencies) caller(ctx context.Context) (*domain.HouseholdMember, error) {
	mailAddress, err := d.Claims.MailAddress(ctx)
	if err != nil {
		return nil, err
	}
	member, err := d.Repository.HouseholdMemberGetByMailAddress(mailAddress)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, errors.NewBusinessError(errors.CodeHouseholdMemberNotCreated, mailAddress)
	}
	return member, nil
}

// callerWithHousehold loads the household only when the caller belongs to it.
// Households of other members stay invisible.
func (d Dependencies) callerWithHousehold(ctx context.Context, householdID uuid.UUID) (Scope, error) {
	member, err := d.caller(ctx)
	if err != nil {
		return Scope{}, err
	}
	if !member.BelongsTo(householdID) {
		return Scope{Member: member}, nil
	}
	household, err := d.Repository.GetHousehold(householdID)
	if err != nil {
		return Scope{}, err
	}
	return Scope{Member: member, Household: household}, nil
}

func (d Dependencies) addHouseholdKnownRule(scope Scope, householdID uuid.UUID, spec *specification.Specification) {
	spec.IsSatisfiedBy(func() bool { return scope.Household != nil },
		errors.NewBusinessError(errors.CodeIdentifierUnknownToSystem, householdID))
}

// addTextRules registers presence (when required), length and illegal character checks.
func (d Dependencies) addTextRules(spec *specification.Specification, property, value string, maxLength int, required bool) {
	v := d.Validations
	if !required && !v.HasValue(value) {
		return
	}
	spec.
		IsSatisfiedBy(func() bool { return v.HasValue(value) },
			errors.NewBusinessError(errors.CodeValueMustBeGivenForProperty, property)).
		IsSatisfiedBy(func() bool { return v.IsLengthValid(value, 1, maxLength) },
			errors.NewBusinessError(errors.CodeLengthForPropertyIsInvalid, property, 1, maxLength)).
		IsSatisfiedBy(func() bool { return !v.ContainsIllegalChar(value) },
			errors.NewBusinessError(errors.CodeValueContainsIllegalChars, property))
}

func (d Dependencies) addMailAddressRules(spec *specification.Specification, mailAddress string) {
	v := d.Validations
	spec.
		IsSatisfiedBy(func() bool { return v.HasValue(mailAddress) },
			errors.NewBusinessError(errors.CodeValueMustBeGivenForProperty, "MailAddress")).
		IsSatisfiedBy(func() bool { return v.IsMailAddress(mailAddress) },
			errors.NewBusinessError(errors.CodeIllegalValue, mailAddress, "MailAddress"))
}

// addCultureRule accepts an empty culture, which means the base culture.
func (d Dependencies) addCultureRule(spec *specification.Specification, culture string) {
	if !d.Validations.HasValue(culture) {
		return
	}
	spec.IsSatisfiedBy(func() bool {
		_, err := language.Parse(culture)
		return err == nil
	}, errors.NewBusinessError(errors.CodeIllegalValue, culture, "Culture"))
}

func parseCulture(culture string) language.Tag {
	tag, err := language.Parse(culture)
	if err != nil {
		return errors.BaseLocale
	}
	return tag
}
