package household

import (
	"context"

	"household-intranet/domain"
	"household-intranet/errors"
	"household-intranet/mapping"
	"household-intranet/services/pipeline"
	"household-intranet/specification"

	"github.com/google/uuid"
)

// HouseholdPipeline runs a command against a household the caller belongs to.
type HouseholdPipeline[C any] = pipeline.Pipeline[C, Scope, *domain.Household, mapping.ServiceReceipt]

func newHouseholdPipeline[C any](
	deps Dependencies,
	name string,
	strategy pipeline.Strategy[C, Scope, *domain.Household],
	policy Policy,
) *HouseholdPipeline[C] {
	descriptor := pipeline.Descriptor{Handler: name, Command: name + "Command", Response: "ServiceReceipt"}
	mapper := mapping.NewServiceReceiptMapper[*domain.Household](deps.Now)
	return pipeline.New(descriptor, strategy, mapper, deps.Log).WithGate(policy.Gate(deps.Now))
}

// HouseholdAdd creates a household with the caller as its first member.
type HouseholdAdd struct {
	Dependencies
}

func NewHouseholdAdd(deps Dependencies) *HouseholdPipeline[domain.HouseholdAddCommand] {
	return newHouseholdPipeline[domain.HouseholdAddCommand](deps, "HouseholdAdd", &HouseholdAdd{deps}, householdAddPolicy)
}

func (h *HouseholdAdd) Acquire(ctx context.Context, _ *domain.HouseholdAddCommand) (Scope, error) {
	member, err := h.caller(ctx)
	if err != nil {
		return Scope{}, err
	}
	return Scope{Member: member}, nil
}

func (h *HouseholdAdd) AddValidationRules(scope Scope, command *domain.HouseholdAddCommand, spec *specification.Specification) {
	h.addTextRules(spec, "Name", command.Name, h.Options.NameMaxLength, true)
	h.addTextRules(spec, "Description", command.Description, h.Options.DescriptionMaxLength, false)

	membership := scope.Member.EffectiveMembership(h.Now())
	spec.IsSatisfiedBy(func() bool { return scope.Member.CanCreateHousehold(h.Now()) },
		errors.NewBusinessError(errors.CodeHouseholdLimitReached, membership.String(), membership.HouseholdLimit()))
}

func (h *HouseholdAdd) ModifyData(_ context.Context, scope Scope, command *domain.HouseholdAddCommand, _ *specification.Specification) (*domain.Household, error) {
	household := domain.NewHousehold(command.Name, command.Description, h.Now())
	household.ID = uuid.New()
	household.AddMember(scope.Member)
	return household, nil
}

func (h *HouseholdAdd) Persist(household *domain.Household) (*domain.Household, error) {
	return h.Repository.InsertHousehold(household)
}

// HouseholdUpdate renames a household and replaces its description.
type HouseholdUpdate struct {
	Dependencies
}

func NewHouseholdUpdate(deps Dependencies) *HouseholdPipeline[domain.HouseholdUpdateCommand] {
	return newHouseholdPipeline[domain.HouseholdUpdateCommand](deps, "HouseholdUpdate", &HouseholdUpdate{deps}, householdUpdatePolicy)
}

func (h *HouseholdUpdate) Acquire(ctx context.Context, command *domain.HouseholdUpdateCommand) (Scope, error) {
	return h.callerWithHousehold(ctx, command.HouseholdID)
}

func (h *HouseholdUpdate) AddValidationRules(scope Scope, command *domain.HouseholdUpdateCommand, spec *specification.Specification) {
	h.addHouseholdKnownRule(scope, command.HouseholdID, spec)
	h.addTextRules(spec, "Name", command.Name, h.Options.NameMaxLength, true)
	h.addTextRules(spec, "Description", command.Description, h.Options.DescriptionMaxLength, false)
}

func (h *HouseholdUpdate) ModifyData(_ context.Context, scope Scope, command *domain.HouseholdUpdateCommand, _ *specification.Specification) (*domain.Household, error) {
	scope.Household.Name = command.Name
	scope.Household.Description = command.Description
	return scope.Household, nil
}

func (h *HouseholdUpdate) Persist(household *domain.Household) (*domain.Household, error) {
	return h.Repository.UpdateHousehold(household)
}

// HouseholdAddHouseholdMember attaches a member, known or new, to a household of the caller.
type HouseholdAddHouseholdMember struct {
	Dependencies
	creator *MemberCreator
}

func NewHouseholdAddHouseholdMember(deps Dependencies, creator *MemberCreator) *HouseholdPipeline[domain.HouseholdAddHouseholdMemberCommand] {
	strategy := &HouseholdAddHouseholdMember{Dependencies: deps, creator: creator}
	return newHouseholdPipeline[domain.HouseholdAddHouseholdMemberCommand](deps, "HouseholdAddHouseholdMember", strategy, memberManagementPolicy)
}

func (h *HouseholdAddHouseholdMember) Acquire(ctx context.Context, command *domain.HouseholdAddHouseholdMemberCommand) (Scope, error) {
	return h.callerWithHousehold(ctx, command.HouseholdID)
}

func (h *HouseholdAddHouseholdMember) AddValidationRules(scope Scope, command *domain.HouseholdAddHouseholdMemberCommand, spec *specification.Specification) {
	h.addHouseholdKnownRule(scope, command.HouseholdID, spec)
	h.addMailAddressRules(spec, command.MailAddress)
	h.addCultureRule(spec, command.Culture)
}

func (h *HouseholdAddHouseholdMember) ModifyData(ctx context.Context, scope Scope, command *domain.HouseholdAddHouseholdMemberCommand, spec *specification.Specification) (*domain.Household, error) {
	member, err := h.Repository.HouseholdMemberGetByMailAddress(command.MailAddress)
	if err != nil {
		return nil, err
	}
	if member != nil {
		spec.IsSatisfiedBy(func() bool { return !scope.Household.HasMember(member.ID) },
			errors.NewBusinessError(errors.CodeHouseholdMemberAlreadyOnHouse, command.MailAddress))
		if err = spec.Evaluate(); err != nil {
			return nil, err
		}
	} else {
		member, err = h.creator.Create(ctx, command.MailAddress, parseCulture(command.Culture))
		if err != nil {
			return nil, err
		}
	}
	scope.Household.AddMember(member)
	return scope.Household, nil
}

func (h *HouseholdAddHouseholdMember) Persist(household *domain.Household) (*domain.Household, error) {
	return h.Repository.UpdateHousehold(household)
}

// HouseholdRemoveHouseholdMember detaches another member from a household of the caller.
type HouseholdRemoveHouseholdMember struct {
	Dependencies
}

func NewHouseholdRemoveHouseholdMember(deps Dependencies) *HouseholdPipeline[domain.HouseholdRemoveHouseholdMemberCommand] {
	return newHouseholdPipeline[domain.HouseholdRemoveHouseholdMemberCommand](deps, "HouseholdRemoveHouseholdMember", &HouseholdRemoveHouseholdMember{deps}, memberManagementPolicy)
}

func (h *HouseholdRemoveHouseholdMember) Acquire(ctx context.Context, command *domain.HouseholdRemoveHouseholdMemberCommand) (Scope, error) {
	return h.callerWithHousehold(ctx, command.HouseholdID)
}

func (h *HouseholdRemoveHouseholdMember) AddValidationRules(scope Scope, command *domain.HouseholdRemoveHouseholdMemberCommand, spec *specification.Specification) {
	h.addHouseholdKnownRule(scope, command.HouseholdID, spec)
	h.addMailAddressRules(spec, command.MailAddress)
	spec.IsSatisfiedBy(func() bool { return !h.Validations.Equals(command.MailAddress, scope.Member.MailAddress, true) },
		errors.NewBusinessError(errors.CodeCannotRemoveYourself))
}

func (h *HouseholdRemoveHouseholdMember) ModifyData(_ context.Context, scope Scope, command *domain.HouseholdRemoveHouseholdMemberCommand, spec *specification.Specification) (*domain.Household, error) {
	member, err := h.Repository.HouseholdMemberGetByMailAddress(command.MailAddress)
	if err != nil {
		return nil, err
	}
	spec.
		IsSatisfiedBy(func() bool { return member != nil },
			errors.NewBusinessError(errors.CodeHouseholdMemberNotCreated, command.MailAddress)).
		IsSatisfiedBy(func() bool { return scope.Household.HasMember(member.ID) },
			errors.NewBusinessError(errors.CodeHouseholdMemberNotOnHousehold, command.MailAddress))
	if err = spec.Evaluate(); err != nil {
		return nil, err
	}
	scope.Household.RemoveMember(member)
	return scope.Household, nil
}

func (h *HouseholdRemoveHouseholdMember) Persist(household *domain.Household) (*domain.Household, error) {
	return h.Repository.UpdateHousehold(household)
}
