package household

import (
	"context"

	"household-intranet/domain"
	"household-intranet/errors"
	"household-intranet/mapping"
	"household-intranet/services/pipeline"
	"household-intranet/specification"
)

// MemberPipeline runs a command against the calling household member.
type MemberPipeline[C any] = pipeline.Pipeline[C, Scope, *domain.HouseholdMember, mapping.ServiceReceipt]

func newMemberPipeline[C any](
	deps Dependencies,
	name string,
	strategy pipeline.Strategy[C, Scope, *domain.HouseholdMember],
	policy Policy,
) *MemberPipeline[C] {
	descriptor := pipeline.Descriptor{Handler: name, Command: name + "Command", Response: "ServiceReceipt"}
	mapper := mapping.NewServiceReceiptMapper[*domain.HouseholdMember](deps.Now)
	return pipeline.New(descriptor, strategy, mapper, deps.Log).WithGate(policy.Gate(deps.Now))
}

// HouseholdMemberAdd creates a household member for a mail address nobody uses yet.
// It is not member-scoped: the caller does not need to be a member.
type HouseholdMemberAdd struct {
	Dependencies
	creator *MemberCreator
}

type HouseholdMemberAddPipeline = pipeline.Pipeline[
	domain.HouseholdMemberAddCommand,
	*domain.HouseholdMember,
	*domain.HouseholdMember,
	mapping.ServiceReceipt,
]

func NewHouseholdMemberAdd(deps Dependencies, creator *MemberCreator) *HouseholdMemberAddPipeline {
	strategy := &HouseholdMemberAdd{Dependencies: deps, creator: creator}
	descriptor := pipeline.Descriptor{
		Handler:  "HouseholdMemberAdd",
		Command:  "HouseholdMemberAddCommand",
		Response: "ServiceReceipt",
	}
	mapper := mapping.NewServiceReceiptMapper[*domain.HouseholdMember](deps.Now)
	return pipeline.New[domain.HouseholdMemberAddCommand, *domain.HouseholdMember](descriptor, strategy, mapper, deps.Log)
}

// Acquire returns the member already using the mail address, or nil.
func (h *HouseholdMemberAdd) Acquire(_ context.Context, command *domain.HouseholdMemberAddCommand) (*domain.HouseholdMember, error) {
	return h.Repository.HouseholdMemberGetByMailAddress(command.MailAddress)
}

func (h *HouseholdMemberAdd) AddValidationRules(existing *domain.HouseholdMember, command *domain.HouseholdMemberAddCommand, spec *specification.Specification) {
	h.addMailAddressRules(spec, command.MailAddress)
	spec.IsSatisfiedBy(func() bool { return existing == nil },
		errors.NewBusinessError(errors.CodeHouseholdMemberAlreadyExists, command.MailAddress))
	h.addCultureRule(spec, command.Culture)
}

// ModifyData inserts the member through the creator so the welcome letter
// is only sent for a stored member.
func (h *HouseholdMemberAdd) ModifyData(ctx context.Context, _ *domain.HouseholdMember, command *domain.HouseholdMemberAddCommand, _ *specification.Specification) (*domain.HouseholdMember, error) {
	return h.creator.Create(ctx, command.MailAddress, parseCulture(command.Culture))
}

func (h *HouseholdMemberAdd) Persist(member *domain.HouseholdMember) (*domain.HouseholdMember, error) {
	return member, nil
}

// HouseholdMemberActivate activates the caller with the code from the welcome letter.
type HouseholdMemberActivate struct {
	Dependencies
}

func NewHouseholdMemberActivate(deps Dependencies) *MemberPipeline[domain.HouseholdMemberActivateCommand] {
	return newMemberPipeline[domain.HouseholdMemberActivateCommand](deps, "HouseholdMemberActivate", &HouseholdMemberActivate{deps}, activatePolicy)
}

func (h *HouseholdMemberActivate) Acquire(ctx context.Context, _ *domain.HouseholdMemberActivateCommand) (Scope, error) {
	member, err := h.caller(ctx)
	if err != nil {
		return Scope{}, err
	}
	return Scope{Member: member}, nil
}

func (h *HouseholdMemberActivate) AddValidationRules(scope Scope, command *domain.HouseholdMemberActivateCommand, spec *specification.Specification) {
	spec.
		IsSatisfiedBy(func() bool { return h.Validations.HasValue(command.ActivationCode) },
			errors.NewBusinessError(errors.CodeValueMustBeGivenForProperty, "ActivationCode")).
		IsSatisfiedBy(func() bool { return !scope.Member.IsActivated() },
			errors.NewBusinessError(errors.CodeHouseholdMemberAlreadyActivated)).
		IsSatisfiedBy(func() bool { return h.Validations.Equals(command.ActivationCode, scope.Member.ActivationCode, false) },
			errors.NewBusinessError(errors.CodeWrongActivationCode))
}

func (h *HouseholdMemberActivate) ModifyData(_ context.Context, scope Scope, _ *domain.HouseholdMemberActivateCommand, _ *specification.Specification) (*domain.HouseholdMember, error) {
	scope.Member.Activate(h.Now())
	return scope.Member, nil
}

func (h *HouseholdMemberActivate) Persist(member *domain.HouseholdMember) (*domain.HouseholdMember, error) {
	return h.Repository.UpdateHouseholdMember(member)
}

// HouseholdMemberAcceptPrivacyPolicy records that the caller accepted the privacy policy.
type HouseholdMemberAcceptPrivacyPolicy struct {
	Dependencies
}

func NewHouseholdMemberAcceptPrivacyPolicy(deps Dependencies) *MemberPipeline[domain.HouseholdMemberAcceptPrivacyPolicyCommand] {
	return newMemberPipeline[domain.HouseholdMemberAcceptPrivacyPolicyCommand](deps, "HouseholdMemberAcceptPrivacyPolicy", &HouseholdMemberAcceptPrivacyPolicy{deps}, acceptPrivacyPolicy)
}

func (h *HouseholdMemberAcceptPrivacyPolicy) Acquire(ctx context.Context, _ *domain.HouseholdMemberAcceptPrivacyPolicyCommand) (Scope, error) {
	member, err := h.caller(ctx)
	if err != nil {
		return Scope{}, err
	}
	return Scope{Member: member}, nil
}

func (h *HouseholdMemberAcceptPrivacyPolicy) AddValidationRules(scope Scope, _ *domain.HouseholdMemberAcceptPrivacyPolicyCommand, spec *specification.Specification) {
	spec.IsSatisfiedBy(func() bool { return !scope.Member.IsPrivacyPolicyAccepted() },
		errors.NewBusinessError(errors.CodeHouseholdMemberAlreadyAccepted))
}

func (h *HouseholdMemberAcceptPrivacyPolicy) ModifyData(_ context.Context, scope Scope, _ *domain.HouseholdMemberAcceptPrivacyPolicyCommand, _ *specification.Specification) (*domain.HouseholdMember, error) {
	scope.Member.AcceptPrivacyPolicy(h.Now())
	return scope.Member, nil
}

func (h *HouseholdMemberAcceptPrivacyPolicy) Persist(member *domain.HouseholdMember) (*domain.HouseholdMember, error) {
	return h.Repository.UpdateHouseholdMember(member)
}
