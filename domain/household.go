package domain

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type Membership int

const (
	MembershipBasic Membership = iota + 1
	MembershipDeluxe
	MembershipPremium
)

func (m Membership) String() string {
	switch m {
	case MembershipBasic:
		return "Basic"
	case MembershipDeluxe:
		return "Deluxe"
	case MembershipPremium:
		return "Premium"
	default:
		return "Unknown"
	}
}

// HouseholdLimit is the number of households a member with this membership may belong to.
func (m Membership) HouseholdLimit() int {
	switch m {
	case MembershipDeluxe:
		return 2
	case MembershipPremium:
		return math.MaxInt
	default:
		return 1
	}
}

// Household owns its member list. Members are referenced by id only.
type Household struct {
	ID           uuid.UUID
	Name         string
	Description  string
	CreationTime time.Time
	Members      []uuid.UUID
}

func NewHousehold(name, description string, now time.Time) *Household {
	return &Household{
		Name:         name,
		Description:  description,
		CreationTime: now.UTC(),
	}
}

func (h *Household) HasMember(memberID uuid.UUID) bool {
	return lo.Contains(h.Members, memberID)
}

// AddMember links both sides. Adding an existing member is a no-op.
func (h *Household) AddMember(member *HouseholdMember) {
	if !h.HasMember(member.ID) {
		h.Members = append(h.Members, member.ID)
	}
	if !lo.Contains(member.Households, h.ID) {
		member.Households = append(member.Households, h.ID)
	}
}

func (h *Household) RemoveMember(member *HouseholdMember) {
	h.Members = lo.Without(h.Members, member.ID)
	member.Households = lo.Without(member.Households, h.ID)
}

type HouseholdMember struct {
	ID                        uuid.UUID
	MailAddress               string
	Membership                Membership
	MembershipExpireTime      *time.Time
	ActivationCode            string
	ActivationTime            *time.Time
	PrivacyPolicyAcceptedTime *time.Time
	CreationTime              time.Time
	Households                []uuid.UUID
}

// NewHouseholdMember creates a basic, not yet activated member.
func NewHouseholdMember(mailAddress string, now time.Time) *HouseholdMember {
	return &HouseholdMember{
		MailAddress:    strings.TrimSpace(mailAddress),
		Membership:     MembershipBasic,
		ActivationCode: newActivationCode(),
		CreationTime:   now.UTC(),
	}
}

func newActivationCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

func (m *HouseholdMember) IsActivated() bool {
	return m.ActivationTime != nil
}

func (m *HouseholdMember) IsPrivacyPolicyAccepted() bool {
	return m.PrivacyPolicyAcceptedTime != nil
}

// EffectiveMembership falls back to basic once a paid membership has expired.
func (m *HouseholdMember) EffectiveMembership(now time.Time) Membership {
	if m.Membership <= MembershipBasic {
		return MembershipBasic
	}
	if m.MembershipExpireTime == nil || m.MembershipExpireTime.Before(now) {
		return MembershipBasic
	}
	return m.Membership
}

func (m *HouseholdMember) HasRequiredMembership(required Membership, now time.Time) bool {
	return m.EffectiveMembership(now) >= required
}

func (m *HouseholdMember) CanCreateHousehold(now time.Time) bool {
	return len(m.Households) < m.EffectiveMembership(now).HouseholdLimit()
}

func (m *HouseholdMember) BelongsTo(householdID uuid.UUID) bool {
	return lo.Contains(m.Households, householdID)
}

func (m *HouseholdMember) Activate(now time.Time) {
	m.ActivationTime = lo.ToPtr(now.UTC())
}

func (m *HouseholdMember) AcceptPrivacyPolicy(now time.Time) {
	m.PrivacyPolicyAcceptedTime = lo.ToPtr(now.UTC())
}

func (m *HouseholdMember) Identifier() uuid.UUID { return m.ID }

func (h *Household) Identifier() uuid.UUID { return h.ID }
