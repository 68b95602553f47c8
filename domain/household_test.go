package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestHousehold_AddMember_LinksBothSides(t *testing.T) {
	now := time.Now()
	household := NewHousehold("The Smiths", "", now)
	household.ID = uuid.New()
	member := NewHouseholdMember("alice@example.org", now)
	member.ID = uuid.New()

	household.AddMember(member)
	household.AddMember(member)

	require.Equal(t, []uuid.UUID{member.ID}, household.Members)
	require.Equal(t, []uuid.UUID{household.ID}, member.Households)
	require.True(t, household.HasMember(member.ID))
	require.True(t, member.BelongsTo(household.ID))

	household.RemoveMember(member)

	require.Empty(t, household.Members)
	require.Empty(t, member.Households)
}

func TestHouseholdMember_NewMemberIsBasicAndNotActivated(t *testing.T) {
	member := NewHouseholdMember("  bob@example.org ", time.Now())

	require.Equal(t, "bob@example.org", member.MailAddress)
	require.Equal(t, MembershipBasic, member.Membership)
	require.Len(t, member.ActivationCode, 12)
	require.False(t, member.IsActivated())
	require.False(t, member.IsPrivacyPolicyAccepted())
}

func TestHouseholdMember_EffectiveMembership(t *testing.T) {
	now := time.Now()
	member := NewHouseholdMember("carol@example.org", now)
	member.Membership = MembershipPremium

	require.Equal(t, MembershipBasic, member.EffectiveMembership(now), "no expire time means no paid membership")

	future := now.Add(24 * time.Hour)
	member.MembershipExpireTime = &future
	require.Equal(t, MembershipPremium, member.EffectiveMembership(now))
	require.True(t, member.HasRequiredMembership(MembershipDeluxe, now))

	past := now.Add(-time.Hour)
	member.MembershipExpireTime = &past
	require.False(t, member.HasRequiredMembership(MembershipDeluxe, now))
}

func TestHouseholdMember_CanCreateHousehold(t *testing.T) {
	now := time.Now()
	member := NewHouseholdMember("dave@example.org", now)
	require.True(t, member.CanCreateHousehold(now))

	member.Households = []uuid.UUID{uuid.New()}
	require.False(t, member.CanCreateHousehold(now))

	future := now.Add(time.Hour)
	member.Membership = MembershipDeluxe
	member.MembershipExpireTime = &future
	require.True(t, member.CanCreateHousehold(now))
}
