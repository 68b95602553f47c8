package household

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"household-intranet/domain"
	"household-intranet/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/language"
)

func TestHouseholdMemberAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("should insert the member and send the welcome letter", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		id := uuid.New()
		f.repo.EXPECT().HouseholdMemberGetByMailAddress("new@example.org").Return(nil, nil)
		gomock.InOrder(
			f.repo.EXPECT().InsertHouseholdMember(gomock.Any()).
				DoAndReturn(func(m *domain.HouseholdMember) (*domain.HouseholdMember, error) {
					req.Len(m.ActivationCode, 12)
					req.Equal(domain.MembershipBasic, m.Membership)
					m.ID = id
					return m, nil
				}),
			f.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any(), language.English).Return(nil),
		)

		receipt, err := NewHouseholdMemberAdd(f.deps, f.creator).Execute(ctx, &domain.HouseholdMemberAddCommand{
			MailAddress: "new@example.org",
			Culture:     "en",
		})

		req.NoError(err)
		req.Equal(id, receipt.Identifier)
	})

	t.Run("should reject a mail address already in use", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		existing := activeMember("taken@example.org", domain.MembershipBasic)
		f.repo.EXPECT().HouseholdMemberGetByMailAddress("taken@example.org").Return(existing, nil)
		f.repo.EXPECT().InsertHouseholdMember(gomock.Any()).Times(0)

		_, err := NewHouseholdMemberAdd(f.deps, f.creator).Execute(ctx, &domain.HouseholdMemberAddCommand{
			MailAddress: "taken@example.org",
		})

		req.True(errors.HasCode(err, errors.CodeHouseholdMemberAlreadyExists))
	})

	t.Run("should reject an unparsable culture", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		f.repo.EXPECT().HouseholdMemberGetByMailAddress("new@example.org").Return(nil, nil)

		_, err := NewHouseholdMemberAdd(f.deps, f.creator).Execute(ctx, &domain.HouseholdMemberAddCommand{
			MailAddress: "new@example.org",
			Culture:     "not a culture",
		})

		req.True(errors.HasCode(err, errors.CodeIllegalValue))
	})

	t.Run("should classify a failing dispatcher as a system error when run", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		f.repo.EXPECT().HouseholdMemberGetByMailAddress("new@example.org").Return(nil, nil)
		f.repo.EXPECT().InsertHouseholdMember(gomock.Any()).
			DoAndReturn(func(m *domain.HouseholdMember) (*domain.HouseholdMember, error) { return m, nil })
		f.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(fmt.Errorf("smtp down"))

		_, err := NewHouseholdMemberAdd(f.deps, f.creator).Run(ctx, &domain.HouseholdMemberAddCommand{
			MailAddress: "new@example.org",
		})

		kind, ok := errors.KindOf(err)
		req.True(ok)
		req.Equal(errors.KindSystem, kind)
		req.Contains(err.Error(), "HouseholdMemberAddCommand")
		req.Contains(err.Error(), "smtp down")
	})
}

func TestHouseholdMemberActivate(t *testing.T) {
	ctx := context.Background()

	newcomer := func() *domain.HouseholdMember {
		m := domain.NewHouseholdMember(callerMail, now)
		m.ID = uuid.New()
		return m
	}

	t.Run("should activate a member with the right code", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		member := newcomer()
		f.expectCaller(member)
		f.repo.EXPECT().UpdateHouseholdMember(gomock.Any()).
			DoAndReturn(func(m *domain.HouseholdMember) (*domain.HouseholdMember, error) {
				req.True(m.IsActivated())
				req.Equal(now, *m.ActivationTime)
				return m, nil
			}).Times(1)

		receipt, err := NewHouseholdMemberActivate(f.deps).Execute(ctx, &domain.HouseholdMemberActivateCommand{
			ActivationCode: member.ActivationCode,
		})

		req.NoError(err)
		req.Equal(member.ID, receipt.Identifier)
	})

	t.Run("should reject a wrong code", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		member := newcomer()
		f.expectCaller(member)
		f.repo.EXPECT().UpdateHouseholdMember(gomock.Any()).Times(0)

		_, err := NewHouseholdMemberActivate(f.deps).Execute(ctx, &domain.HouseholdMemberActivateCommand{
			ActivationCode: "WRONG",
		})

		req.True(errors.HasCode(err, errors.CodeWrongActivationCode))
	})

	t.Run("should reject activating twice", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		member := activeMember(callerMail, domain.MembershipBasic)
		f.expectCaller(member)

		_, err := NewHouseholdMemberActivate(f.deps).Execute(ctx, &domain.HouseholdMemberActivateCommand{
			ActivationCode: member.ActivationCode,
		})

		req.True(errors.HasCode(err, errors.CodeHouseholdMemberAlreadyActivated))
	})
}

func TestHouseholdMemberAcceptPrivacyPolicy(t *testing.T) {
	ctx := context.Background()

	t.Run("should record the acceptance", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		member := domain.NewHouseholdMember(callerMail, now)
		member.ID = uuid.New()
		member.Activate(now)
		f.expectCaller(member)
		f.repo.EXPECT().UpdateHouseholdMember(gomock.Any()).
			DoAndReturn(func(m *domain.HouseholdMember) (*domain.HouseholdMember, error) { return m, nil }).Times(1)

		_, err := NewHouseholdMemberAcceptPrivacyPolicy(f.deps).Execute(ctx, &domain.HouseholdMemberAcceptPrivacyPolicyCommand{})

		req.NoError(err)
		req.True(member.IsPrivacyPolicyAccepted())
	})

	t.Run("should require an activated member", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		member := domain.NewHouseholdMember(callerMail, now)
		member.ID = uuid.New()
		f.expectCaller(member)

		_, err := NewHouseholdMemberAcceptPrivacyPolicy(f.deps).Execute(ctx, &domain.HouseholdMemberAcceptPrivacyPolicyCommand{})

		req.True(errors.HasCode(err, errors.CodeHouseholdMemberNotActivated))
	})

	t.Run("should reject accepting twice", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		f.expectCaller(activeMember(callerMail, domain.MembershipBasic))

		_, err := NewHouseholdMemberAcceptPrivacyPolicy(f.deps).Execute(ctx, &domain.HouseholdMemberAcceptPrivacyPolicyCommand{})

		req.True(errors.HasCode(err, errors.CodeHouseholdMemberAlreadyAccepted))
	})
}

func TestPolicy_Gate(t *testing.T) {
	policy := Policy{RequiresActivation: true, RequiresAcceptedPrivacyPolicy: true, RequiredMembership: domain.MembershipPremium}
	gate := policy.Gate(clock)

	t.Run("should check activation first", func(t *testing.T) {
		req := require.New(t)
		member := domain.NewHouseholdMember(callerMail, now)
		req.True(errors.HasCode(gate(Scope{Member: member}), errors.CodeHouseholdMemberNotActivated))
	})

	t.Run("should check the privacy policy before the membership", func(t *testing.T) {
		req := require.New(t)
		member := domain.NewHouseholdMember(callerMail, now)
		member.Activate(now)
		req.True(errors.HasCode(gate(Scope{Member: member}), errors.CodeHouseholdMemberHasNotAccepted))
	})

	t.Run("should treat an expired membership as basic", func(t *testing.T) {
		req := require.New(t)
		member := activeMember(callerMail, domain.MembershipPremium)
		expired := now.Add(-1)
		member.MembershipExpireTime = &expired
		req.True(errors.HasCode(gate(Scope{Member: member}), errors.CodeHouseholdMemberMissingMembership))
	})

	t.Run("should pass a member meeting every requirement", func(t *testing.T) {
		req := require.New(t)
		req.NoError(gate(Scope{Member: activeMember(callerMail, domain.MembershipPremium)}))
	})
}

func TestWelcomeLetter(t *testing.T) {
	member := domain.NewHouseholdMember("new@example.org", now)
	member.ActivationCode = "ABC123DEF456"

	t.Run("should render in the requested culture", func(t *testing.T) {
		req := require.New(t)
		req.Equal("Velkommen new@example.org. Brug aktiveringskoden ABC123DEF456 til at aktivere dit medlemskab.",
			WelcomeLetter(member, language.Danish))
	})

	t.Run("should fall back to english for an undetermined culture", func(t *testing.T) {
		req := require.New(t)
		req.Contains(WelcomeLetter(member, language.Und), "Use the activation code ABC123DEF456")
	})

	t.Run("should fall back to english for a culture without a letter", func(t *testing.T) {
		req := require.New(t)
		letter := WelcomeLetter(member, language.French)
		req.Equal("Welcome new@example.org. Use the activation code ABC123DEF456 to activate your membership.", letter)
	})

	t.Run("should log the letter", func(t *testing.T) {
		req := require.New(t)
		dispatcher := NewLogWelcomeLetterDispatcher(slog.New(slog.DiscardHandler))
		req.NoError(dispatcher.Dispatch(context.Background(), member, language.English))
	})
}
