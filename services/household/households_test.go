package household

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"household-intranet/domain"
	"household-intranet/errors"
	"household-intranet/mocks"
	"household-intranet/specification"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/language"
)

const callerMail = "owner@example.org"

var now = time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

type fixture struct {
	deps       Dependencies
	repo       *mocks.MockIHouseholdRepository
	claims     *mocks.MockIClaimValueProvider
	dispatcher *mocks.MockIWelcomeLetterDispatcher
	creator    *MemberCreator
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	validations, err := specification.NewCommonValidations([]string{"<", ">"})
	require.NoError(t, err)

	repo := mocks.NewMockIHouseholdRepository(ctrl)
	claims := mocks.NewMockIClaimValueProvider(ctrl)
	dispatcher := mocks.NewMockIWelcomeLetterDispatcher(ctrl)
	log := slog.New(slog.DiscardHandler)
	deps := Dependencies{
		Repository:  repo,
		Claims:      claims,
		Validations: validations,
		Options:     Options{NameMaxLength: 32, DescriptionMaxLength: 128},
		Now:         clock,
		Log:         log,
	}
	return fixture{
		deps:       deps,
		repo:       repo,
		claims:     claims,
		dispatcher: dispatcher,
		creator:    NewMemberCreator(repo, dispatcher, clock, log),
	}
}

// expectCaller makes member the caller behind the claims.
func (f fixture) expectCaller(member *domain.HouseholdMember) {
	f.claims.EXPECT().MailAddress(gomock.Any()).Return(member.MailAddress, nil)
	f.repo.EXPECT().HouseholdMemberGetByMailAddress(member.MailAddress).Return(member, nil)
}

func activeMember(mail string, membership domain.Membership) *domain.HouseholdMember {
	m := domain.NewHouseholdMember(mail, now.AddDate(-1, 0, 0))
	m.ID = uuid.New()
	m.Membership = membership
	m.MembershipExpireTime = lo.ToPtr(now.AddDate(1, 0, 0))
	m.Activate(now.AddDate(-1, 0, 0))
	m.AcceptPrivacyPolicy(now.AddDate(-1, 0, 0))
	return m
}

// householdOf creates a household with the given members, linked both ways.
func householdOf(members ...*domain.HouseholdMember) *domain.Household {
	h := domain.NewHousehold("Home", "", now)
	h.ID = uuid.New()
	for _, m := range members {
		h.AddMember(m)
	}
	return h
}

func TestHouseholdAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("should insert a household with the caller as member", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		caller := activeMember(callerMail, domain.MembershipBasic)
		f.expectCaller(caller)

		f.repo.EXPECT().InsertHousehold(gomock.Any()).
			DoAndReturn(func(h *domain.Household) (*domain.Household, error) {
				req.NotEqual(uuid.Nil, h.ID)
				req.Equal("Summer house", h.Name)
				req.Equal([]uuid.UUID{caller.ID}, h.Members)
				return h, nil
			}).Times(1)

		receipt, err := NewHouseholdAdd(f.deps).Execute(ctx, &domain.HouseholdAddCommand{Name: "Summer house"})

		req.NoError(err)
		req.NotEqual(uuid.Nil, receipt.Identifier)
		req.Equal(now, receipt.EventDate)
	})

	t.Run("should reject a caller whose membership allows no more households", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		caller := activeMember(callerMail, domain.MembershipBasic)
		householdOf(caller)
		f.expectCaller(caller)
		f.repo.EXPECT().InsertHousehold(gomock.Any()).Times(0)

		_, err := NewHouseholdAdd(f.deps).Execute(ctx, &domain.HouseholdAddCommand{Name: "Second home"})

		req.True(errors.HasCode(err, errors.CodeHouseholdLimitReached))
	})

	t.Run("should check the name before the household limit", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		caller := activeMember(callerMail, domain.MembershipBasic)
		householdOf(caller)
		f.expectCaller(caller)

		_, err := NewHouseholdAdd(f.deps).Execute(ctx, &domain.HouseholdAddCommand{Name: "<home>"})

		req.True(errors.HasCode(err, errors.CodeValueContainsIllegalChars))
	})

	t.Run("should stop at the activation gate", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		caller := domain.NewHouseholdMember(callerMail, now)
		caller.ID = uuid.New()
		f.expectCaller(caller)

		_, err := NewHouseholdAdd(f.deps).Execute(ctx, &domain.HouseholdAddCommand{Name: ""})

		req.True(errors.HasCode(err, errors.CodeHouseholdMemberNotActivated))
	})

	t.Run("should report a caller without a member", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		f.claims.EXPECT().MailAddress(gomock.Any()).Return("ghost@example.org", nil)
		f.repo.EXPECT().HouseholdMemberGetByMailAddress("ghost@example.org").Return(nil, nil)

		_, err := NewHouseholdAdd(f.deps).Execute(ctx, &domain.HouseholdAddCommand{Name: "Home"})

		req.True(errors.HasCode(err, errors.CodeHouseholdMemberNotCreated))
	})
}

func TestHouseholdUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("should rename a household of the caller", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		caller := activeMember(callerMail, domain.MembershipBasic)
		household := householdOf(caller)
		f.expectCaller(caller)
		f.repo.EXPECT().GetHousehold(household.ID).Return(household, nil)
		f.repo.EXPECT().UpdateHousehold(gomock.Any()).
			DoAndReturn(func(h *domain.Household) (*domain.Household, error) {
				req.Equal("Cabin", h.Name)
				req.Equal("By the lake", h.Description)
				return h, nil
			}).Times(1)

		receipt, err := NewHouseholdUpdate(f.deps).Execute(ctx, &domain.HouseholdUpdateCommand{
			HouseholdID: household.ID,
			Name:        "Cabin",
			Description: "By the lake",
		})

		req.NoError(err)
		req.Equal(household.ID, receipt.Identifier)
	})

	t.Run("should not reveal a household the caller does not belong to", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		caller := activeMember(callerMail, domain.MembershipBasic)
		f.expectCaller(caller)
		f.repo.EXPECT().GetHousehold(gomock.Any()).Times(0)
		f.repo.EXPECT().UpdateHousehold(gomock.Any()).Times(0)
		foreign := uuid.New()

		_, err := NewHouseholdUpdate(f.deps).Execute(ctx, &domain.HouseholdUpdateCommand{HouseholdID: foreign, Name: "Mine"})

		req.True(errors.HasCode(err, errors.CodeIdentifierUnknownToSystem))
	})

	t.Run("should reject a too long description", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		caller := activeMember(callerMail, domain.MembershipBasic)
		household := householdOf(caller)
		f.expectCaller(caller)
		f.repo.EXPECT().GetHousehold(household.ID).Return(household, nil)

		_, err := NewHouseholdUpdate(f.deps).Execute(ctx, &domain.HouseholdUpdateCommand{
			HouseholdID: household.ID,
			Name:        "Cabin",
			Description: string(make([]rune, 129)),
		})

		req.True(errors.HasCode(err, errors.CodeLengthForPropertyIsInvalid))
	})
}

func TestHouseholdAddHouseholdMember(t *testing.T) {
	ctx := context.Background()

	t.Run("should reuse an existing member found by mail address", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		caller := activeMember(callerMail, domain.MembershipDeluxe)
		household := householdOf(caller)
		existing := activeMember("partner@example.org", domain.MembershipBasic)
		f.expectCaller(caller)
		f.repo.EXPECT().GetHousehold(household.ID).Return(household, nil)
		f.repo.EXPECT().HouseholdMemberGetByMailAddress("PARTNER@example.org").Return(existing, nil)
		f.repo.EXPECT().InsertHouseholdMember(gomock.Any()).Times(0)
		f.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		f.repo.EXPECT().UpdateHousehold(gomock.Any()).
			DoAndReturn(func(h *domain.Household) (*domain.Household, error) {
				req.ElementsMatch([]uuid.UUID{caller.ID, existing.ID}, h.Members)
				return h, nil
			}).Times(1)

		_, err := NewHouseholdAddHouseholdMember(f.deps, f.creator).Execute(ctx, &domain.HouseholdAddHouseholdMemberCommand{
			HouseholdID: household.ID,
			MailAddress: "PARTNER@example.org",
		})

		req.NoError(err)
		req.True(existing.BelongsTo(household.ID))
	})

	t.Run("should create an unknown member then attach it", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		caller := activeMember(callerMail, domain.MembershipDeluxe)
		household := householdOf(caller)
		createdID := uuid.New()
		f.expectCaller(caller)
		f.repo.EXPECT().GetHousehold(household.ID).Return(household, nil)
		f.repo.EXPECT().HouseholdMemberGetByMailAddress("new@example.org").Return(nil, nil)

		gomock.InOrder(
			f.repo.EXPECT().InsertHouseholdMember(gomock.Any()).
				DoAndReturn(func(m *domain.HouseholdMember) (*domain.HouseholdMember, error) {
					req.Equal("new@example.org", m.MailAddress)
					req.False(m.IsActivated())
					m.ID = createdID
					return m, nil
				}),
			f.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any(), language.Danish).Return(nil),
			f.repo.EXPECT().UpdateHousehold(gomock.Any()).
				DoAndReturn(func(h *domain.Household) (*domain.Household, error) {
					req.True(h.HasMember(createdID))
					return h, nil
				}),
		)

		receipt, err := NewHouseholdAddHouseholdMember(f.deps, f.creator).Execute(ctx, &domain.HouseholdAddHouseholdMemberCommand{
			HouseholdID: household.ID,
			MailAddress: "new@example.org",
			Culture:     "da",
		})

		req.NoError(err)
		req.Equal(household.ID, receipt.Identifier)
	})

	t.Run("should keep the created member when the household update fails", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		caller := activeMember(callerMail, domain.MembershipDeluxe)
		household := householdOf(caller)
		f.expectCaller(caller)
		f.repo.EXPECT().GetHousehold(household.ID).Return(household, nil)
		f.repo.EXPECT().HouseholdMemberGetByMailAddress("new@example.org").Return(nil, nil)
		storeDown := errors.NewRepositoryError(errors.CodeRepositoryError, nil, "updating household", "disk full")

		gomock.InOrder(
			f.repo.EXPECT().InsertHouseholdMember(gomock.Any()).
				DoAndReturn(func(m *domain.HouseholdMember) (*domain.HouseholdMember, error) { return m, nil }).Times(1),
			f.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any(), language.English).Return(nil).Times(1),
			f.repo.EXPECT().UpdateHousehold(gomock.Any()).Return(nil, storeDown),
		)

		_, err := NewHouseholdAddHouseholdMember(f.deps, f.creator).Run(ctx, &domain.HouseholdAddHouseholdMemberCommand{
			HouseholdID: household.ID,
			MailAddress: "new@example.org",
			Culture:     "en",
		})

		req.Same(storeDown, err)
	})

	t.Run("should reject a member already on the household", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		caller := activeMember(callerMail, domain.MembershipDeluxe)
		partner := activeMember("partner@example.org", domain.MembershipBasic)
		household := householdOf(caller, partner)
		f.expectCaller(caller)
		f.repo.EXPECT().GetHousehold(household.ID).Return(household, nil)
		f.repo.EXPECT().HouseholdMemberGetByMailAddress(partner.MailAddress).Return(partner, nil)
		f.repo.EXPECT().UpdateHousehold(gomock.Any()).Times(0)

		_, err := NewHouseholdAddHouseholdMember(f.deps, f.creator).Execute(ctx, &domain.HouseholdAddHouseholdMemberCommand{
			HouseholdID: household.ID,
			MailAddress: partner.MailAddress,
		})

		req.True(errors.HasCode(err, errors.CodeHouseholdMemberAlreadyOnHouse))
	})

	t.Run("should require a deluxe membership", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		caller := activeMember(callerMail, domain.MembershipBasic)
		household := householdOf(caller)
		f.expectCaller(caller)
		f.repo.EXPECT().GetHousehold(household.ID).Return(household, nil)

		_, err := NewHouseholdAddHouseholdMember(f.deps, f.creator).Execute(ctx, &domain.HouseholdAddHouseholdMemberCommand{
			HouseholdID: household.ID,
			MailAddress: "new@example.org",
		})

		req.True(errors.HasCode(err, errors.CodeHouseholdMemberMissingMembership))
	})

	t.Run("should reject an invalid mail address", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		caller := activeMember(callerMail, domain.MembershipPremium)
		household := householdOf(caller)
		f.expectCaller(caller)
		f.repo.EXPECT().GetHousehold(household.ID).Return(household, nil)

		_, err := NewHouseholdAddHouseholdMember(f.deps, f.creator).Execute(ctx, &domain.HouseholdAddHouseholdMemberCommand{
			HouseholdID: household.ID,
			MailAddress: "not-a-mail",
		})

		req.True(errors.HasCode(err, errors.CodeIllegalValue))
	})
}

func TestHouseholdRemoveHouseholdMember(t *testing.T) {
	ctx := context.Background()

	t.Run("should detach a member of the household", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		caller := activeMember(callerMail, domain.MembershipDeluxe)
		partner := activeMember("partner@example.org", domain.MembershipBasic)
		household := householdOf(caller, partner)
		f.expectCaller(caller)
		f.repo.EXPECT().GetHousehold(household.ID).Return(household, nil)
		f.repo.EXPECT().HouseholdMemberGetByMailAddress(partner.MailAddress).Return(partner, nil)
		f.repo.EXPECT().UpdateHousehold(gomock.Any()).
			DoAndReturn(func(h *domain.Household) (*domain.Household, error) {
				req.Equal([]uuid.UUID{caller.ID}, h.Members)
				return h, nil
			}).Times(1)

		_, err := NewHouseholdRemoveHouseholdMember(f.deps).Execute(ctx, &domain.HouseholdRemoveHouseholdMemberCommand{
			HouseholdID: household.ID,
			MailAddress: partner.MailAddress,
		})

		req.NoError(err)
		req.False(partner.BelongsTo(household.ID))
	})

	t.Run("should not let the caller remove themselves", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		caller := activeMember(callerMail, domain.MembershipDeluxe)
		household := householdOf(caller)
		f.expectCaller(caller)
		f.repo.EXPECT().GetHousehold(household.ID).Return(household, nil)

		_, err := NewHouseholdRemoveHouseholdMember(f.deps).Execute(ctx, &domain.HouseholdRemoveHouseholdMemberCommand{
			HouseholdID: household.ID,
			MailAddress: "OWNER@example.org",
		})

		req.True(errors.HasCode(err, errors.CodeCannotRemoveYourself))
	})

	t.Run("should reject a member who is not on the household", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		caller := activeMember(callerMail, domain.MembershipDeluxe)
		stranger := activeMember("stranger@example.org", domain.MembershipBasic)
		household := householdOf(caller)
		f.expectCaller(caller)
		f.repo.EXPECT().GetHousehold(household.ID).Return(household, nil)
		f.repo.EXPECT().HouseholdMemberGetByMailAddress(stranger.MailAddress).Return(stranger, nil)
		f.repo.EXPECT().UpdateHousehold(gomock.Any()).Times(0)

		_, err := NewHouseholdRemoveHouseholdMember(f.deps).Execute(ctx, &domain.HouseholdRemoveHouseholdMemberCommand{
			HouseholdID: household.ID,
			MailAddress: stranger.MailAddress,
		})

		req.True(errors.HasCode(err, errors.CodeHouseholdMemberNotOnHousehold))
	})

	t.Run("should reject an unknown mail address", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		caller := activeMember(callerMail, domain.MembershipDeluxe)
		household := householdOf(caller)
		f.expectCaller(caller)
		f.repo.EXPECT().GetHousehold(household.ID).Return(household, nil)
		f.repo.EXPECT().HouseholdMemberGetByMailAddress("ghost@example.org").Return(nil, nil)

		_, err := NewHouseholdRemoveHouseholdMember(f.deps).Execute(ctx, &domain.HouseholdRemoveHouseholdMemberCommand{
			HouseholdID: household.ID,
			MailAddress: "ghost@example.org",
		})

		req.True(errors.HasCode(err, errors.CodeHouseholdMemberNotCreated))
	})
}
