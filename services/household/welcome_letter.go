//go:generate go run go.uber.org/mock/mockgen -source=welcome_letter.go -destination=../../mocks/mock_welcome_letter_dispatcher.go -package=mocks
package household

import (
	"context"
	"log/slog"
	"time"

	"household-intranet/domain"
	"household-intranet/errors"
	"household-intranet/repositories"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// IWelcomeLetterDispatcher sends a new member the activation code it needs.
type IWelcomeLetterDispatcher interface {
	Dispatch(ctx context.Context, member *domain.HouseholdMember, culture language.Tag) error
}

const welcomeLetterKey = "WELCOME_LETTER"

func init() {
	letters := map[language.Tag]string{
		language.English: "Welcome %s. Use the activation code %s to activate your membership.",
		language.Danish:  "Velkommen %s. Brug aktiveringskoden %s til at aktivere dit medlemskab.",
	}
	for tag, letter := range letters {
		if err := message.SetString(tag, welcomeLetterKey, letter); err != nil {
			panic(err)
		}
	}
}

// WelcomeLetter renders the letter body in culture, falling back to English.
func WelcomeLetter(member *domain.HouseholdMember, culture language.Tag) string {
	return errors.Printer(culture).Sprintf(welcomeLetterKey, member.MailAddress, member.ActivationCode)
}

// LogWelcomeLetterDispatcher writes the letter to the log instead of mailing it.
type LogWelcomeLetterDispatcher struct {
	log *slog.Logger
}

func NewLogWelcomeLetterDispatcher(log *slog.Logger) IWelcomeLetterDispatcher {
	return &LogWelcomeLetterDispatcher{log: log}
}

func (d *LogWelcomeLetterDispatcher) Dispatch(_ context.Context, member *domain.HouseholdMember, culture language.Tag) error {
	d.log.Info("Welcome letter dispatched",
		"to", member.MailAddress,
		"culture", culture.String(),
		"body", WelcomeLetter(member, culture))
	return nil
}

// MemberCreator inserts a new household member and sends the welcome letter.
type MemberCreator struct {
	repository repositories.IHouseholdRepository
	dispatcher IWelcomeLetterDispatcher
	now        func() time.Time
	log        *slog.Logger
}

func NewMemberCreator(
	repository repositories.IHouseholdRepository,
	dispatcher IWelcomeLetterDispatcher,
	now func() time.Time,
	log *slog.Logger,
) *MemberCreator {
	return &MemberCreator{repository: repository, dispatcher: dispatcher, now: now, log: log}
}

// Create stores the member and sends the letter right away. Nothing is rolled back
// when a later step of the calling command fails: the member stays stored and the
// letter stays sent, so it can be attached again by mail address.
func (c *MemberCreator) Create(ctx context.Context, mailAddress string, culture language.Tag) (*domain.HouseholdMember, error) {
	member, err := c.repository.InsertHouseholdMember(domain.NewHouseholdMember(mailAddress, c.now()))
	if err != nil {
		return nil, err
	}
	if err = c.dispatcher.Dispatch(ctx, member, culture); err != nil {
		return nil, err
	}
	c.log.Debug("Household member created", "id", member.ID)
	return member, nil
}
