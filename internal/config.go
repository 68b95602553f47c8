package internal

import (
	"fmt"
	"strings"
	"time"

	"household-intranet/auth"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

type Config struct {
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true" validate:"required"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO" validate:"required"`
	PostingDaysBack      int           `env:"POSTING_DAYS_BACK,default=30" validate:"gt=0"`
	JwtSecret            string        `env:"JWT_SECRET,required=true" validate:"min=16"`
	JwtIssuer            string        `env:"JWT_ISSUER,default=household-intranet" validate:"required"`
	TokenDuration        time.Duration `env:"TOKEN_DURATION,default=24h" validate:"gt=0"`
	DefaultCulture       string        `env:"DEFAULT_CULTURE,default=en" validate:"required"`
	IllegalCharacters    string        `env:"ILLEGAL_CHARACTERS,default=<>%&{}\\"`
	HouseholdNameMaxLen  int           `env:"HOUSEHOLD_NAME_MAX_LENGTH,default=64" validate:"gt=0"`
	DescriptionMaxLength int           `env:"DESCRIPTION_MAX_LENGTH,default=2048" validate:"gt=0"`
}

var configValidator = validator.New()

// Validate checks the loaded values before any component is built from them.
func (c Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := language.Parse(c.DefaultCulture); err != nil {
		return fmt.Errorf("DEFAULT_CULTURE %q is not a culture: %w", c.DefaultCulture, err)
	}
	return nil
}

// Culture is the parsed DEFAULT_CULTURE. Call Validate first.
func (c Config) Culture() language.Tag {
	return language.Make(c.DefaultCulture)
}

// IllegalCharacterList splits ILLEGAL_CHARACTERS into one entry per rune, skipping blanks.
func (c Config) IllegalCharacterList() []string {
	var chars []string
	for _, r := range c.IllegalCharacters {
		if s := string(r); strings.TrimSpace(s) != "" {
			chars = append(chars, s)
		}
	}
	return chars
}

func NewTokenIssuer(c Config) auth.TokenIssuer {
	return auth.NewTokenIssuer(c.JwtSecret, c.JwtIssuer, c.TokenDuration)
}
