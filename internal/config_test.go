package internal

import (
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func validConfig(t *testing.T) Config {
	return Config{
		BadgerFilepath:       t.TempDir(),
		LogLevel:             "INFO",
		PostingDaysBack:      30,
		JwtSecret:            "0123456789abcdef0123",
		JwtIssuer:            "household-intranet-test",
		TokenDuration:        time.Hour,
		DefaultCulture:       "en",
		IllegalCharacters:    "<>%",
		HouseholdNameMaxLen:  64,
		DescriptionMaxLength: 2048,
	}
}

func TestConfig(t *testing.T) {
	t.Run("should apply defaults from the environment", func(t *testing.T) {
		req := require.New(t)
		t.Setenv("BADGER_FILEPATH", "/tmp/intranet")
		t.Setenv("JWT_SECRET", "0123456789abcdef0123")

		var config Config
		_, err := env.UnmarshalFromEnviron(&config)

		req.NoError(err)
		req.Equal(30, config.PostingDaysBack)
		req.Equal("en", config.DefaultCulture)
		req.Equal(`<>%&{}\`, config.IllegalCharacters)
		req.Equal(64, config.HouseholdNameMaxLen)
		req.Equal(2048, config.DescriptionMaxLength)
		req.Equal(24*time.Hour, config.TokenDuration)
		req.NoError(config.Validate())
	})

	t.Run("should reject a non positive posting window", func(t *testing.T) {
		req := require.New(t)
		config := validConfig(t)
		config.PostingDaysBack = 0
		req.Error(config.Validate())
	})

	t.Run("should reject a short secret", func(t *testing.T) {
		req := require.New(t)
		config := validConfig(t)
		config.JwtSecret = "short"
		req.Error(config.Validate())
	})

	t.Run("should reject an unparsable culture", func(t *testing.T) {
		req := require.New(t)
		config := validConfig(t)
		config.DefaultCulture = "not a culture"
		req.ErrorContains(config.Validate(), "DEFAULT_CULTURE")
	})

	t.Run("should parse the default culture", func(t *testing.T) {
		req := require.New(t)
		config := validConfig(t)
		config.DefaultCulture = "da-DK"
		req.Equal(language.MustParse("da-DK"), config.Culture())
	})

	t.Run("should split illegal characters per rune", func(t *testing.T) {
		req := require.New(t)
		config := validConfig(t)
		config.IllegalCharacters = "< >æ"
		req.Equal([]string{"<", ">", "æ"}, config.IllegalCharacterList())
	})
}
