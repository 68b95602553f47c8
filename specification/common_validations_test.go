package specification

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCommonValidations(t *testing.T) {
	req := require.New(t)
	cv, err := NewCommonValidations([]string{"<", ">", "%", "&", "--"})
	req.NoError(err)

	t.Run("should detect values", func(t *testing.T) {
		req := require.New(t)
		req.True(cv.HasValue("household"))
		req.False(cv.HasValue(""))
		req.False(cv.HasValue("   "))
	})

	t.Run("should count runes when checking length", func(t *testing.T) {
		req := require.New(t)
		req.True(cv.IsLengthValid("Ærø", 1, 3))
		req.False(cv.IsLengthValid("Ærøs", 1, 3))
		req.False(cv.IsLengthValid("", 1, 3))
	})

	t.Run("should find illegal characters and sequences", func(t *testing.T) {
		req := require.New(t)
		req.True(cv.ContainsIllegalChar("<script>"))
		req.True(cv.ContainsIllegalChar("drop -- table"))
		req.True(cv.ContainsIllegalChar("100%"))
		req.False(cv.ContainsIllegalChar("Smith"))
		req.False(cv.ContainsIllegalChar("The Smith family - 2 adults"))
		req.False(cv.ContainsIllegalChar(""))
	})

	t.Run("should accept everything without illegal characters configured", func(t *testing.T) {
		req := require.New(t)
		empty, err := NewCommonValidations(nil)
		req.NoError(err)
		req.False(empty.ContainsIllegalChar("<>%&"))
	})

	t.Run("should validate mail addresses", func(t *testing.T) {
		req := require.New(t)
		req.True(cv.IsMailAddress("member@example.org"))
		req.False(cv.IsMailAddress("member.example.org"))
		req.False(cv.IsMailAddress(""))
	})

	t.Run("should include both ends of a date range", func(t *testing.T) {
		req := require.New(t)
		from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 0, 30)
		req.True(cv.IsDateWithinRange(from, from, to))
		req.True(cv.IsDateWithinRange(to, from, to))
		req.False(cv.IsDateWithinRange(from.Add(-time.Second), from, to))
		req.False(cv.IsDateWithinRange(to.Add(time.Second), from, to))
	})

	t.Run("should compare amounts against zero", func(t *testing.T) {
		req := require.New(t)
		req.True(cv.IsGreaterThanOrEqualToZero(decimal.Zero))
		req.True(cv.IsGreaterThanOrEqualToZero(decimal.NewFromFloat(12.5)))
		req.False(cv.IsGreaterThanOrEqualToZero(decimal.NewFromInt(-1)))
	})

	t.Run("should compare strings with and without case", func(t *testing.T) {
		req := require.New(t)
		req.True(cv.Equals("Member@Example.org", "member@example.org", true))
		req.False(cv.Equals("Member@Example.org", "member@example.org", false))
	})
}
