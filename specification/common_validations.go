package specification

import (
	"strings"
	"time"
	"unicode/utf8"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// CommonValidations holds the rule primitives shared by every command handler.
type CommonValidations struct {
	illegal *goahocorasick.Machine
}

// NewCommonValidations builds the illegal character automaton. Each entry of
// illegalChars is a forbidden character or character sequence.
func NewCommonValidations(illegalChars []string) (CommonValidations, error) {
	patterns := lo.FilterMap(lo.Uniq(illegalChars), func(s string, _ int) ([]rune, bool) {
		return []rune(s), s != ""
	})
	if len(patterns) == 0 {
		return CommonValidations{}, nil
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return CommonValidations{}, err
	}
	return CommonValidations{illegal: m}, nil
}

func (c CommonValidations) HasValue(value string) bool {
	return strings.TrimSpace(value) != ""
}

// IsLengthValid counts runes, not bytes.
func (c CommonValidations) IsLengthValid(value string, min, max int) bool {
	n := utf8.RuneCountInString(value)
	return n >= min && n <= max
}

func (c CommonValidations) ContainsIllegalChar(value string) bool {
	if c.illegal == nil || value == "" {
		return false
	}
	return len(c.illegal.MultiPatternSearch([]rune(value), true)) > 0
}

func (c CommonValidations) IsMailAddress(value string) bool {
	return validate.Var(value, "required,email") == nil
}

// IsDateWithinRange is inclusive on both ends.
func (c CommonValidations) IsDateWithinRange(value, from, to time.Time) bool {
	return !value.Before(from) && !value.After(to)
}

func (c CommonValidations) IsGreaterThanOrEqualToZero(value decimal.Decimal) bool {
	return !value.IsNegative()
}

func (c CommonValidations) Equals(a, b string, caseInsensitive bool) bool {
	if caseInsensitive {
		return strings.EqualFold(a, b)
	}
	return a == b
}
