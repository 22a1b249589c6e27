// Package validation holds the input checks used by the console controller:
// country-code format and existence, optional percentage parsing and name
// capitalization.
package validation

import (
	"context"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"countrymgr/errs"
	"countrymgr/models"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const codeRule = "required,len=3,alpha"

var validate = validator.New()

// CodeLookup is the subset of the repository needed to check code existence.
type CodeLookup interface {
	FindByCode(ctx context.Context, code string) (models.Country, bool, error)
}

// NormalizeCode trims and uppercases a country code.
func NormalizeCode(input string) string {
	return strings.ToUpper(strings.TrimSpace(input))
}

// CheckCodeFormat accepts exactly three ASCII letters after normalization.
func CheckCodeFormat(input string) (string, error) {
	code := NormalizeCode(input)
	if code == "" {
		return "", errs.NewValidationError("code", "country code cannot be empty")
	}
	if err := validate.Var(code, codeRule); err != nil {
		return "", errs.NewValidationError("code", "country code must be exactly 3 letters (A-Z)")
	}
	return code, nil
}

// ValidateCountryCode normalizes input, checks its format and then its
// presence in the store. With mustExist the code has to be stored already,
// otherwise it has to be free.
func ValidateCountryCode(ctx context.Context, input string, mustExist bool, lookup CodeLookup) (string, error) {
	code, err := CheckCodeFormat(input)
	if err != nil {
		return "", err
	}

	_, found, err := lookup.FindByCode(ctx, code)
	if err != nil {
		return "", err
	}

	switch {
	case mustExist && !found:
		return "", errs.ForCode(code, errs.ErrNotFound)
	case !mustExist && found:
		return "", errs.ForCode(code, errs.ErrAlreadyExists)
	}
	return code, nil
}

// ParseOptionalPercentage maps blank input to nil. Anything else has to be a
// finite number between 0 and 100.
func ParseOptionalPercentage(input string) (*float64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, errs.NewValidationError("percentage", "please enter a valid number or leave blank if unknown")
	}
	if v < 0 || v > 100 {
		return nil, errs.NewValidationError("percentage", "percentage must be between 0 and 100")
	}
	return &v, nil
}

// CapitalizeWords uppercases the first character of each whitespace
// separated word, lowercases the rest and joins them with single spaces.
func CapitalizeWords(input string) string {
	words := strings.Fields(input)
	if len(words) == 0 {
		return input
	}

	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)
	for i, w := range words {
		_, size := utf8.DecodeRuneInString(w)
		words[i] = upper.String(w[:size]) + lower.String(w[size:])
	}
	return strings.Join(words, " ")
}
