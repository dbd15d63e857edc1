package validator

import (
	"regexp"

	"github.com/dmitrymomot/brkit/pkg/sanitizer"
)

const (
	MinPhoneDigits = 8
	MaxPhoneDigits = 11
)

var (
	// Shape only: something@something.something without spaces.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	digitsOnlyRegex = regexp.MustCompile(`^[0-9]+$`)
)

// IsValidEmail reports whether value looks like an e-mail address.
// Deliverability is not checked.
func IsValidEmail(value string) bool {
	return emailRegex.MatchString(value)
}

// IsValidPhone reports whether the stringified value is 8 to 11 digits with no
// other characters: a local number with an optional two digit area code.
func IsValidPhone(value any) bool {
	phone := sanitizer.Stringify(value)
	if len(phone) < MinPhoneDigits || len(phone) > MaxPhoneDigits {
		return false
	}
	return digitsOnlyRegex.MatchString(phone)
}

func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidEmail(value)
		},
		Error: newError(field, "must be a valid email address", "validation.email"),
	}
}

// ValidPhone validates an unformatted Brazilian phone number.
func ValidPhone(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			return IsValidPhone(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain 8 to 11 digits",
			TranslationKey: "validation.phone",
			TranslationValues: map[string]any{
				"field": field,
				"min":   MinPhoneDigits,
				"max":   MaxPhoneDigits,
			},
		},
	}
}
