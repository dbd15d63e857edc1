package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/brkit/pkg/validator"
)

func TestIsValidEmail(t *testing.T) {
	t.Run("valid addresses", func(t *testing.T) {
		valid := []string{
			"user@example.com",
			"maria.silva@empresa.com.br",
			"a@b.c",
			"first+tag@sub.domain.org",
		}
		for _, email := range valid {
			assert.True(t, validator.IsValidEmail(email), "email should be valid: %s", email)
		}
	})

	t.Run("invalid addresses", func(t *testing.T) {
		invalid := []string{
			"",
			"plainaddress",
			"@example.com",
			"user@",
			"user@example",
			"user @example.com",
			"user@exa mple.com",
			"user@@example.com",
			"user@example.",
		}
		for _, email := range invalid {
			assert.False(t, validator.IsValidEmail(email), "email should be invalid: %s", email)
		}
	})
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected bool
	}{
		{name: "eight digits", input: "32345678", expected: true},
		{name: "nine digits", input: "987654321", expected: true},
		{name: "ten digits", input: "1132345678", expected: true},
		{name: "eleven digits", input: "11987654321", expected: true},
		{name: "integer input", input: 11987654321, expected: true},
		{name: "seven digits", input: "1234567", expected: false},
		{name: "twelve digits", input: "551198765432", expected: false},
		{name: "formatted", input: "(11) 98765-4321", expected: false},
		{name: "letters", input: "1198765432a", expected: false},
		{name: "empty", input: "", expected: false},
		{name: "nil", input: nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validator.IsValidPhone(tt.input))
		})
	}
}

func TestContactRules(t *testing.T) {
	assert.NoError(t, validator.Apply(
		validator.ValidEmail("email", "user@example.com"),
		validator.ValidPhone("phone", "11987654321"),
	))

	err := validator.Apply(
		validator.ValidEmail("email", "user@example"),
		validator.ValidPhone("phone", "(11) 98765-4321"),
	)
	require.Error(t, err)

	verrs := validator.ExtractValidationErrors(err)
	assert.Equal(t, []string{"email", "phone"}, verrs.Fields())
	assert.Equal(t, []string{"must be a valid email address"}, verrs.Get("email"))
}
