package validator_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/brkit/pkg/sanitizer"
	"github.com/dmitrymomot/brkit/pkg/validator"
)

type documentCases struct {
	Valid   []string `yaml:"valid"`
	Invalid []string `yaml:"invalid"`
}

type documentFixtures struct {
	CPF  documentCases `yaml:"cpf"`
	CNPJ documentCases `yaml:"cnpj"`
}

func loadDocumentFixtures(t *testing.T) documentFixtures {
	t.Helper()

	data, err := os.ReadFile("testdata/documents.yaml")
	require.NoError(t, err)

	var fixtures documentFixtures
	require.NoError(t, yaml.Unmarshal(data, &fixtures))
	require.NotEmpty(t, fixtures.CPF.Valid)
	require.NotEmpty(t, fixtures.CNPJ.Valid)
	return fixtures
}

// flipDigit replaces the digit at i with the next one, wrapping 9 to 0.
func flipDigit(s string, i int) string {
	b := []byte(s)
	b[i] = '0' + (b[i]-'0'+1)%10
	return string(b)
}

func TestIsValidCPF(t *testing.T) {
	fixtures := loadDocumentFixtures(t)

	t.Run("valid numbers", func(t *testing.T) {
		for _, cpf := range fixtures.CPF.Valid {
			assert.True(t, validator.IsValidCPF(cpf), "CPF should be valid: %s", cpf)
		}
	})

	t.Run("invalid numbers", func(t *testing.T) {
		for _, cpf := range fixtures.CPF.Invalid {
			assert.False(t, validator.IsValidCPF(cpf), "CPF should be invalid: %s", cpf)
		}
	})

	t.Run("changing a check digit invalidates", func(t *testing.T) {
		for _, cpf := range fixtures.CPF.Valid {
			digits := sanitizer.KeepDigits(cpf)
			assert.False(t, validator.IsValidCPF(flipDigit(digits, 9)), "first check digit flipped: %s", cpf)
			assert.False(t, validator.IsValidCPF(flipDigit(digits, 10)), "second check digit flipped: %s", cpf)
		}
	})

	t.Run("repeated digits are rejected", func(t *testing.T) {
		for d := '0'; d <= '9'; d++ {
			cpf := strings.Repeat(string(d), 11)
			assert.False(t, validator.IsValidCPF(cpf), "placeholder CPF should be invalid: %s", cpf)
		}
	})

	t.Run("repeated calls do not share state", func(t *testing.T) {
		assert.False(t, validator.IsValidCPF("52998224726"))
		assert.True(t, validator.IsValidCPF("52998224725"))
		assert.False(t, validator.IsValidCPF("52998224726"))
	})
}

func TestIsValidCNPJ(t *testing.T) {
	fixtures := loadDocumentFixtures(t)

	t.Run("valid numbers", func(t *testing.T) {
		for _, cnpj := range fixtures.CNPJ.Valid {
			assert.True(t, validator.IsValidCNPJ(cnpj), "CNPJ should be valid: %s", cnpj)
		}
	})

	t.Run("invalid numbers", func(t *testing.T) {
		for _, cnpj := range fixtures.CNPJ.Invalid {
			assert.False(t, validator.IsValidCNPJ(cnpj), "CNPJ should be invalid: %s", cnpj)
		}
	})

	t.Run("changing any base digit invalidates", func(t *testing.T) {
		for _, cnpj := range fixtures.CNPJ.Valid {
			digits := sanitizer.KeepDigits(cnpj)
			for i := range 12 {
				for step := 1; step <= 9; step++ {
					b := []byte(digits)
					b[i] = '0' + (b[i]-'0'+byte(step))%10
					assert.False(t, validator.IsValidCNPJ(string(b)), "altered %s at %d", cnpj, i)
				}
			}
		}
	})

	t.Run("changing a check digit invalidates", func(t *testing.T) {
		for _, cnpj := range fixtures.CNPJ.Valid {
			digits := sanitizer.KeepDigits(cnpj)
			assert.False(t, validator.IsValidCNPJ(flipDigit(digits, 12)))
			assert.False(t, validator.IsValidCNPJ(flipDigit(digits, 13)))
		}
	})
}

func TestDocumentRules(t *testing.T) {
	t.Run("valid documents pass", func(t *testing.T) {
		err := validator.Apply(
			validator.ValidCPF("cpf", "529.982.247-25"),
			validator.ValidCNPJ("cnpj", "11.222.333/0001-81"),
			validator.ValidDocument("owner", "52998224725"),
			validator.ValidDocument("company", "11222333000181"),
		)
		assert.NoError(t, err)
	})

	t.Run("invalid documents collect errors", func(t *testing.T) {
		err := validator.Apply(
			validator.ValidCPF("cpf", "11111111111"),
			validator.ValidCNPJ("cnpj", "11222333000182"),
			validator.ValidDocument("owner", "123"),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, "validation.cpf", verrs[0].TranslationKey)
		assert.Equal(t, "validation.cnpj", verrs[1].TranslationKey)
		assert.Equal(t, "validation.document", verrs[2].TranslationKey)
		assert.Equal(t, "owner", verrs[2].TranslationValues["field"])
	})
}
