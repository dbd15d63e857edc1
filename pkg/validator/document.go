package validator

import (
	"strings"

	"github.com/dmitrymomot/brkit/pkg/sanitizer"
)

const (
	CPFLength  = 11
	CNPJLength = 14
)

// IsValidCPF checks the two CPF check digits. Punctuation is ignored.
// Numbers made of one repeated digit are rejected as placeholders.
func IsValidCPF(value string) bool {
	cpf := sanitizer.KeepDigits(value)
	if len(cpf) != CPFLength || isRepeatedDigit(cpf) {
		return false
	}

	if cpfCheckDigit(cpf[:9]) != digitAt(cpf, 9) {
		return false
	}
	return cpfCheckDigit(cpf[:10]) == digitAt(cpf, 10)
}

// IsValidCNPJ checks the two CNPJ check digits. Punctuation is ignored.
func IsValidCNPJ(value string) bool {
	cnpj := sanitizer.KeepDigits(value)
	if len(cnpj) != CNPJLength {
		return false
	}

	if cnpjCheckDigit(cnpj[:12], 5) != digitAt(cnpj, 12) {
		return false
	}
	return cnpjCheckDigit(cnpj[:13], 6) == digitAt(cnpj, 13)
}

// cpfCheckDigit weighs digits from len+1 down to 2.
func cpfCheckDigit(digits string) int {
	top := len(digits) + 1
	sum := 0
	for i := range len(digits) {
		sum += digitAt(digits, i) * (top - i)
	}

	dv := 11 - sum%11
	if dv >= 10 {
		return 0
	}
	return dv
}

// cnpjCheckDigit weighs digits from start down to 2, then restarts at 9.
func cnpjCheckDigit(digits string, start int) int {
	sum := 0
	weight := start
	for i := range len(digits) {
		sum += digitAt(digits, i) * weight
		weight--
		if weight < 2 {
			weight = 9
		}
	}

	rem := sum % 11
	if rem < 2 {
		return 0
	}
	return 11 - rem
}

func digitAt(s string, i int) int {
	return int(s[i] - '0')
}

func isRepeatedDigit(s string) bool {
	return s != "" && strings.Count(s, s[:1]) == len(s)
}

// ValidCPF validates a CPF, formatted or not.
func ValidCPF(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidCPF(value)
		},
		Error: newError(field, "must be a valid CPF", "validation.cpf"),
	}
}

// ValidCNPJ validates a CNPJ, formatted or not.
func ValidCNPJ(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidCNPJ(value)
		},
		Error: newError(field, "must be a valid CNPJ", "validation.cnpj"),
	}
}

// ValidDocument accepts either a valid CPF or a valid CNPJ.
func ValidDocument(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidCPF(value) || IsValidCNPJ(value)
		},
		Error: newError(field, "must be a valid CPF or CNPJ", "validation.document"),
	}
}
