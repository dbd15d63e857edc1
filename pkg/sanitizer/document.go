package sanitizer

import "strings"

// KeepDigits drops everything except the ASCII digits 0-9.
func KeepDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// StripDocumentFormatting removes the ".", "-" and "/" separators of a
// formatted CPF or CNPJ. Other characters are left alone and nothing is validated.
func StripDocumentFormatting(s string) string {
	return documentPunctuationRegex.ReplaceAllString(s, "")
}

// MaskDocument keeps the last four digits of a document visible, for logs and
// receipts. Input with fewer than four digits is fully masked.
func MaskDocument(s string) string {
	digits := KeepDigits(s)
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// NormalizePhone strips formatting from a phone number, leaving its digits.
func NormalizePhone(phone string) string {
	return KeepDigits(phone)
}
