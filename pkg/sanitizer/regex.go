package sanitizer

import "regexp"

var (
	nonDigitRegex = regexp.MustCompile(`[^0-9]`)

	// Separators used by the "XXX.XXX.XXX-XX" and "XX.XXX.XXX/XXXX-XX" layouts.
	documentPunctuationRegex = regexp.MustCompile(`[./-]`)
)
