package format

import (
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/brkit/pkg/sanitizer"
	"github.com/dmitrymomot/brkit/pkg/validator"
)

// PadLeadingZeros left-pads the stringified value with "0" up to width
// characters. Longer values are returned untouched; absent values yield "".
func PadLeadingZeros(value any, width int) string {
	if !validator.IsPresent(value) {
		return ""
	}

	s := sanitizer.Stringify(value)
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat("0", width-n) + s
	}
	return s
}
