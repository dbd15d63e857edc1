// Package sanitizer provides the small string helpers shared by the validator
// and format packages: turning loosely typed input into a string, keeping only
// ASCII digits and removing the punctuation used in CPF/CNPJ documents and
// phone numbers.
//
// The helpers are grouped as follows:
//
//   - Conversion: Stringify renders strings, numbers, fmt.Stringer values and
//     pointers to them the way a user would type them ("12345678909", not
//     "1.2345678909e+10").
//
//   - Documents: KeepDigits, StripDocumentFormatting and MaskDocument work on
//     CPF/CNPJ input.
//
//   - Phones: NormalizePhone reduces a phone number to its digits.
//
// # Usage
//
//	import "github.com/dmitrymomot/brkit/pkg/sanitizer"
//
//	sanitizer.StripDocumentFormatting("529.982.247-25") // "52998224725"
//	sanitizer.Stringify(52998224725)                     // "52998224725"
//	sanitizer.MaskDocument("52998224725")                // "*******4725"
//
// # Error handling
//
// None of the helpers returns an error. Input that cannot be cleaned is
// returned as-is (or as an empty string for nil values).
//
// The package holds no mutable state and is safe for concurrent use.
package sanitizer
