// Package format renders Brazilian documents, currency amounts, dates and
// phone numbers as display strings.
//
// Every formatter treats absent input (nil, NaN, blank strings; see
// validator.IsPresent) as "nothing to format" and returns "" with a nil error.
// Malformed input is reported with a sentinel error from errors.go.
//
// # Usage
//
//	import "github.com/dmitrymomot/brkit/pkg/format"
//
//	format.FormatDocument("52998224725")           // "529.982.247-25", nil
//	format.FormatDocument(11222333000181)          // "11.222.333/0001-81", nil
//	format.FormatCurrency(1234.5, "")              // "R$ 1.234,50", nil
//	format.FormatCurrency(1234.5, locale.English)  // "$1,234.50", nil
//	format.FormatDate("2024-03-05")                // "05/03/2024", nil
//	format.FormatPhone("11987654321")              // "(11)98765-4321", nil
//	format.PadLeadingZeros(42, 5)                  // "00042"
//
// The package-level functions use Default(). Build a Formatter with New to
// change the default locale, time zone, phone region or hour offset, or with
// NewFromConfig(LoadConfig()) to read them from BRKIT_* environment variables.
//
// # Hour offset
//
// FormatDateTime adds LegacyHourOffset (3) to the hour field, without carrying
// into the date, because existing consumers expect that output. Use
// WithHourOffset(0) to render the hour as it is in the formatter location.
//
// # Errors
//
//	ErrInvalidLength       document is neither 11 nor 14 digits
//	ErrInvalidFormat       check digits do not match (ErrInvalidCPF, ErrInvalidCNPJ)
//	ErrInvalidPhone        phone number has the wrong shape
//	ErrInvalidDate         value cannot be read as a date
//	ErrUnknownLocale       locale name is not in the locale table
//	ErrUnsupportedPattern  FormatDateTime pattern is not one of Patterns()
//	ErrInvalidAmount       amount is not numeric
//
// # Logging
//
// Rejections are logged at debug level to the logger given with WithLogger.
// Documents and phone numbers are masked before logging. Without WithLogger
// nothing is logged.
//
// A Formatter is immutable and safe for concurrent use.
package format
