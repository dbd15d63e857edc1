// Package locale holds the static locale table used by the formatting helpers.
//
// Each Entry binds a short, human-readable locale name (for example
// "portugues_brasil") to a BCP 47 language tag, an ISO 4217 currency and the
// layout rules needed to render amounts in that currency: symbol, symbol
// placement, decimal and grouping separators and the minimum number of integer
// digits before grouping kicks in. Tags and currency units are typed values
// from golang.org/x/text so callers can hand them straight to other x/text
// APIs.
//
// The table also exposes the twelve English month abbreviations used by the
// "MMM dd, yyyy" date pattern.
//
// # Usage
//
//	entry, err := locale.Lookup("frances")
//	if errors.Is(err, locale.ErrUnknownLocale) {
//	    // unsupported name
//	}
//	fmt.Println(entry.Tag, entry.Currency) // fr-FR EUR
//
//	locale.MonthAbbreviation(time.March) // "Mar"
//
// # Concurrency
//
// The table is built at package initialisation and never modified afterwards.
// Lookup returns copies, so every helper is safe for concurrent use.
package locale
