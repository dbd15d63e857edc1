package locale

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported locale names.
const (
	Chinese             = "chines"
	English             = "ingles"
	Spanish             = "espanhol"
	BrazilianPortuguese = "portugues_brasil"
	EuropeanPortuguese  = "portugues_portugal"
	French              = "frances"

	// Default is used when a caller does not pick a locale.
	Default = BrazilianPortuguese
)

const (
	nbsp  = "\u00a0"
	nnbsp = "\u202f"
)

// Entry describes a supported locale and the way amounts in its currency are laid out.
type Entry struct {
	Name     string
	Tag      language.Tag
	Currency currency.Unit

	// SymbolAfter places the symbol after the number ("10,00 €").
	SymbolAfter bool
	// SymbolSpacing separates symbol and number; empty for "$10.00".
	SymbolSpacing string

	DecimalSeparator string
	GroupSeparator   string
	// MinGroupingDigits follows CLDR: grouping starts once the integer part has
	// at least 3+MinGroupingDigits digits. With 2, "1234" stays ungrouped.
	MinGroupingDigits int

	symbol string
}

// Scale returns the number of fraction digits used for the entry's currency.
func (e Entry) Scale() int {
	scale, _ := currency.Standard.Rounding(e.Currency)
	return scale
}

// Symbol returns the narrow CLDR symbol of the entry's currency as written
// in the entry's language, e.g. "R$" for BRL in pt-BR.
func (e Entry) Symbol() string {
	if e.symbol != "" {
		return e.symbol
	}
	return currencySymbol(e.Tag, e.Currency)
}

// currencySymbol falls back to the English symbol, then to the ISO code.
func currencySymbol(tag language.Tag, unit currency.Unit) string {
	for _, t := range []language.Tag{tag, language.English} {
		sym := strings.TrimSpace(message.NewPrinter(t).Sprint(currency.NarrowSymbol(unit)))
		if sym != "" && sym != unit.String() {
			return sym
		}
	}
	return unit.String()
}

// Language returns the entry's language tag in BCP 47 form, e.g. "pt-BR".
func (e Entry) Language() string {
	return e.Tag.String()
}

var table = [...]Entry{
	{
		Name:              Chinese,
		Tag:               language.MustParse("zh-CN"),
		Currency:          currency.CNY,
		DecimalSeparator:  ".",
		GroupSeparator:    ",",
		MinGroupingDigits: 1,
	},
	{
		Name:              English,
		Tag:               language.MustParse("en-US"),
		Currency:          currency.USD,
		DecimalSeparator:  ".",
		GroupSeparator:    ",",
		MinGroupingDigits: 1,
	},
	{
		Name:              Spanish,
		Tag:               language.MustParse("es-ES"),
		Currency:          currency.EUR,
		SymbolAfter:       true,
		SymbolSpacing:     nbsp,
		DecimalSeparator:  ",",
		GroupSeparator:    ".",
		MinGroupingDigits: 2,
	},
	{
		Name:              BrazilianPortuguese,
		Tag:               language.MustParse("pt-BR"),
		Currency:          currency.BRL,
		SymbolSpacing:     nbsp,
		DecimalSeparator:  ",",
		GroupSeparator:    ".",
		MinGroupingDigits: 1,
	},
	{
		Name:              EuropeanPortuguese,
		Tag:               language.MustParse("pt-PT"),
		Currency:          currency.EUR,
		SymbolAfter:       true,
		SymbolSpacing:     nbsp,
		DecimalSeparator:  ",",
		GroupSeparator:    nbsp,
		MinGroupingDigits: 2,
	},
	{
		Name:              French,
		Tag:               language.MustParse("fr-FR"),
		Currency:          currency.EUR,
		SymbolAfter:       true,
		SymbolSpacing:     nbsp,
		DecimalSeparator:  ",",
		GroupSeparator:    nnbsp,
		MinGroupingDigits: 1,
	},
}

func init() {
	for i := range table {
		table[i].symbol = currencySymbol(table[i].Tag, table[i].Currency)
	}
}

var monthAbbreviations = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Lookup returns the entry registered under name. Names are matched exactly.
func Lookup(name string) (Entry, error) {
	for _, e := range table {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownLocale, name)
}

// MustLookup is like Lookup but panics for unknown names.
func MustLookup(name string) Entry {
	e, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return e
}

// Exists reports whether name is part of the table.
func Exists(name string) bool {
	_, err := Lookup(name)
	return err == nil
}

// ByTag returns the first entry whose language tag matches tag, ignoring case
// and accepting "_" as separator ("pt_br" finds portugues_brasil).
func ByTag(tag string) (Entry, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
	parsed, err := language.Parse(normalized)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: tag %q", ErrUnknownLocale, tag)
	}
	for _, e := range table {
		if e.Tag == parsed {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: tag %q", ErrUnknownLocale, tag)
}

// Names lists the supported locale names in table order.
func Names() []string {
	names := make([]string, len(table))
	for i, e := range table {
		names[i] = e.Name
	}
	return names
}

// Entries returns a copy of the whole table.
func Entries() []Entry {
	entries := make([]Entry, len(table))
	copy(entries, table[:])
	return entries
}

// MonthAbbreviation returns the three-letter English abbreviation for m.
// Out of range months yield an empty string.
func MonthAbbreviation(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthAbbreviations[m-1]
}

// MonthAbbreviations returns the abbreviation table, index 0 being January.
func MonthAbbreviations() [12]string {
	return monthAbbreviations
}
