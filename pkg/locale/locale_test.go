package locale_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/brkit/pkg/locale"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		currency string
	}{
		{name: "chines", tag: "zh-CN", currency: "CNY"},
		{name: "ingles", tag: "en-US", currency: "USD"},
		{name: "espanhol", tag: "es-ES", currency: "EUR"},
		{name: "portugues_brasil", tag: "pt-BR", currency: "BRL"},
		{name: "portugues_portugal", tag: "pt-PT", currency: "EUR"},
		{name: "frances", tag: "fr-FR", currency: "EUR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := locale.Lookup(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.name, entry.Name)
			assert.Equal(t, tt.tag, entry.Language())
			assert.Equal(t, tt.currency, entry.Currency.String())
			assert.Equal(t, 2, entry.Scale())
			assert.NotEmpty(t, entry.Symbol())
		})
	}

	t.Run("unknown name", func(t *testing.T) {
		_, err := locale.Lookup("klingon")
		require.Error(t, err)
		assert.ErrorIs(t, err, locale.ErrUnknownLocale)
		assert.Contains(t, err.Error(), "klingon")
	})

	t.Run("match is exact", func(t *testing.T) {
		_, err := locale.Lookup("Portugues_Brasil")
		assert.ErrorIs(t, err, locale.ErrUnknownLocale)
	})
}

func TestDefault(t *testing.T) {
	entry := locale.MustLookup(locale.Default)
	assert.Equal(t, "portugues_brasil", entry.Name)
	assert.Equal(t, "R$", entry.Symbol())
	assert.False(t, entry.SymbolAfter)
}

func TestMustLookupPanics(t *testing.T) {
	assert.Panics(t, func() {
		locale.MustLookup("unknown_locale")
	})
}

func TestExists(t *testing.T) {
	assert.True(t, locale.Exists("frances"))
	assert.False(t, locale.Exists(""))
	assert.False(t, locale.Exists("aleman"))
}

func TestByTag(t *testing.T) {
	entry, err := locale.ByTag("pt_br")
	require.NoError(t, err)
	assert.Equal(t, locale.BrazilianPortuguese, entry.Name)

	entry, err = locale.ByTag("FR-fr")
	require.NoError(t, err)
	assert.Equal(t, locale.French, entry.Name)

	_, err = locale.ByTag("de-DE")
	assert.ErrorIs(t, err, locale.ErrUnknownLocale)

	_, err = locale.ByTag("not a tag!")
	assert.ErrorIs(t, err, locale.ErrUnknownLocale)
}

func TestNamesAreUnique(t *testing.T) {
	names := locale.Names()
	require.Len(t, names, 6)

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		assert.False(t, seen[name], "duplicate locale name %q", name)
		seen[name] = true
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	entries := locale.Entries()
	entries[0].DecimalSeparator = "changed"

	again := locale.Entries()
	assert.NotEqual(t, "changed", again[0].DecimalSeparator)
}

func TestEntry_Symbol(t *testing.T) {
	expected := map[string]string{
		locale.Chinese:             "¥",
		locale.English:             "$",
		locale.Spanish:             "€",
		locale.BrazilianPortuguese: "R$",
		locale.EuropeanPortuguese:  "€",
		locale.French:              "€",
	}

	for _, entry := range locale.Entries() {
		t.Run(entry.Name, func(t *testing.T) {
			assert.Equal(t, expected[entry.Name], entry.Symbol())
		})
	}

	t.Run("entries built by callers derive the symbol", func(t *testing.T) {
		entry := locale.Entry{Tag: language.MustParse("pt-BR"), Currency: currency.BRL}
		assert.Equal(t, "R$", entry.Symbol())
	})
}

func TestMonthAbbreviation(t *testing.T) {
	assert.Equal(t, "Jan", locale.MonthAbbreviation(time.January))
	assert.Equal(t, "Mar", locale.MonthAbbreviation(time.March))
	assert.Equal(t, "Dec", locale.MonthAbbreviation(time.December))
	assert.Empty(t, locale.MonthAbbreviation(time.Month(0)))
	assert.Empty(t, locale.MonthAbbreviation(time.Month(13)))

	table := locale.MonthAbbreviations()
	assert.Len(t, table, 12)
	assert.Equal(t, "Jan", table[0])
	assert.Equal(t, "Sep", table[8])
}
