package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/brkit/pkg/locale"
	"github.com/dmitrymomot/brkit/pkg/logger"
	"github.com/dmitrymomot/brkit/pkg/validator"
)

// DefaultLanguage is used when no supported language matches a request.
const DefaultLanguage = "pt-BR"

// Translator resolves dot-separated keys such as "validation.cpf" to
// messages. It is read-only after NewTranslator and safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	languages      []string
	candidates     []string
	matcher        language.Matcher
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
}

// NewTranslator loads translations from adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, messages := range translations {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrNoTranslations)
		}
		if messages == nil {
			return nil, fmt.Errorf("%w: nil translations for %q", ErrNoTranslations, lang)
		}
	}

	t.translations = translations
	t.languages = sortedLanguages(translations)
	t.candidates, t.matcher = newMatcher(t.defaultLang, t.languages)
	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.languages))
	return t, nil
}

func sortedLanguages(translations map[string]map[string]any) []string {
	langs := make([]string, 0, len(translations))
	for lang := range translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// newMatcher puts the default language first so it wins when nothing matches.
// The returned slice maps matcher indexes back to language codes.
func newMatcher(defaultLang string, langs []string) ([]string, language.Matcher) {
	ordered := make([]string, 0, len(langs)+1)
	ordered = append(ordered, defaultLang)
	for _, l := range langs {
		if l != defaultLang {
			ordered = append(ordered, l)
		}
	}

	tags := make([]language.Tag, len(ordered))
	for i, l := range ordered {
		tags[i] = language.Make(l)
	}
	return ordered, language.NewMatcher(tags)
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	return slices.Clone(t.languages)
}

func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match returns the supported language closest to the given preferences.
// Each preference may be a BCP 47 tag ("pt-PT") or a whole Accept-Language
// header ("en-GB,en;q=0.8"). Without a usable match it returns the default
// language.
func (t *Translator) Match(prefs ...string) string {
	var desired []language.Tag
	for _, p := range prefs {
		tags, _, err := language.ParseAcceptLanguage(strings.ReplaceAll(p, "_", "-"))
		if err != nil {
			continue
		}
		desired = append(desired, tags...)
	}
	if len(desired) == 0 {
		return t.defaultLang
	}

	_, idx, conf := t.matcher.Match(desired...)
	if conf == language.No {
		return t.defaultLang
	}
	return t.candidates[idx]
}

// ForLocale maps a locale table name such as "portugues_portugal" to the
// closest supported language.
func (t *Translator) ForLocale(localeName string) string {
	entry, err := locale.Lookup(localeName)
	if err != nil {
		return t.defaultLang
	}
	return t.Match(entry.Language())
}

// HasTranslation reports whether key resolves to a string for lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	val, ok := t.lookup(lang, key)
	if !ok {
		return false
	}
	_, ok = val.(string)
	return ok
}

func (t *Translator) lookup(lang, key string) (any, bool) {
	langMap, ok := t.translations[lang]
	if !ok {
		return nil, false
	}

	parts := strings.Split(key, ".")
	current := langMap
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		if current, ok = val.(map[string]any); !ok {
			return nil, false
		}
	}
	return nil, false
}

// T translates key for lang, substituting %{name} placeholders from args
// given as name, value pairs:
//
//	t.T("pt-BR", "validation.phone", "min", "8", "max", "11")
//
// Missing keys yield the key itself, or "" with WithFallbackToKey(false).
func (t *Translator) T(lang, key string, args ...string) string {
	return t.translate(lang, key, key, args)
}

// Td is like T but returns defaultValue, formatted with args, when the key is missing.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	return t.translate(lang, key, defaultValue, args)
}

func (t *Translator) translate(lang, key, fallback string, args []string) string {
	val, ok := t.lookup(lang, key)
	if s, isString := val.(string); ok && isString {
		return namedSprintf(s, buildParams(args))
	}

	if t.missingLogMode {
		t.logger.Warn("translation not found", logger.Locale(lang), slog.String("key", key))
	}
	if fallback == key && !t.fallbackToKey {
		return ""
	}
	return namedSprintf(fallback, buildParams(args))
}

// Error translates err using the sentinel message keys of this module
// ("format.errors.invalid_phone", "locale.errors.unknown_locale", ...).
// The first error in the chain whose leading "key:" segment has a
// translation wins. Validation failures are rendered field by field.
// Errors without a translation are returned as err.Error().
func (t *Translator) Error(lang string, err error) string {
	if err == nil {
		return ""
	}

	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		parts := make([]string, 0, len(verrs))
		for _, ve := range verrs {
			parts = append(parts, ve.Field+": "+t.ValidationMessage(lang, ve))
		}
		return strings.Join(parts, "; ")
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		key, _, _ := strings.Cut(e.Error(), ": ")
		if t.HasTranslation(lang, key) {
			return t.T(lang, key)
		}
	}
	return err.Error()
}

// ValidationMessage translates a single validation failure, falling back to
// its English message.
func (t *Translator) ValidationMessage(lang string, ve validator.ValidationError) string {
	if ve.TranslationKey == "" {
		return ve.Message
	}
	return t.Td(lang, ve.TranslationKey, ve.Message, translationArgs(ve.TranslationValues)...)
}

// Validation translates every failure in errs, grouped by field.
func (t *Translator) Validation(lang string, errs validator.ValidationErrors) map[string][]string {
	out := make(map[string][]string, len(errs))
	for _, ve := range errs {
		out[ve.Field] = append(out[ve.Field], t.ValidationMessage(lang, ve))
	}
	return out
}

func translationArgs(values map[string]any) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, fmt.Sprint(values[k]))
	}
	return args
}

// buildParams pairs args as name, value. An odd trailing arg is ignored.
func buildParams(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf replaces %{name} placeholders; unknown names are left as is.
func namedSprintf(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
