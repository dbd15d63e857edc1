// Package i18n translates the message keys used across this module into
// user-facing text.
//
// Validation rules carry a TranslationKey ("validation.cpf") and sentinel
// errors use their key as message ("format.errors.invalid_phone"), so a
// Translator can render both without a lookup table of its own.
//
// # Usage
//
//	tr, err := i18n.NewCatalogTranslator(ctx)
//	if err != nil {
//	    return err
//	}
//
//	lang := tr.Match(r.Header.Get("Accept-Language")) // "pt-BR" or "en"
//
//	if _, err := format.FormatPhone(input); err != nil {
//	    msg := tr.Error(lang, err) // "Número de telefone inválido"
//	}
//
//	if err := validator.Apply(validator.ValidCPF("cpf", cpf)); err != nil {
//	    fields := tr.Validation(lang, validator.ExtractValidationErrors(err))
//	}
//
// Translations come from a TranslationAdapter. MapAdapter serves an
// in-memory map and FSAdapter reads YAML files from any fs.FS; the bundled
// catalog is embedded from locales/*.yaml. Messages may contain %{name}
// placeholders filled from name, value argument pairs.
//
// Language negotiation uses golang.org/x/text/language, so "pt-PT" or an
// Accept-Language header resolves to the closest bundled language.
package i18n
