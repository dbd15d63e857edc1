package locale

import "errors"

var (
	// ErrUnknownLocale is returned when a locale name is not part of the table.
	ErrUnknownLocale = errors.New("locale.errors.unknown_locale")
)
