package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Locale records a locale name under the key "locale".
func Locale(name string) slog.Attr {
	return slog.String("locale", name)
}

// Pattern records a date pattern under the key "pattern".
func Pattern(pattern string) slog.Attr {
	return slog.String("pattern", pattern)
}

// DocumentKind records the document kind (cpf, cnpj, unknown) under the key "document_kind".
func DocumentKind(kind string) slog.Attr {
	return slog.String("document_kind", kind)
}

// Input records an already masked input value under the key "input".
// Callers must not pass raw CPF/CNPJ numbers.
func Input(value string) slog.Attr {
	return slog.String("input", value)
}
