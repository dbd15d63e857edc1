package i18n

import (
	"context"
	"embed"
)

//go:embed locales/*.yaml
var catalogFS embed.FS

// NewCatalogTranslator returns a Translator over the bundled pt-BR and en
// messages for validation failures and formatting errors.
func NewCatalogTranslator(ctx context.Context, options ...Option) (*Translator, error) {
	return NewTranslator(ctx, NewFSAdapter(NewYAMLParser(), catalogFS, "locales"), options...)
}
