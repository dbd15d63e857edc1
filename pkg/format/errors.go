package format

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/brkit/pkg/locale"
)

var (
	ErrInvalidLength = errors.New("format.errors.invalid_document_length")
	ErrInvalidFormat = errors.New("format.errors.invalid_document_format")

	// ErrInvalidCPF and ErrInvalidCNPJ match ErrInvalidFormat with errors.Is.
	ErrInvalidCPF  = fmt.Errorf("format.errors.invalid_cpf: %w", ErrInvalidFormat)
	ErrInvalidCNPJ = fmt.Errorf("format.errors.invalid_cnpj: %w", ErrInvalidFormat)

	ErrInvalidPhone       = errors.New("format.errors.invalid_phone")
	ErrInvalidDate        = errors.New("format.errors.invalid_date")
	ErrUnsupportedPattern = errors.New("format.errors.unsupported_pattern")
	ErrInvalidAmount      = errors.New("format.errors.invalid_amount")

	// ErrUnknownLocale is locale.ErrUnknownLocale, re-exported for callers that
	// only import this package.
	ErrUnknownLocale = locale.ErrUnknownLocale
)
