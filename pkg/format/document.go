package format

import (
	"fmt"

	"github.com/dmitrymomot/brkit/pkg/logger"
	"github.com/dmitrymomot/brkit/pkg/sanitizer"
	"github.com/dmitrymomot/brkit/pkg/validator"
)

// DocumentKind is the document type implied by a digit count.
type DocumentKind int

const (
	KindUnknown DocumentKind = iota
	KindCPF
	KindCNPJ
)

func (k DocumentKind) String() string {
	switch k {
	case KindCPF:
		return "cpf"
	case KindCNPJ:
		return "cnpj"
	default:
		return "unknown"
	}
}

// ClassifyDocument stringifies value, keeps its digits and classifies it by
// length: 11 digits is a CPF, 14 a CNPJ. Check digits are not verified.
func ClassifyDocument(value any) DocumentKind {
	return classifyDigits(sanitizer.KeepDigits(sanitizer.Stringify(value)))
}

func classifyDigits(digits string) DocumentKind {
	switch len(digits) {
	case validator.CPFLength:
		return KindCPF
	case validator.CNPJLength:
		return KindCNPJ
	default:
		return KindUnknown
	}
}

// StripDocumentFormatting removes ".", "-" and "/" from the stringified value.
// Absent values yield "". Nothing is validated.
func StripDocumentFormatting(value any) string {
	if !validator.IsPresent(value) {
		return ""
	}
	return sanitizer.StripDocumentFormatting(sanitizer.Stringify(value))
}

// FormatDocument punctuates a CPF as XXX.XXX.XXX-XX or a CNPJ as
// XX.XXX.XXX/XXXX-XX after checking its check digits. The kind is chosen by
// the number of digits in the input, so already formatted documents are
// accepted. Integer input loses leading zeros: pass CPFs starting with 0 as
// strings.
//
// Absent input yields "" and no error.
func (f *Formatter) FormatDocument(value any) (string, error) {
	if !validator.IsPresent(value) {
		return "", nil
	}

	digits := sanitizer.KeepDigits(sanitizer.Stringify(value))
	kind := classifyDigits(digits)

	switch kind {
	case KindCPF:
		if !validator.IsValidCPF(digits) {
			f.reject("document rejected", ErrInvalidCPF,
				logger.DocumentKind(kind.String()), logger.Input(sanitizer.MaskDocument(digits)))
			return "", ErrInvalidCPF
		}
		return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:], nil

	case KindCNPJ:
		if !validator.IsValidCNPJ(digits) {
			f.reject("document rejected", ErrInvalidCNPJ,
				logger.DocumentKind(kind.String()), logger.Input(sanitizer.MaskDocument(digits)))
			return "", ErrInvalidCNPJ
		}
		return digits[:2] + "." + digits[2:5] + "." + digits[5:8] + "/" + digits[8:12] + "-" + digits[12:], nil
	}

	err := fmt.Errorf("%w: %d digits", ErrInvalidLength, len(digits))
	f.reject("document rejected", err, logger.DocumentKind(kind.String()))
	return "", err
}
