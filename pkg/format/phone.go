package format

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/dmitrymomot/brkit/pkg/logger"
	"github.com/dmitrymomot/brkit/pkg/sanitizer"
	"github.com/dmitrymomot/brkit/pkg/validator"
)

// Optional two digit area code followed by an 8 or 9 digit local number.
var phoneShapeRegex = regexp.MustCompile(`^(\d{2})?(\d{8}|\d{9})$`)

// FormatPhone renders an unformatted Brazilian number as "(11)98765-4321",
// "(11)3234-5678", "98765-4321" or "3234-5678". Values that are not 8 to 11
// plain digits fail with ErrInvalidPhone; absent input yields "" and no error.
func (f *Formatter) FormatPhone(value any) (string, error) {
	if !validator.IsPresent(value) {
		return "", nil
	}
	if !validator.IsValidPhone(value) {
		err := fmt.Errorf("%w: expected %d to %d digits", ErrInvalidPhone, validator.MinPhoneDigits, validator.MaxPhoneDigits)
		f.reject("phone rejected", err)
		return "", err
	}

	phone := sanitizer.Stringify(value)
	m := phoneShapeRegex.FindStringSubmatch(phone)
	if m == nil {
		return phone, nil
	}

	var area string
	if m[1] != "" {
		area = "(" + m[1] + ")"
	}

	local := m[2]
	split := 4
	if len(local) == 9 {
		split = 5
	}
	return area + local[:split] + "-" + local[split:], nil
}

// FormatPhoneE164 parses value with libphonenumber, assuming the formatter's
// phone region when no country code is present, and renders it as
// "+5511987654321".
func (f *Formatter) FormatPhoneE164(value any) (string, error) {
	return f.formatPhoneNumber(value, phonenumbers.E164)
}

// FormatPhoneInternational is like FormatPhoneE164 but renders the
// international form, e.g. "+55 11 98765-4321".
func (f *Formatter) FormatPhoneInternational(value any) (string, error) {
	return f.formatPhoneNumber(value, phonenumbers.INTERNATIONAL)
}

func (f *Formatter) formatPhoneNumber(value any, format phonenumbers.PhoneNumberFormat) (string, error) {
	if !validator.IsPresent(value) {
		return "", nil
	}

	raw := strings.TrimSpace(sanitizer.Stringify(value))
	number, err := phonenumbers.Parse(raw, f.phoneRegion)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidPhone, err)
		f.reject("phone rejected", err, logger.Input(sanitizer.MaskDocument(raw)))
		return "", err
	}
	if !phonenumbers.IsPossibleNumber(number) {
		err = fmt.Errorf("%w: not a possible number for region %s", ErrInvalidPhone, f.phoneRegion)
		f.reject("phone rejected", err, logger.Input(sanitizer.MaskDocument(raw)))
		return "", err
	}
	return phonenumbers.Format(number, format), nil
}
