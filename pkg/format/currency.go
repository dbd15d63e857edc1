package format

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/dmitrymomot/brkit/pkg/locale"
	"github.com/dmitrymomot/brkit/pkg/logger"
	"github.com/dmitrymomot/brkit/pkg/validator"
)

// FormatCurrency renders amount in the currency of the named locale, e.g.
// "R$ 1.234,50" for portugues_brasil or "$1,234.50" for ingles. An empty
// localeName selects the formatter's default locale.
//
// amount may be any integer or float type, a json.Number or a numeric string.
// Absent amounts yield "" and no error.
func (f *Formatter) FormatCurrency(amount any, localeName string) (string, error) {
	if !validator.IsPresent(amount) {
		return "", nil
	}

	entry := f.locale
	if localeName != "" {
		var err error
		if entry, err = locale.Lookup(localeName); err != nil {
			f.reject("locale rejected", err, logger.Locale(localeName))
			return "", err
		}
	}

	value, err := amountToFloat(amount)
	if err != nil {
		f.reject("amount rejected", err, logger.Locale(entry.Name))
		return "", err
	}
	return renderAmount(value, entry), nil
}

// renderAmount rounds value to the currency scale and lays it out with the
// entry's separators and symbol placement. Negative amounts that round to
// zero are rendered without a sign ("R$ 0,00" for -0.001).
func renderAmount(value float64, e locale.Entry) string {
	intPart, fracPart := roundHalfUp(strconv.FormatFloat(math.Abs(value), 'f', -1, 64), e.Scale())
	negative := value < 0 && strings.Trim(intPart+fracPart, "0") != ""

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	if !e.SymbolAfter {
		b.WriteString(e.Symbol())
		b.WriteString(e.SymbolSpacing)
	}
	b.WriteString(groupDigits(intPart, e))
	if fracPart != "" {
		b.WriteString(e.DecimalSeparator)
		b.WriteString(fracPart)
	}
	if e.SymbolAfter {
		b.WriteString(e.SymbolSpacing)
		b.WriteString(e.Symbol())
	}
	return b.String()
}

// roundHalfUp rounds the non-negative decimal string number to scale
// fraction digits, ties away from zero. It works on the shortest decimal form
// of the float, so 1.005 becomes 1.01 rather than 1.00.
func roundHalfUp(number string, scale int) (intPart, fracPart string) {
	intPart, fracPart, _ = strings.Cut(number, ".")
	if len(fracPart) <= scale {
		return intPart, fracPart + strings.Repeat("0", scale-len(fracPart))
	}

	digits := []byte(intPart + fracPart[:scale])
	if fracPart[scale] >= '5' {
		i := len(digits) - 1
		for ; i >= 0 && digits[i] == '9'; i-- {
			digits[i] = '0'
		}
		if i < 0 {
			digits = append([]byte{'1'}, digits...)
		} else {
			digits[i]++
		}
	}

	n := len(digits) - scale
	return string(digits[:n]), string(digits[n:])
}

// groupDigits inserts the group separator every three digits from the right,
// once the integer part is long enough for the entry's minimum grouping.
func groupDigits(digits string, e locale.Entry) string {
	if e.GroupSeparator == "" || len(digits) < 3+e.MinGroupingDigits {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(e.GroupSeparator)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func amountToFloat(amount any) (float64, error) {
	var f float64

	switch v := amount.(type) {
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, v.String())
		}
		f = parsed
	default:
		rv := reflect.ValueOf(amount)
		for rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return 0, ErrInvalidAmount
			}
			rv = rv.Elem()
		}

		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			f = float64(rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			f = float64(rv.Uint())
		case reflect.Float32, reflect.Float64:
			f = rv.Float()
		case reflect.String:
			parsed, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
			if err != nil {
				return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, rv.String())
			}
			f = parsed
		default:
			return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidAmount, amount)
		}
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, f)
	}
	return f, nil
}
