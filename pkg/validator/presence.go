package validator

import (
	"math"
	"reflect"
	"strings"
)

// IsPresent reports whether value carries something worth formatting.
// It is false for nil (including typed nil pointers, maps, slices and
// interfaces), NaN floats and strings that are empty after trimming.
// Zero numbers are present.
func IsPresent(value any) bool {
	if value == nil {
		return false
	}

	rv := reflect.ValueOf(value)
	for {
		switch rv.Kind() {
		case reflect.Pointer, reflect.Interface:
			if rv.IsNil() {
				return false
			}
			rv = rv.Elem()
			continue
		case reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			if rv.IsNil() {
				return false
			}
			if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
				return strings.TrimSpace(string(rv.Bytes())) != ""
			}
			return true
		case reflect.Float32, reflect.Float64:
			return !math.IsNaN(rv.Float())
		case reflect.String:
			return strings.TrimSpace(rv.String()) != ""
		case reflect.Invalid:
			return false
		default:
			return true
		}
	}
}

// Required fails when value is not present according to IsPresent.
func Required(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			return IsPresent(value)
		},
		Error: newError(field, "field is required", "validation.required"),
	}
}
