package validator

import (
	"math"
	"reflect"
	"strings"
	"time"
)

// Layouts tried, in order, for string dates. Layouts without a zone are
// interpreted in the location passed to ParseDate.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
	"Jan 2, 2006",
	"January 2, 2006",
}

// MaxUnixMillis bounds numeric timestamps to 100,000,000 days either side of
// the Unix epoch.
const MaxUnixMillis = 8_640_000_000_000_000

// ParseDate converts value into a time in loc. It accepts time.Time (the zero
// time is rejected), *time.Time, strings in ISO 8601 or "Jan 2, 2006" form and
// integer or float Unix timestamps in milliseconds within ±MaxUnixMillis.
// A nil loc means UTC.
func ParseDate(value any, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}

	switch v := value.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if v.IsZero() {
			return time.Time{}, false
		}
		return v.In(loc), true
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false
		}
		return v.In(loc), true
	case string:
		return parseDateString(v, loc)
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return time.Time{}, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.String:
		return parseDateString(rv.String(), loc)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		ms := rv.Int()
		if ms > MaxUnixMillis || ms < -MaxUnixMillis {
			return time.Time{}, false
		}
		return time.UnixMilli(ms).In(loc), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if rv.Uint() > MaxUnixMillis {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(rv.Uint())).In(loc), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > MaxUnixMillis {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(f)).In(loc), true
	case reflect.Struct:
		if t, ok := rv.Interface().(time.Time); ok && !t.IsZero() {
			return t.In(loc), true
		}
	}

	return time.Time{}, false
}

func parseDateString(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}

// IsValidDate reports whether value can be read as a calendar date.
func IsValidDate(value any) bool {
	_, ok := ParseDate(value, time.UTC)
	return ok
}

func ValidDate(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			return IsValidDate(value)
		},
		Error: newError(field, "must be a valid date", "validation.date"),
	}
}
