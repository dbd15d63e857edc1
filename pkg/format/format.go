package format

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/brkit/pkg/locale"
	"github.com/dmitrymomot/brkit/pkg/logger"
)

// DefaultPhoneRegion is the region assumed for numbers written without a
// country code.
const DefaultPhoneRegion = "BR"

// Formatter renders documents, amounts, dates and phone numbers.
// It is immutable after New and safe for concurrent use.
type Formatter struct {
	locale      locale.Entry
	hourOffset  int
	location    *time.Location
	phoneRegion string
	log         *slog.Logger
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithDefaultLocale sets the locale used by FormatCurrency when no locale
// name is given. Panics for names missing from the locale table so that
// misconfiguration fails at startup.
func WithDefaultLocale(name string) Option {
	return func(f *Formatter) {
		entry, err := locale.Lookup(name)
		if err != nil {
			panic(fmt.Errorf("format: %w", err))
		}
		f.locale = entry
	}
}

// WithHourOffset sets the number of hours added to the hour field by
// FormatDateTime. Pass 0 to render the hour unchanged.
func WithHourOffset(hours int) Option {
	return func(f *Formatter) { f.hourOffset = hours }
}

// WithLocation sets the location dates are read and rendered in.
// Strings without a UTC offset are interpreted in it. Nil is ignored.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) {
		if loc != nil {
			f.location = loc
		}
	}
}

// WithPhoneRegion sets the ISO 3166 region used by FormatPhoneE164 and
// FormatPhoneInternational for numbers without a country code.
func WithPhoneRegion(region string) Option {
	return func(f *Formatter) {
		if region = strings.ToUpper(strings.TrimSpace(region)); region != "" {
			f.phoneRegion = region
		}
	}
}

// WithLogger sets the logger that receives debug records for rejected input.
// Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(f *Formatter) {
		if l != nil {
			f.log = l
		}
	}
}

// New returns a Formatter using pt-BR, the legacy +3 hour offset, UTC and
// region BR unless overridden by opts.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		locale:      locale.MustLookup(locale.Default),
		hourOffset:  LegacyHourOffset,
		location:    time.UTC,
		phoneRegion: DefaultPhoneRegion,
		log:         logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.log = f.log.With(logger.Component("format"))
	return f
}

var defaultFormatter = New()

// Default returns the Formatter used by the package-level functions.
func Default() *Formatter {
	return defaultFormatter
}

// Locale returns the formatter's default locale entry.
func (f *Formatter) Locale() locale.Entry {
	return f.locale
}

// HourOffset returns the hours FormatDateTime adds to the hour field.
func (f *Formatter) HourOffset() int {
	return f.hourOffset
}

// Location returns the location dates are rendered in.
func (f *Formatter) Location() *time.Location {
	return f.location
}

// PhoneRegion returns the default region for phone parsing.
func (f *Formatter) PhoneRegion() string {
	return f.phoneRegion
}

func (f *Formatter) reject(msg string, err error, attrs ...slog.Attr) {
	args := make([]any, 0, len(attrs)+1)
	args = append(args, logger.Error(err))
	for _, a := range attrs {
		args = append(args, a)
	}
	f.log.Debug(msg, args...)
}

// FormatDocument formats value with the default Formatter.
func FormatDocument(value any) (string, error) {
	return defaultFormatter.FormatDocument(value)
}

// FormatCurrency formats amount with the default Formatter.
func FormatCurrency(amount any, localeName string) (string, error) {
	return defaultFormatter.FormatCurrency(amount, localeName)
}

// FormatDate formats value with the default Formatter.
func FormatDate(value any) (string, error) {
	return defaultFormatter.FormatDate(value)
}

// FormatDateTime formats value with the default Formatter.
func FormatDateTime(value any, pattern string) (string, error) {
	return defaultFormatter.FormatDateTime(value, pattern)
}

// FormatPhone formats value with the default Formatter.
func FormatPhone(value any) (string, error) {
	return defaultFormatter.FormatPhone(value)
}

// FormatPhoneE164 formats value with the default Formatter.
func FormatPhoneE164(value any) (string, error) {
	return defaultFormatter.FormatPhoneE164(value)
}

// FormatPhoneInternational formats value with the default Formatter.
func FormatPhoneInternational(value any) (string, error) {
	return defaultFormatter.FormatPhoneInternational(value)
}
