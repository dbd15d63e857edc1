package format

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/brkit/pkg/config"
	"github.com/dmitrymomot/brkit/pkg/locale"
)

// Config holds Formatter settings read from the environment.
type Config struct {
	DefaultLocale string `env:"BRKIT_DEFAULT_LOCALE" envDefault:"portugues_brasil"`
	HourOffset    int    `env:"BRKIT_HOUR_OFFSET" envDefault:"3"`
	Timezone      string `env:"BRKIT_TIMEZONE" envDefault:"UTC"`
	PhoneRegion   string `env:"BRKIT_PHONE_REGION" envDefault:"BR"`
}

// LoadConfig reads Config from the environment (and the optional ./.env file).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig builds a Formatter from cfg. Unlike WithDefaultLocale it
// reports an unknown locale or time zone as an error. opts are applied after
// the values from cfg.
func NewFromConfig(cfg Config, opts ...Option) (*Formatter, error) {
	base := make([]Option, 0, len(opts)+4)

	if cfg.DefaultLocale != "" {
		if !locale.Exists(cfg.DefaultLocale) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, cfg.DefaultLocale)
		}
		base = append(base, WithDefaultLocale(cfg.DefaultLocale))
	}

	if cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("format: load timezone %q: %w", cfg.Timezone, err)
		}
		base = append(base, WithLocation(loc))
	}

	base = append(base, WithHourOffset(cfg.HourOffset), WithPhoneRegion(cfg.PhoneRegion))
	return New(append(base, opts...)...), nil
}
