// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment
//     (by default the optional ./.env in the working directory).
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per type, so each configuration is parsed once.
//   - MustLoadEnv and MustLoad panic instead of returning an error, for
//     configuration a program cannot start without.
//   - ResetCache and ForceReloadConfig drop cached values, which tests use
//     after changing the environment.
//
// # Usage
//
//	type Config struct {
//	    DefaultLocale string `env:"BRKIT_DEFAULT_LOCALE" envDefault:"portugues_brasil"`
//	    HourOffset    int    `env:"BRKIT_HOUR_OFFSET" envDefault:"3"`
//	}
//
//	if err := config.LoadEnv("./deploy/.env"); err != nil {
//	    log.Fatal(err)
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// Errors wrap the sentinels ErrParsingConfig, ErrLoadingEnvFile,
// ErrNilPointer and ErrConfigNotLoaded; compare them with errors.Is.
//
// The cache is guarded by a sync.RWMutex and a sync.Once per type, so Load is
// safe for concurrent use.
package config
