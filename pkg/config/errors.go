package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("config.errors.parsing_failed")

	// ErrConfigNotLoaded is returned when a cached config disappears between parse and read.
	ErrConfigNotLoaded = errors.New("config.errors.not_loaded")

	// ErrNilPointer is returned when a nil pointer is provided to Load.
	ErrNilPointer = errors.New("config.errors.nil_pointer")

	// ErrLoadingEnvFile is returned when an explicitly requested .env file cannot be read.
	ErrLoadingEnvFile = errors.New("config.errors.env_file")
)
