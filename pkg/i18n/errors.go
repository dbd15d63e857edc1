package i18n

import "errors"

var (
	ErrNilAdapter           = errors.New("i18n.errors.nil_adapter")
	ErrYAMLParsingCancelled = errors.New("i18n.errors.yaml_parsing_cancelled")
	ErrFailedToParseYAML    = errors.New("i18n.errors.yaml_parse_failed")
	ErrFailedToReadDir      = errors.New("i18n.errors.read_dir_failed")
	ErrFailedToReadFile     = errors.New("i18n.errors.read_file_failed")
	ErrFailedToParseFile    = errors.New("i18n.errors.parse_file_failed")
	ErrLoadingCancelled     = errors.New("i18n.errors.loading_cancelled")
	ErrNoTranslations       = errors.New("i18n.errors.no_translations")
)
