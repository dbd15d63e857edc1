package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors value returned by Apply.
	ErrValidationFailed = errors.New("validation failed")
)
