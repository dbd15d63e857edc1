// Package validator checks Brazilian user input: CPF and CNPJ check digits,
// phone and e-mail shape, calendar dates and plain presence.
//
// Every check exists in two forms. Predicates such as IsValidCPF or IsPresent
// return a bool and are what the format package calls before it renders a
// value. Rule constructors such as ValidCPF wrap the same predicate together
// with translation-friendly error metadata so several checks can be evaluated
// in one go:
//
//	err := validator.Apply(
//	    validator.Required("name", form.Name),
//	    validator.ValidDocument("document", form.Document),
//	    validator.ValidPhone("phone", form.Phone),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Get("document"), verrs.Fields(), ...
//	}
//
// # Check digits
//
// IsValidCPF and IsValidCNPJ strip every non-digit before checking, so both
// "52998224725" and "529.982.247-25" are accepted. CPFs made of a single
// repeated digit ("11111111111") are rejected even when the arithmetic would
// pass.
//
// # Dates
//
// ParseDate converts time.Time values, ISO 8601 strings, "Jan 2, 2006" strings
// and Unix millisecond timestamps into a time.Time. IsValidDate reports
// whether that conversion succeeds.
//
// # Errors
//
// ValidationErrors implements error and matches ErrValidationFailed with
// errors.Is.
//
// The package has no mutable state and all helpers are safe for concurrent use.
package validator
