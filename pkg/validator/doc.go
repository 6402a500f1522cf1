// Package validator implements the wiki's input validators: the HTML5 e-mail
// check and the IPv4/IPv6 literal checks used by block and rename forms, plus
// a small declarative Rule API for aggregating field errors.
//
// The address checks are plain functions over strings:
//
//	validator.ValidateEmail("user@example.org") // validator.Valid
//	validator.ValidateEmail("")                 // validator.Indeterminate
//	validator.IsIPv4Address("10.0.0.0/8", true) // true
//	validator.IsIPv6Address("fe80::1", false)   // true
//
// All patterns are compiled once at package initialization; every function is
// safe for concurrent use.
//
// Form handlers compose Rules and evaluate them with Apply, which returns a
// ValidationErrors value (an error) listing every failed rule:
//
//	err := validator.Apply(
//	    validator.RequiredString("message", msg),
//	    validator.MaxLenString("message", msg, 500),
//	    validator.ValidIP("target", target, true),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Map() groups messages by field
//	}
//
// ValidationErrors matches ErrValidationFailed with errors.Is.
package validator
