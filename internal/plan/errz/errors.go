// Package errz provides shared error definitions for the plan package and its subpackages.
package errz

import "errors"

// Top-level error categories
var (
	ErrFailedToLoadPlan     = errors.New("failed to load scaffold plan")
	ErrFailedToValidatePlan = errors.New("failed to validate scaffold plan")
)

// Validation specific errors
var (
	ErrDuplicateDomain      = errors.New("duplicate domain name")
	ErrInvalidDomainName    = errors.New("invalid domain name")
	ErrCircularDependency   = errors.New("circular domain dependency")
	ErrUnknownDependency    = errors.New("unknown domain dependency")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidValue         = errors.New("invalid value")
	ErrDuplicateID          = errors.New("duplicate ID")
)
