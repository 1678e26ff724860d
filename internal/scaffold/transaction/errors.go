package transaction

import "errors"

var (
	// ErrInvalidTransaction indicates the run is not in a usable state.
	ErrInvalidTransaction = errors.New("transaction is invalid")

	// ErrNotValidated indicates an attempt to execute a run whose inputs
	// have not passed validation.
	ErrNotValidated = errors.New("transaction has not been validated")

	// ErrNilPlan indicates a nil plan payload was provided.
	ErrNilPlan = errors.New("plan cannot be nil")
)
