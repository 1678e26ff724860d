// Package finitestate provides the finite state machine that tracks the
// lifecycle of one materialization run.
package finitestate

import (
	"context"
	"log/slog"

	"github.com/robbyt/go-fsm"
)

// Run lifecycle states.
const (
	StateCreated    = "created"    // Initial state when the run is created
	StateValidating = "validating" // Input validation is in progress

	StateValidated = "validated" // Validation succeeded, ready for execution
	StateInvalid   = "invalid"   // Validation failed (terminal state)

	StateExecuting = "executing" // Injection groups are being applied
	StateSucceeded = "succeeded" // Materialization succeeded, result pending
	StateCompleted = "completed" // Result emitted, run fully done (terminal state)

	StateFailed = "failed" // Materialization failed (terminal state)
	StateError  = "error"  // Unrecoverable error occurred (terminal state)
)

// RunTransitions defines the valid state transitions for a run.
var RunTransitions = map[string][]string{
	StateCreated:    {StateValidating, StateError},
	StateValidating: {StateValidated, StateInvalid, StateError},
	StateValidated:  {StateExecuting, StateError},
	StateInvalid:    {},

	StateExecuting: {StateSucceeded, StateFailed, StateError},
	StateSucceeded: {StateCompleted, StateFailed, StateError},
	StateCompleted: {},

	StateFailed: {},
	StateError:  {},
}

// Machine defines the interface for the run state machine.
type Machine interface {
	// Transition attempts to transition the state machine to the specified state.
	Transition(state string) error

	// TransitionBool attempts to transition the state machine to the specified state.
	TransitionBool(state string) bool

	// TransitionIfCurrentState attempts to transition the state machine to the
	// specified state only when it currently is in currentState.
	TransitionIfCurrentState(currentState, newState string) error

	// SetState sets the state of the state machine to the specified state.
	SetState(state string) error

	// GetState returns the current state of the state machine.
	GetState() string

	// GetStateChan returns a channel that emits the state machine's state
	// whenever it changes. The channel is closed when the context is canceled.
	GetStateChan(ctx context.Context) <-chan string
}

// New creates a run state machine starting in StateCreated.
func New(handler slog.Handler) (Machine, error) {
	return fsm.New(handler, StateCreated, RunTransitions)
}
