package finitestate

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMachine(t *testing.T) Machine {
	t.Helper()
	m, err := New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, err)
	return m
}

func TestNewStartsCreated(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t)
	assert.Equal(t, StateCreated, m.GetState())
}

func TestHappyPathTransitions(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t)
	for _, state := range []string{
		StateValidating, StateValidated, StateExecuting, StateSucceeded, StateCompleted,
	} {
		require.NoError(t, m.Transition(state))
		assert.Equal(t, state, m.GetState())
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	t.Parallel()

	for _, terminal := range []string{StateInvalid, StateCompleted, StateFailed, StateError} {
		assert.Empty(t, RunTransitions[terminal], "state %s must be terminal", terminal)
	}
}

func TestInvalidTransitionRejected(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t)
	assert.Error(t, m.Transition(StateExecuting), "cannot execute before validation")
	assert.Equal(t, StateCreated, m.GetState())
}

func TestValidationFailurePath(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t)
	require.NoError(t, m.Transition(StateValidating))
	require.NoError(t, m.Transition(StateInvalid))
	assert.Error(t, m.Transition(StateValidated))
}
