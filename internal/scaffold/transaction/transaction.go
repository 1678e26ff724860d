// Package transaction tracks one materialization run through its complete
// lifecycle: created, validated, executed, completed, with terminal states
// for invalid input and execution failure. The transaction is bookkeeping
// only; stage logic lives in the scaffold and plan packages. Logs emitted
// during the run are collected for playback once the run settles.
package transaction

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/robbyt/go-loglater"

	"github.com/kreativreason/mason/internal/plan"
	"github.com/kreativreason/mason/internal/scaffold/transaction/finitestate"
)

// Mode describes how a run touches the target filesystem.
type Mode string

const (
	// ModeApply writes the planned operations to disk.
	ModeApply Mode = "apply"
	// ModeDryRun performs every decision without writing.
	ModeDryRun Mode = "dry-run"
)

// MaterializationTransaction represents the complete lifecycle of one
// scaffold run.
type MaterializationTransaction struct {
	// ID is the unique identifier for this run.
	ID uuid.UUID

	// Source metadata
	PlanPath  string
	Mode      Mode
	CreatedAt time.Time

	// State management
	fsm finitestate.Machine

	// Logging with history tracking
	logger       *slog.Logger
	logCollector *loglater.LogCollector

	// Plan payload
	data *plan.Data

	// Validation state
	runErrors []error
	IsValid   atomic.Bool
}

// New creates a transaction for one run of the given plan payload.
func New(
	planPath string,
	mode Mode,
	data *plan.Data,
	handler slog.Handler,
) (*MaterializationTransaction, error) {
	if data == nil {
		return nil, ErrNilPlan
	}

	runID := uuid.Must(uuid.NewV6())

	sm, err := finitestate.New(handler)
	if err != nil {
		return nil, fmt.Errorf("%s failed to create state machine: %w", runID, err)
	}

	logCollector := loglater.NewLogCollector(handler)
	logger := slog.New(logCollector).With(
		"id", runID,
		"plan", planPath,
		"mode", mode,
		"project", data.ProjectName)

	tx := &MaterializationTransaction{
		ID:           runID,
		PlanPath:     planPath,
		Mode:         mode,
		CreatedAt:    time.Now(),
		fsm:          sm,
		logger:       logger,
		logCollector: logCollector,
		data:         data,
		runErrors:    []error{},
	}

	tx.logger.Info("Run created")

	return tx, nil
}

// GetState returns the current lifecycle state of the run.
func (tx *MaterializationTransaction) GetState() string {
	return tx.fsm.GetState()
}

// BeginValidation marks the run's input validation as started.
func (tx *MaterializationTransaction) BeginValidation() error {
	if err := tx.fsm.Transition(finitestate.StateValidating); err != nil {
		tx.logger.Error("Failed to transition to validating state", "error", err)
		return err
	}

	tx.logger.Info("Run validation started", "state", finitestate.StateValidating)
	return nil
}

// MarkValidated records that every input gate passed.
func (tx *MaterializationTransaction) MarkValidated() error {
	if err := tx.fsm.Transition(finitestate.StateValidated); err != nil {
		tx.logger.Error("Failed to transition to validated state", "error", err)
		return err
	}

	tx.IsValid.Store(true)
	tx.logger.Info("Run validated", "state", finitestate.StateValidated)
	return nil
}

// MarkInvalid records a validation failure. Terminal.
func (tx *MaterializationTransaction) MarkInvalid(cause error) error {
	if err := tx.fsm.Transition(finitestate.StateInvalid); err != nil {
		tx.logger.Error("Failed to transition to invalid state",
			"error", err,
			"originalError", cause)
		return err
	}

	tx.runErrors = append(tx.runErrors, cause)
	tx.logger.Error("Run invalid", "state", finitestate.StateInvalid, "error", cause)
	return nil
}

// BeginExecution marks the materialization pass as started. The run must
// have been validated first.
func (tx *MaterializationTransaction) BeginExecution() error {
	if !tx.IsValid.Load() {
		tx.logger.Error("Cannot execute unvalidated run", "state", tx.GetState())
		return ErrNotValidated
	}

	if err := tx.fsm.Transition(finitestate.StateExecuting); err != nil {
		tx.logger.Error("Failed to transition to executing state", "error", err)
		return err
	}

	tx.logger.Info("Run execution started", "state", finitestate.StateExecuting)
	return nil
}

// MarkSucceeded records that every injection group applied.
func (tx *MaterializationTransaction) MarkSucceeded() error {
	if err := tx.fsm.Transition(finitestate.StateSucceeded); err != nil {
		tx.logger.Error("Failed to transition to succeeded state", "error", err)
		return err
	}

	tx.logger.Info("Run succeeded", "state", finitestate.StateSucceeded)
	return nil
}

// MarkCompleted records that the result artifact was emitted. Terminal.
func (tx *MaterializationTransaction) MarkCompleted() error {
	if err := tx.fsm.Transition(finitestate.StateCompleted); err != nil {
		tx.logger.Error("Failed to transition to completed state", "error", err)
		return err
	}

	tx.logger.Info(
		"Run completed",
		"state", finitestate.StateCompleted,
		"duration", time.Since(tx.CreatedAt),
	)
	return nil
}

// MarkFailed records an execution failure. Terminal.
func (tx *MaterializationTransaction) MarkFailed(cause error) error {
	if err := tx.fsm.Transition(finitestate.StateFailed); err != nil {
		tx.logger.Error("Failed to transition to failed state",
			"error", err,
			"originalError", cause)
		return err
	}

	tx.runErrors = append(tx.runErrors, cause)
	tx.logger.Error("Run failed", "state", finitestate.StateFailed, "error", cause)
	return nil
}

// GetErrors returns the errors recorded against this run.
func (tx *MaterializationTransaction) GetErrors() []error {
	return tx.runErrors
}

// GetData returns the plan payload driving this run.
func (tx *MaterializationTransaction) GetData() *plan.Data {
	return tx.data
}

// Logger returns the run-scoped logger. Records written through it are
// collected for later playback.
func (tx *MaterializationTransaction) Logger() *slog.Logger {
	return tx.logger
}

// PlaybackLogs plays back the run's collected logs to the given handler.
func (tx *MaterializationTransaction) PlaybackLogs(handler slog.Handler) error {
	return tx.logCollector.PlayLogs(handler)
}

// GetTotalDuration returns how long the run has been alive.
func (tx *MaterializationTransaction) GetTotalDuration() time.Duration {
	return time.Since(tx.CreatedAt)
}
