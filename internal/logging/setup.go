// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/kreativreason/mason/internal/logging/writers"
)

// NewTextHandler returns a charmbracelet-backed text handler for the given
// log level. Trace enables caller reporting in addition to timestamps.
func NewTextHandler(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}

	reportCaller := false
	reportTimestamp := false
	lvl := log.InfoLevel
	switch strings.ToLower(logLevel) {
	case "trace":
		reportCaller = true
		reportTimestamp = true
		lvl = log.DebugLevel
	case "debug":
		reportTimestamp = true
		lvl = log.DebugLevel
	case "info":
		lvl = log.InfoLevel
	case "warn", "warning":
		lvl = log.WarnLevel
	case "error":
		lvl = log.ErrorLevel
	}

	return log.NewWithOptions(writer, log.Options{
		ReportTimestamp: reportTimestamp,
		ReportCaller:    reportCaller,
		Level:           lvl,
	})
}

// NewJSONHandler returns a slog JSON handler for the given log level.
func NewJSONHandler(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}

	addSource := false
	var level slog.Level
	switch strings.ToLower(logLevel) {
	case "trace":
		addSource = true
		level = slog.LevelDebug
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	})
}

// Setup installs the default logger. Diagnostic output defaults to stderr
// so the result envelope on stdout stays machine-parseable; output accepts
// any destination writers.CreateWriter understands.
func Setup(logLevel, format, output string) error {
	writer, err := writers.CreateWriter(output)
	if err != nil {
		return fmt.Errorf("create log writer: %w", err)
	}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = NewJSONHandler(logLevel, writer)
	default:
		handler = NewTextHandler(logLevel, writer)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}
