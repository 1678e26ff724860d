// Package writers resolves log output destinations. Diagnostic logs
// default to stderr because stdout is reserved for the run's result or
// error envelope.
package writers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriterType represents the type of writer to create
type WriterType string

const (
	WriterTypeStdout WriterType = "stdout"
	WriterTypeStderr WriterType = "stderr"
	WriterTypeFile   WriterType = "file"
)

// CreateWriter creates an io.Writer based on the output specification
// Supported formats:
//   - "stderr" or "" - writes to os.Stderr
//   - "stdout" - writes to os.Stdout (corrupts envelope parsing, use with care)
//   - "file:///path/to/file" - writes to file (creates directories if needed)
//   - "/path/to/file" - writes to file (creates directories if needed)
func CreateWriter(output string) (io.Writer, error) {
	switch {
	case output == "" || output == "stderr":
		return os.Stderr, nil
	case output == "stdout":
		return os.Stdout, nil
	case strings.HasPrefix(output, "file://"):
		return createFileWriter(strings.TrimPrefix(output, "file://"))
	case isFilePath(output):
		return createFileWriter(output)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", output)
	}
}

// isFilePath determines if the string represents a local file path
func isFilePath(path string) bool {
	if strings.Contains(path, "://") && !strings.HasPrefix(path, "file://") {
		return false
	}
	return strings.Contains(path, "/") || strings.Contains(path, "\\")
}

// createFileWriter creates a file writer, ensuring the directory exists
func createFileWriter(filePath string) (io.Writer, error) {
	dir := filepath.Dir(filePath)
	if dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}

	return file, nil
}

// ParseWriterType determines the writer type from an output string
func ParseWriterType(output string) WriterType {
	if output == "" || output == "stderr" {
		return WriterTypeStderr
	}
	if output == "stdout" {
		return WriterTypeStdout
	}
	return WriterTypeFile
}
