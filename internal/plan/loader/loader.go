// Package loader handles reading serialized pipeline documents from various
// sources and formats. Loaders decode into caller-supplied targets so the
// same machinery serves scaffold plans and the upstream artifacts they are
// checked against.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LoaderFunc constructs a Loader over raw document bytes.
type LoaderFunc func([]byte) Loader

// Loader decodes a serialized document into a target value.
type Loader interface {
	// Decode unmarshals the document into v.
	Decode(v any) error
}

// NewLoaderFromBytes creates a new Loader with the provided bytes.
func NewLoaderFromBytes(data []byte, lodFunc LoaderFunc) (Loader, error) {
	if len(data) == 0 {
		return nil, ErrNoSourceData
	}
	return lodFunc(data), nil
}

// NewLoaderFromReader creates a new Loader from an io.Reader.
func NewLoaderFromReader(reader io.Reader, lodFunc LoaderFunc) (Loader, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read document from reader: %w", err)
	}
	return NewLoaderFromBytes(data, lodFunc)
}

// NewLoaderFromFilePath creates a new Loader from a file path, choosing the
// format by extension.
func NewLoaderFromFilePath(filePath string) (Loader, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read document '%s': %w", filePath, err)
	}

	switch ext := filepath.Ext(filePath); ext {
	case ".json":
		return NewJSONLoader(data), nil
	case ".toml":
		return NewTOMLLoader(data), nil
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedExtension, ext)
	}
}
