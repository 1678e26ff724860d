package loader

import (
	"encoding/json"
	"fmt"
)

// JSONLoader implements the Loader interface for JSON documents, the
// canonical serialization used by the upstream pipeline stages.
type JSONLoader struct {
	source []byte
}

// NewJSONLoader creates a new JSON document loader.
func NewJSONLoader(source []byte) *JSONLoader {
	return &JSONLoader{source: source}
}

// Decode unmarshals the JSON document into v.
func (l *JSONLoader) Decode(v any) error {
	if len(l.source) == 0 {
		return ErrNoSourceData
	}
	if err := json.Unmarshal(l.source, v); err != nil {
		return fmt.Errorf("%w: %w", ErrParseJSON, err)
	}
	return nil
}
