package loader

import (
	"fmt"

	gotoml "github.com/pelletier/go-toml/v2"
)

// TOMLLoader implements the Loader interface for TOML documents, used for
// hand-authored plans.
type TOMLLoader struct {
	source []byte
}

// NewTOMLLoader creates a new TOML document loader.
func NewTOMLLoader(source []byte) *TOMLLoader {
	return &TOMLLoader{source: source}
}

// Decode unmarshals the TOML document into v.
func (l *TOMLLoader) Decode(v any) error {
	if len(l.source) == 0 {
		return ErrNoSourceData
	}
	if err := gotoml.Unmarshal(l.source, v); err != nil {
		return fmt.Errorf("%w: %w", ErrParseTOML, err)
	}
	return nil
}
