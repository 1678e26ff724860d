package loader

import "errors"

var (
	// ErrNoSourceData indicates an empty document source.
	ErrNoSourceData = errors.New("no source data provided to loader")

	// ErrDocumentNotFound indicates the document path does not exist.
	ErrDocumentNotFound = errors.New("document does not exist")

	// ErrUnsupportedExtension indicates an unrecognized document format.
	ErrUnsupportedExtension = errors.New("unsupported document extension")

	// ErrParseJSON indicates malformed JSON source.
	ErrParseJSON = errors.New("failed to parse JSON")

	// ErrParseTOML indicates malformed TOML source.
	ErrParseTOML = errors.New("failed to parse TOML")
)
