package texdoc

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrWrite indicates the output sink could not be written.
	ErrWrite = errors.New("sink write failed")

	// ErrValidation indicates a document configuration failed validation.
	ErrValidation = errors.New("validation error")

	// ErrUnknownNode indicates a document descriptor named a node type
	// that has no implementation.
	ErrUnknownNode = errors.New("unknown node type")
)
