package engine

import "errors"

var (
	// ErrNotFound indicates the alias does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates an empty alias name or path.
	ErrValidation = errors.New("validation failed")

	// ErrUnknownAction indicates an unrecognised action flag.
	ErrUnknownAction = errors.New("unknown action")
)
