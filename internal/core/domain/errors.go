package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent vocabulary loading and generation failures.
// Adapters wrap these with context; callers match them with errors.Is.
var (
	// ErrFileAccess indicates the vocabulary file is missing or unreadable.
	ErrFileAccess = errors.New("vocabulary file access failed")

	// ErrParse indicates the vocabulary file is not valid TOML,
	// or holds a value that cannot be emitted as a literal.
	ErrParse = errors.New("vocabulary parse failed")

	// ErrFieldAccess indicates a required field path is absent or has the wrong shape.
	ErrFieldAccess = errors.New("vocabulary field access failed")

	// ErrNotHandled indicates a module id that this provider does not own.
	ErrNotHandled = errors.New("module id not handled")

	// ErrUnknownTarget indicates a generator target that is not registered.
	ErrUnknownTarget = errors.New("unknown generator target")
)

// FieldError reports a required field path that could not be read.
type FieldError struct {
	// Path is the dotted field path, e.g. "actions.memory_add".
	Path string

	// Reason describes what was wrong with the field.
	Reason string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("field %q is missing", e.Path)
	}
	return fmt.Sprintf("field %q %s", e.Path, e.Reason)
}

// Unwrap lets errors.Is match ErrFieldAccess.
func (e *FieldError) Unwrap() error {
	return ErrFieldAccess
}
