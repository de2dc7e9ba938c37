package util

import (
	"errors"
	"fmt"
)

var (
	// ErrCmdAbort is reported when user aborts the program.
	ErrCmdAbort = errors.New("aborted by user")
)

// ValidationError is reported when a template variable is missing or has
// an invalid format.
type ValidationError struct {
	// Key is a placeholder key the error is about.
	Key string
	// Reason describes what is wrong with the value.
	Reason string
}

// Error returns error message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value of %q: %s", e.Key, e.Reason)
}

// NewValidationError creates a validation error for the key.
func NewValidationError(key, format string, args ...interface{}) error {
	return &ValidationError{Key: key, Reason: fmt.Sprintf(format, args...)}
}

// ConflictError is reported when the target directory exists and is not empty.
type ConflictError struct {
	// Path is the conflicting target path.
	Path string
}

// Error returns error message.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("target directory %q already exists and is not empty", e.Path)
}

// IOError is a read or write failure on a specific path.
type IOError struct {
	// Op is a failed operation, like "read" or "rename".
	Op string
	// Path is the offending path.
	Path string
	// Err is the underlying error.
	Err error
}

// Error returns error message.
func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %q: %s", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates an IOError for the operation on path.
func NewIOError(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}
