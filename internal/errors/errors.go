// Package errors defines the structured error type shared by the sync
// pipeline. Background dispatch errors are recoverable and get logged and
// discarded per event; configuration errors are fatal to initialization.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType categorizes failures in the pipeline.
type ErrorType string

const (
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeSync       ErrorType = "sync"
)

// Error codes used across the pipeline.
const (
	CodeDirectoryMissing = "directory_missing"
	CodeInvalidExtension = "invalid_extension"
	CodeMissingDocument  = "missing_document"
	CodeMissingMarkers   = "missing_markers"
	CodeMissingEndMarker = "missing_end_marker"
	CodeCreateFailed     = "create_failed"
	CodeReadFailed       = "read_failed"
	CodeWriteFailed      = "write_failed"
)

// SyncError carries enough context to log a discarded event or report an
// interactive failure.
type SyncError struct {
	Type        ErrorType
	Code        string
	Message     string
	Path        string
	Cause       error
	Recoverable bool
}

// Error implements the error interface.
func (e *SyncError) Error() string {
	s := fmt.Sprintf("[%s]", e.Code)
	if e.Path != "" {
		s += " " + e.Path
	}
	s += ": " + e.Message
	if e.Cause != nil {
		s += fmt.Sprintf(": %v", e.Cause)
	}
	return s
}

// Unwrap returns the underlying cause error.
func (e *SyncError) Unwrap() error {
	return e.Cause
}

// Is matches on type and code so callers can compare against a prototype
// error without caring about path or cause.
func (e *SyncError) Is(target error) bool {
	var t *SyncError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}
	return false
}

// WithPath attaches the affected filesystem path.
func (e *SyncError) WithPath(path string) *SyncError {
	e.Path = path
	return e
}

// NewConfigError creates a fatal initialization error.
func NewConfigError(code, message string) *SyncError {
	return &SyncError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a per-operation validation error.
func NewValidationError(code, message string) *SyncError {
	return &SyncError{
		Type:        ErrorTypeValidation,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewIOError creates an error wrapping a failed filesystem operation.
func NewIOError(code, message string, cause error) *SyncError {
	return &SyncError{
		Type:        ErrorTypeIO,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: true,
	}
}

// NewSyncError creates a per-event error in the document sync path.
func NewSyncError(code, message string) *SyncError {
	return &SyncError{
		Type:        ErrorTypeSync,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// IsRecoverable reports whether the watch loop may continue past err.
// Unknown error types are treated as recoverable so that a single odd event
// can never stop the watcher.
func IsRecoverable(err error) bool {
	var se *SyncError
	if errors.As(err, &se) {
		return se.Recoverable
	}
	return true
}
