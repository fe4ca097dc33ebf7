package errorwrapper

import (
	"errors"
	"fmt"
)

// Common error types used across the application
var (
	// ErrInvalidInput indicates invalid user input
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")
	// ErrPermissionDenied indicates access permission issues
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInvalidConfiguration indicates configuration issues
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// WrapError wraps an error with additional context information
func WrapError(err error, message string) error {
	if err == nil {
		return fmt.Errorf("%s: <nil>", message)
	}
	return fmt.Errorf("%s: %w", message, err)
}

// NewError creates a new error with a formatted message
func NewError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// ValidationError represents validation errors with field-specific information
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// ArtifactError represents a failure while producing a single output artifact.
// Artifact names which generator failed so the caller can report it precisely.
type ArtifactError struct {
	Artifact string
	Path     string
	Wrapped  error
}

func (e *ArtifactError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("artifact '%s' failed at '%s': %v", e.Artifact, e.Path, e.Wrapped)
	}
	return fmt.Sprintf("artifact '%s' failed: %v", e.Artifact, e.Wrapped)
}

func (e *ArtifactError) Unwrap() error {
	return e.Wrapped
}

// NewArtifactError creates a new artifact error
func NewArtifactError(artifact, path string, wrapped error) *ArtifactError {
	return &ArtifactError{
		Artifact: artifact,
		Path:     path,
		Wrapped:  wrapped,
	}
}
