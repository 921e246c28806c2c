// Package apperrors defines application-level error types.
package apperrors

import (
	"errors"
	"fmt"

	"github.com/yarwhq/yarw/internal/domain/values"
)

// ErrProfileNotFound matches any *ProfileNotFoundError via errors.Is.
var ErrProfileNotFound = errors.New("profile not found")

// StorageError indicates the embedded store, the filesystem or the snapshot
// bytes could not be used. It is fatal to the operation in progress.
type StorageError struct {
	Cause error
	Op    string // "load", "save", "mkdir", "open", ...
	Path  string
}

func (e *StorageError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("storage failure (%s) at %s: %v", e.Op, e.Path, e.Cause)
	}
	return fmt.Sprintf("storage failure (%s): %v", e.Op, e.Cause)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewStorageError creates a new storage error.
func NewStorageError(op, path string, cause error) *StorageError {
	return &StorageError{
		Op:    op,
		Path:  path,
		Cause: cause,
	}
}

// ProfileNotFoundError indicates a delete, update or lookup against a missing ID.
type ProfileNotFoundError struct {
	ID values.ProfileID
}

func (e *ProfileNotFoundError) Error() string {
	return fmt.Sprintf("profile not found: %s", e.ID.String())
}

// Is lets errors.Is(err, ErrProfileNotFound) match.
func (e *ProfileNotFoundError) Is(target error) bool {
	return target == ErrProfileNotFound
}

// NewProfileNotFoundError creates a new not found error.
func NewProfileNotFoundError(id values.ProfileID) *ProfileNotFoundError {
	return &ProfileNotFoundError{ID: id}
}

// CodecError indicates malformed snapshot bytes.
type CodecError struct {
	Cause  error
	Reason string
	Offset int
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed snapshot at byte %d: %s: %v", e.Offset, e.Reason, e.Cause)
	}
	return fmt.Sprintf("malformed snapshot at byte %d: %s", e.Offset, e.Reason)
}

func (e *CodecError) Unwrap() error {
	return e.Cause
}

// NewCodecError creates a new codec error.
func NewCodecError(offset int, reason string, cause error) *CodecError {
	return &CodecError{
		Offset: offset,
		Reason: reason,
		Cause:  cause,
	}
}

// ValidationError indicates user supplied profile fields failed validation.
type ValidationError struct {
	Field   string   // Field that failed validation
	Message string   // Error message
	Details []string // Additional details
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s: %s (%d issues)", e.Field, e.Message, len(e.Details))
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string, details ...string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Details: details,
	}
}

// ConfigurationError indicates system config or setup issue.
type ConfigurationError struct {
	Cause   error
	Aspect  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error (%s): %s: %v", e.Aspect, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Aspect, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(aspect, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Aspect:  aspect,
		Message: message,
		Cause:   cause,
	}
}

// IsStorageFailure reports whether err carries a StorageError.
func IsStorageFailure(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// IsCodecFailure reports whether err carries a CodecError.
func IsCodecFailure(err error) bool {
	var ce *CodecError
	return errors.As(err, &ce)
}
