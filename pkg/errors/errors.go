// Package errors provides structured error types for peptrack.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the sync engine
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - GEOMETRY_* / TRANSFORM_*: Viewport math refused a value
//   - TRACK_* / PEER_*: Track lifecycle and relay failures
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeGeometry, "width must be positive, got %v", w)
//	if errors.Is(err, errors.ErrCodeGeometry) {
//	    // keep the last good geometry
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodePeerApply, cause, "peer %s", id)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidDomain  Code = "INVALID_DOMAIN"
	ErrCodeInvalidSession Code = "INVALID_SESSION"

	// Viewport errors
	ErrCodeGeometry       Code = "GEOMETRY_INVALID"
	ErrCodeTransformRange Code = "TRANSFORM_OUT_OF_RANGE"

	// Track and relay errors
	ErrCodeTrackBusy      Code = "TRACK_BUSY"
	ErrCodeTrackNotFound  Code = "TRACK_NOT_FOUND"
	ErrCodeDuplicateTrack Code = "DUPLICATE_TRACK"
	ErrCodePeerApply      Code = "PEER_APPLY_FAILED"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Join aggregates errs the way the standard library does, dropping nils.
// It returns nil when every error is nil.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
