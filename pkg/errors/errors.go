// Package errors provides structured error types for the pixvec application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the engine and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - LIMIT_*: resource limit violations (fatal for that image)
//   - INVALID_*: input or configuration validation failures
//   - DECODE_*: raster decoding failures at the input boundary
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeLimitExceeded, "image too large: %dx%d", w, h)
//	if errors.Is(err, errors.ErrCodeLimitExceeded) {
//	    // Skip this image, continue the batch
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeDecodeFailed, origErr, "failed to decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// ErrCodeLimitExceeded indicates the pixel grid exceeds the configured
	// maximum pixel count. Fatal for that image; the batch continues.
	ErrCodeLimitExceeded Code = "LIMIT_EXCEEDED"

	// ErrCodeInvalidMode indicates an unknown conversion mode was requested.
	// This is a programmer error, not an input problem.
	ErrCodeInvalidMode Code = "INVALID_MODE"

	// ErrCodeInvalidConfig indicates a malformed configuration file or an
	// inconsistent option combination.
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Input boundary errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeDecodeFailed Code = "DECODE_FAILED"

	// ErrCodeCanceled indicates the conversion was interrupted via context
	// cancellation between rectangle extractions.
	ErrCodeCanceled Code = "CANCELED"

	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
