// Package errors provides the coded error type shared by the bmpfx packages.
//
// Every failure the core reports falls into one of three categories:
//   - INVALID_FORMAT: the byte stream is not a supported bitmap
//   - IO: a file could not be opened, written or renamed
//   - INVALID_PARAMETER: a transform was rejected and left the image untouched
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidFormat, "not a bitmap")
//	if errors.Is(err, errors.ErrCodeInvalidFormat) {
//	    // Handle bad input
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "cannot open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// ErrCodeInvalidFormat marks a stream that is not a 24-bit uncompressed bitmap.
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// ErrCodeIO marks a file that could not be opened, written or replaced.
	ErrCodeIO Code = "IO"

	// ErrCodeInvalidParameter marks a rejected operation. The image is untouched.
	ErrCodeInvalidParameter Code = "INVALID_PARAMETER"
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

// Convenience constructors for the three categories.

// Format returns an INVALID_FORMAT error.
func Format(format string, args ...any) *Error {
	return New(ErrCodeInvalidFormat, format, args...)
}

// IO wraps cause as an IO error.
func IO(cause error, format string, args ...any) *Error {
	return Wrap(ErrCodeIO, cause, format, args...)
}

// InvalidParameter returns an INVALID_PARAMETER error.
func InvalidParameter(format string, args ...any) *Error {
	return New(ErrCodeInvalidParameter, format, args...)
}
