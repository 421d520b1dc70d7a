// Package errors provides structured error handling with typed error codes.
//
// Error codes are organized into categories:
//   - General errors (1-99): Unknown and general errors
//   - Configuration validation errors (100-199): Inconsistent indicator parameters
//   - Parameter lookup errors (200-299): Unrecognized parameter names
//   - Parameter parse errors (300-399): Text that cannot be converted to a parameter type
//   - Registry errors (400-499): Indicator registration and lookup errors
//   - Profile errors (500-599): Profile loading, validation, and version errors
//   - Data errors (600-699): Candle data reading and parsing errors
//   - Result output errors (700-799): Result writing errors
//
// Usage:
//
//	// Create a new error
//	err := errors.New(errors.ErrCodeInvalidPeriod, "period must be at least 1")
//
//	// Create a formatted error
//	err := errors.Newf(errors.ErrCodeUnknownParameter, "unknown parameter %q", name)
//
//	// Wrap an existing error
//	err := errors.Wrap(errors.ErrCodeDataReadFailed, "failed to read candle file", originalErr)
//
//	// Check error code
//	if errors.HasCode(err, errors.ErrCodeUnknownParameter) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with an error code and message.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Newf creates a new Error with the given code and formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   nil,
	}
}

// Wrap wraps an existing error with a new Error containing the given code and message.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an existing error with a new Error containing the given code and formatted message.
func Wrapf(code ErrorCode, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Cause)
	}

	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard errors.Is function.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard errors.As function.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetCode extracts the ErrorCode from an error if it's an *Error type.
// Returns ErrCodeUnknown if the error is not an *Error type.
func GetCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return ErrCodeUnknown
}

// HasCode checks if an error has a specific ErrorCode.
func HasCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// ShapeMismatchError represents an error when a consumer expects a result
// shape that differs from the shape an indicator actually declares.
type ShapeMismatchError struct {
	ExpectedRaw     int    // Expected count of raw values
	ExpectedActions int    // Expected count of actions
	ActualRaw       int    // Declared count of raw values
	ActualActions   int    // Declared count of actions
	Indicator       string // Optional: indicator context
	Message         string // Human-readable message
}

// NewShapeMismatchError creates a new ShapeMismatchError.
func NewShapeMismatchError(expectedRaw, expectedActions, actualRaw, actualActions int, indicator, message string) *ShapeMismatchError {
	return &ShapeMismatchError{
		ExpectedRaw:     expectedRaw,
		ExpectedActions: expectedActions,
		ActualRaw:       actualRaw,
		ActualActions:   actualActions,
		Indicator:       indicator,
		Message:         message,
	}
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	return e.Message
}

// IsShapeMismatchError checks if an error is a ShapeMismatchError.
// It uses errors.As to check the error chain.
func IsShapeMismatchError(err error) bool {
	var shapeErr *ShapeMismatchError

	return errors.As(err, &shapeErr)
}
