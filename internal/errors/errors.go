// Package errors defines the coded error values returned by pathed.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the category of a failure.
type ErrorCode string

const (
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrIO            ErrorCode = "IO"
	ErrConfig        ErrorCode = "CONFIG"
)

// PathError is a structured error with a code and optional details.
type PathError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *PathError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}

func (e *PathError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a PathError carrying the same code.
func (e *PathError) Is(target error) bool {
	var targetErr *PathError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a PathError with the given code and message.
func New(code ErrorCode, message string) *PathError {
	return &PathError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a PathError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *PathError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a code and message. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *PathError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PathError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail attaches a key/value pair to the error.
func (e *PathError) WithDetail(key string, value interface{}) *PathError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks whether err, or anything it wraps, has the given code.
func IsErrorCode(err error, code ErrorCode) bool {
	return GetErrorCode(err) == code
}

// GetErrorCode returns the code of err, or ErrUnknown.
func GetErrorCode(err error) ErrorCode {
	var pathErr *PathError
	if errors.As(err, &pathErr) {
		return pathErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details attached to err, if any.
func GetErrorDetails(err error) map[string]interface{} {
	var pathErr *PathError
	if errors.As(err, &pathErr) {
		return pathErr.Details
	}
	return nil
}
