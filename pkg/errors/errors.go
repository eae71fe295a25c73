package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Structural errors
	ErrNotDirectory    ErrorCode = "NOT_DIRECTORY"
	ErrNotFile         ErrorCode = "NOT_FILE"
	ErrDuplicateSource ErrorCode = "DUPLICATE_SOURCE"

	// Filesystem errors
	ErrReadDir      ErrorCode = "READ_DIR_FAILED"
	ErrCanonicalize ErrorCode = "CANONICALIZE_FAILED"
	ErrRename       ErrorCode = "RENAME_FAILED"
	ErrMaxDepth     ErrorCode = "MAX_DEPTH_REACHED"

	// Evaluation errors
	ErrVariableNotDefined ErrorCode = "VARIABLE_NOT_DEFINED"
	ErrNoFileName         ErrorCode = "CANNOT_IDENTIFY_FILE_NAME"

	// Script errors
	ErrScriptParse   ErrorCode = "SCRIPT_PARSE"
	ErrScriptInvalid ErrorCode = "SCRIPT_INVALID"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"
)

// RetreeError represents a structured error with code and details
type RetreeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RetreeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RetreeError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RetreeError) Is(target error) bool {
	var targetErr *RetreeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RetreeError with the given code and message
func New(code ErrorCode, message string) *RetreeError {
	return &RetreeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RetreeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RetreeError {
	return &RetreeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RetreeError
func Wrap(err error, code ErrorCode, message string) *RetreeError {
	if err == nil {
		return nil
	}
	return &RetreeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RetreeError {
	if err == nil {
		return nil
	}
	return &RetreeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RetreeError) WithDetail(key string, value interface{}) *RetreeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var retreeErr *RetreeError
	if errors.As(err, &retreeErr) {
		return retreeErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RetreeError
func GetErrorCode(err error) ErrorCode {
	var retreeErr *RetreeError
	if errors.As(err, &retreeErr) {
		return retreeErr.Code
	}
	return ErrUnknown
}
