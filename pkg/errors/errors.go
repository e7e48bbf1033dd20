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
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"
	ErrLocked   ErrorCode = "LOCKED"

	// Precondition errors. These are fatal and are always raised before
	// any filesystem mutation.
	ErrInvalidTarget ErrorCode = "INVALID_TARGET"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrCorruptLog    ErrorCode = "CORRUPT_LOG"
	ErrLogRead       ErrorCode = "LOG_READ"

	// Per-item errors. Reported and skipped, the surrounding batch goes on.
	ErrDirCreate  ErrorCode = "DIR_CREATE_FAILED"
	ErrMove       ErrorCode = "MOVE_FAILED"
	ErrDirRemove  ErrorCode = "DIR_REMOVE_FAILED"
	ErrLogPersist ErrorCode = "LOG_PERSIST_FAILED"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"
)

// SortdirError represents a structured error with code and details
type SortdirError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SortdirError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SortdirError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SortdirError) Is(target error) bool {
	var targetErr *SortdirError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SortdirError with the given code and message
func New(code ErrorCode, message string) *SortdirError {
	return &SortdirError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SortdirError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SortdirError {
	return &SortdirError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SortdirError
func Wrap(err error, code ErrorCode, message string) *SortdirError {
	if err == nil {
		return nil
	}
	return &SortdirError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SortdirError {
	if err == nil {
		return nil
	}
	return &SortdirError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SortdirError) WithDetail(key string, value interface{}) *SortdirError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var sortdirErr *SortdirError
	if errors.As(err, &sortdirErr) {
		return sortdirErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SortdirError
func GetErrorCode(err error) ErrorCode {
	var sortdirErr *SortdirError
	if errors.As(err, &sortdirErr) {
		return sortdirErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SortdirError
func GetErrorDetails(err error) map[string]interface{} {
	var sortdirErr *SortdirError
	if errors.As(err, &sortdirErr) {
		return sortdirErr.Details
	}
	return nil
}

// IsFatal reports whether err carries a code that must stop a run before it
// touches the filesystem.
func IsFatal(err error) bool {
	switch GetErrorCode(err) {
	case ErrInvalidTarget, ErrNotFound, ErrCorruptLog, ErrLogRead, ErrLocked,
		ErrConfigLoad, ErrConfigInvalid:
		return true
	}
	return false
}

// As is errors.As, re-exported so callers importing this package under the
// name errors keep access to it
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
