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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Plan errors
	ErrPlanLoad    ErrorCode = "PLAN_LOAD"
	ErrPlanInvalid ErrorCode = "PLAN_INVALID"

	// Report errors
	ErrReportRender ErrorCode = "REPORT_RENDER"
)

// GendryError represents a structured error with code and details
type GendryError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GendryError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GendryError) Unwrap() error {
	return e.Wrapped
}

// Is matches any GendryError carrying the same code
func (e *GendryError) Is(target error) bool {
	var targetErr *GendryError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GendryError with the given code and message
func New(code ErrorCode, message string) *GendryError {
	return &GendryError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GendryError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GendryError {
	return &GendryError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GendryError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *GendryError {
	if err == nil {
		return nil
	}
	return &GendryError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GendryError {
	if err == nil {
		return nil
	}
	return &GendryError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GendryError) WithDetail(key string, value interface{}) *GendryError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *GendryError) WithDetails(details map[string]interface{}) *GendryError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var gErr *GendryError
	if errors.As(err, &gErr) {
		return gErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GendryError
func GetErrorCode(err error) ErrorCode {
	var gErr *GendryError
	if errors.As(err, &gErr) {
		return gErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a GendryError
func GetErrorDetails(err error) map[string]interface{} {
	var gErr *GendryError
	if errors.As(err, &gErr) {
		return gErr.Details
	}
	return nil
}
