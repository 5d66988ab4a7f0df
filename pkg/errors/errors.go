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

	// Catalog / resolution errors
	ErrComponentNotFound        ErrorCode = "COMPONENT_NOT_FOUND"
	ErrCircularDependency       ErrorCode = "CIRCULAR_DEPENDENCY"
	ErrInvalidComponentMetadata ErrorCode = "INVALID_COMPONENT_METADATA"
	ErrInvalidComponentID       ErrorCode = "INVALID_COMPONENT_ID"

	// Environment document errors
	ErrMalformedEnvToml ErrorCode = "MALFORMED_ENV_TOML"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// ToolupError represents a structured error with code and details
type ToolupError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ToolupError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ToolupError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ToolupError) Is(target error) bool {
	var targetErr *ToolupError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ToolupError with the given code and message
func New(code ErrorCode, message string) *ToolupError {
	return &ToolupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ToolupError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ToolupError {
	return &ToolupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ToolupError
func Wrap(err error, code ErrorCode, message string) *ToolupError {
	if err == nil {
		return nil
	}
	return &ToolupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ToolupError {
	if err == nil {
		return nil
	}
	return &ToolupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ToolupError) WithDetail(key string, value interface{}) *ToolupError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ToolupError) WithDetails(details map[string]interface{}) *ToolupError {
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
	var toolupErr *ToolupError
	if errors.As(err, &toolupErr) {
		return toolupErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ToolupError
func GetErrorCode(err error) ErrorCode {
	var toolupErr *ToolupError
	if errors.As(err, &toolupErr) {
		return toolupErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ToolupError
func GetErrorDetails(err error) map[string]interface{} {
	var toolupErr *ToolupError
	if errors.As(err, &toolupErr) {
		return toolupErr.Details
	}
	return nil
}

// GetDetail returns a single detail value from an error, or nil if absent
func GetDetail(err error, key string) interface{} {
	details := GetErrorDetails(err)
	if details == nil {
		return nil
	}
	return details[key]
}
