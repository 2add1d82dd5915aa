package errors

import (
	"errors"
	"fmt"
)

// Code categorizes errors raised by the content pipeline and runtime core.
type Code string

const (
	// CodeUnknown indicates an unclassified error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller passed an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested entity was not found
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates an attempt to create an entity that already exists
	CodeAlreadyExists Code = "already_exists"

	// CodeDuplicateID indicates a definition with a duplicate ID in a content file
	CodeDuplicateID Code = "duplicate_id"

	// CodeReadError indicates a content file could not be read
	CodeReadError Code = "read_error"

	// CodeParseError indicates a content file could not be parsed
	CodeParseError Code = "parse_error"

	// CodeValidation indicates a definition failed validation
	CodeValidation Code = "validation"

	// CodeMissingDependency indicates a cross-database reference did not resolve
	CodeMissingDependency Code = "missing_dependency"

	// CodeVersionMismatch indicates a campaign manifest carries an unsupported format version
	CodeVersionMismatch Code = "version_mismatch"

	// CodeInternal indicates an internal error
	CodeInternal Code = "internal"
)

// Error is the application error type carrying a code and optional metadata.
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context, preserving the code of an
// already-typed error.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return &Error{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(appErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// Helper constructors for common error kinds

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExists creates an already exists error
func AlreadyExists(message string) *Error {
	return New(CodeAlreadyExists, message)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// DuplicateIDf creates a formatted duplicate ID error
func DuplicateIDf(format string, args ...any) *Error {
	return Newf(CodeDuplicateID, format, args...)
}

// ReadErrorf creates a formatted read error
func ReadErrorf(format string, args ...any) *Error {
	return Newf(CodeReadError, format, args...)
}

// ParseErrorf creates a formatted parse error
func ParseErrorf(format string, args ...any) *Error {
	return Newf(CodeParseError, format, args...)
}

// Validation creates a validation error
func Validation(message string) *Error {
	return New(CodeValidation, message)
}

// Validationf creates a formatted validation error
func Validationf(format string, args ...any) *Error {
	return Newf(CodeValidation, format, args...)
}

// MissingDependencyf creates a formatted missing dependency error
func MissingDependencyf(format string, args ...any) *Error {
	return Newf(CodeMissingDependency, format, args...)
}

// VersionMismatchf creates a formatted version mismatch error
func VersionMismatchf(format string, args ...any) *Error {
	return Newf(CodeVersionMismatch, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Error checking functions

// Is checks if the error carries a specific code
func Is(err error, code Code) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsAlreadyExists checks if the error is an already exists error
func IsAlreadyExists(err error) bool {
	return Is(err, CodeAlreadyExists)
}

// IsDuplicateID checks if the error is a duplicate ID error
func IsDuplicateID(err error) bool {
	return Is(err, CodeDuplicateID)
}

// IsParseError checks if the error is a parse error
func IsParseError(err error) bool {
	return Is(err, CodeParseError)
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	return Is(err, CodeValidation)
}

// IsMissingDependency checks if the error is a missing dependency error
func IsMissingDependency(err error) bool {
	return Is(err, CodeMissingDependency)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
