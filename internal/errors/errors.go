package errors

import "fmt"

// Code is a stable error code attached to every fatal pipeline failure
type Code string

const (
	// RepoNotFound indicates the repository root does not exist
	RepoNotFound Code = "REPO_NOT_FOUND"
	// NotADirectory indicates the repository root is not a directory
	NotADirectory Code = "NOT_A_DIRECTORY"
	// InvalidInput indicates a malformed requirement or analysis input
	InvalidInput Code = "INVALID_INPUT"
	// Internal indicates an unexpected failure
	Internal Code = "INTERNAL_ERROR"
)

// Error carries a code and message alongside the underlying cause
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	cause   error
}

// New creates a coded error without an underlying cause
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a coded error wrapping an underlying cause
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// CodeOf returns the code of err if it is a coded error, Internal otherwise
func CodeOf(err error) Code {
	if ce, ok := err.(*Error); ok {
		return ce.Code
	}
	return Internal
}
