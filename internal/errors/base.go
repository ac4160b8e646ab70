package errors

import (
	stderrors "errors"
	"fmt"
)

// PromptGenError is the base error type for all application errors
type PromptGenError struct {
	Message  string   // Human-readable error message
	Cause    error    // Underlying error (for wrapping)
	ExitCode ExitCode // Exit code for CLI
}

// Error returns the error message with cause if present
func (e *PromptGenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *PromptGenError) Unwrap() error {
	return e.Cause
}

// GetUserMessage returns a user-friendly error message
func (e *PromptGenError) GetUserMessage() string {
	msg := fmt.Sprintf("ERROR: %s", e.Message)
	if e.Cause != nil {
		msg += fmt.Sprintf("\nCause: %v", e.Cause)
	}
	return msg
}

// Code returns the process exit code for this error
func (e *PromptGenError) Code() ExitCode {
	return e.ExitCode
}

// UserFacing is satisfied by application errors that carry a
// user-friendly message and an exit code. The wrapper types embed
// *PromptGenError, so they all implement it.
type UserFacing interface {
	error
	GetUserMessage() string
	Code() ExitCode
}

// ExitCodeFor maps an error to the process exit code. Errors outside the
// application hierarchy get ExitGeneralError.
func ExitCodeFor(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	var uf UserFacing
	if stderrors.As(err, &uf) {
		return uf.Code()
	}
	return ExitGeneralError
}

// NewError creates a new PromptGenError with the given message and exit code
func NewError(message string, exitCode ExitCode) *PromptGenError {
	return &PromptGenError{
		Message:  message,
		ExitCode: exitCode,
	}
}

// WrapError wraps an existing error with additional context
func WrapError(cause error, message string, exitCode ExitCode) *PromptGenError {
	return &PromptGenError{
		Message:  message,
		Cause:    cause,
		ExitCode: exitCode,
	}
}
