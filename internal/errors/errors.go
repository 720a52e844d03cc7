package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Exit codes for the CLI.
const (
	// ExitSuccess indicates every argument was renamed or skipped.
	ExitSuccess = 0

	// ExitUser indicates a rename failed or user input ended unexpectedly.
	ExitUser = 1

	// ExitSystem indicates a setup error (flags, environment, log file).
	ExitSystem = 2

	// ExitSoftware indicates an internal invariant violation (EX_SOFTWARE).
	ExitSoftware = 70
)

// Re-exported constructors and inspectors from cockroachdb/errors.
var (
	New                = crdb.New
	Newf               = crdb.Newf
	Wrap               = crdb.Wrap
	Wrapf              = crdb.Wrapf
	WithStack          = crdb.WithStack
	Is                 = crdb.Is
	As                 = crdb.As
	Mark               = crdb.Mark
	Join               = crdb.Join
	AssertionFailedf   = crdb.AssertionFailedf
	IsAssertionFailure = crdb.IsAssertionFailure
)

// ExitError wraps an error with an exit code and optional suggestion for CLI applications.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string

	// Silent is set when the message has already been printed to the user.
	Silent bool
}

// NewExitError creates an ExitError with the given underlying error and exit code.
// If err is nil, the returned ExitError will have a nil Err field.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// NewReportedError creates a silent ExitError with ExitUser code for a
// failure whose message was already written to the user.
func NewReportedError(err error) *ExitError {
	return &ExitError{
		Err:    err,
		Code:   ExitUser,
		Silent: true,
	}
}

// NewInternalError creates an ExitError with ExitSoftware code.
func NewInternalError(err error) *ExitError {
	return &ExitError{
		Err:  err,
		Code: ExitSoftware,
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Code extracts the exit code carried by err.
// A nil error maps to ExitSuccess, assertion failures to ExitSoftware and
// errors without an ExitError in their chain to ExitUser.
func Code(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if As(err, &exitErr) {
		return exitErr.Code
	}
	if IsAssertionFailure(err) {
		return ExitSoftware
	}
	return ExitUser
}
