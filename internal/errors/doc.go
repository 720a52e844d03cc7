// Package errors provides error handling conventions for the modname CLI.
//
// Error values are built with [github.com/cockroachdb/errors]; the helpers
// re-exported here keep call sites importing a single errors package:
//
//	if errors.Is(err, rename.ErrEmptyFilename) {
//	    // handle validation failure
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): every argument was renamed or skipped
//   - ExitUser (1): a rename failed or input ended before a line was read
//   - ExitSystem (2): setup failed (flags, environment, log file)
//   - ExitSoftware (70): an internal invariant was violated
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code, an optional
// suggestion and a Silent flag for errors whose message was already shown:
//
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
