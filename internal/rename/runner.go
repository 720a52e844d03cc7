package rename

import (
	"context"

	"github.com/thoreinstein/modname/internal/errors"
	"github.com/thoreinstein/modname/internal/logging"
)

// Processor handles a single argument. *Session is the implementation used
// by the CLI.
type Processor interface {
	Process(ctx context.Context, rawPath string) (Result, error)
}

// Runner processes a batch of arguments in order.
type Runner struct {
	processor Processor
}

// NewRunner creates a Runner feeding arguments to p.
func NewRunner(p Processor) *Runner {
	return &Runner{processor: p}
}

// Run processes args in order and returns the results gathered so far.
//
// It stops at the first failed argument and returns a silent ExitError with
// ExitUser, since the session has already reported the failure. When the
// editor yields no line the error carries ErrNoInput and ExitUser; assertion
// failures map to ExitSoftware. A run where every argument was renamed or
// skipped returns a nil error.
func (r *Runner) Run(ctx context.Context, args []string) ([]Result, error) {
	logger := logging.FromContext(ctx)
	results := make([]Result, 0, len(args))

	for i, arg := range args {
		if err := ctx.Err(); err != nil {
			return results, errors.NewUserError(errors.Wrap(err, "rename interrupted"), "")
		}

		res, err := r.processor.Process(ctx, arg)
		results = append(results, res)
		logger.Debug("processed argument", "arg", arg, "outcome", res.Outcome.String())

		if err != nil {
			if errors.IsAssertionFailure(err) {
				return results, errors.NewInternalError(err)
			}
			return results, errors.NewExitError(err, errors.ExitUser)
		}
		if res.Outcome == OutcomeFailed {
			if remaining := len(args) - i - 1; remaining > 0 {
				logger.Info("stopping at first failure", "skipped_arguments", remaining)
			}
			return results, errors.NewReportedError(res.Err)
		}
	}

	return results, nil
}
