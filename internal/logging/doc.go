// Package logging provides structured logging for the modname CLI using slog.
//
// Log records are diagnostics for the person running modname with --verbose;
// the messages a rename prints for the user (errors, skip notices) are written
// directly by the rename package and never go through a logger.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(2),
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	ctx = logging.NewContext(ctx, logger)
//	logging.FromContext(ctx).Debug("split path", "directory", dir)
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
package logging
