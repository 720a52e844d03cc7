// Package commands implements the CLI commands for modname.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/modname/cmd"
	"github.com/thoreinstein/modname/internal/cli/pick"
	"github.com/thoreinstein/modname/internal/config"
	"github.com/thoreinstein/modname/internal/errors"
	"github.com/thoreinstein/modname/internal/lineedit"
	"github.com/thoreinstein/modname/internal/logging"
	"github.com/thoreinstein/modname/internal/rename"
	"github.com/thoreinstein/modname/internal/report"
)

const usageHint = "Run 'modname --help' for usage"

// app carries the state shared by the commands of one invocation.
type app struct {
	cfg     *config.Config
	fs      afero.Fs
	logFile io.Closer
}

// newRootCmd builds the command tree and the state it runs with. Each call
// returns independent flag state.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{fs: afero.NewOsFs()}

	root := &cobra.Command{
		Use:   "modname [flags] [path...]",
		Short: "Interactively rename files",
		Long: `modname renames files one at a time. For every path it opens a line
editor pre-filled with the current filename; edit it and press Enter to
rename the file within its directory.

Submitting an empty line skips the file. A new name containing '/' is
rejected, and the first failed rename stops the run. Tab completes names
from the working directory and from names entered earlier; the arrow keys
walk the history of this run.`,
		Example: `  # Rename two files
  modname notes.txt draft.md

  # Choose the files with a fuzzy finder
  modname --pick

  # Print what happened as JSON when done
  modname --summary json *.jpg

  # Keep a YAML record of the run
  modname --summary yaml --summary-file renames.yaml *.jpg`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: a.runRename,
	}

	pf := root.PersistentFlags()
	pf.Count(config.FlagName(config.KeyVerbose),
		"increase verbosity level (e.g., --verbose --verbose)")
	pf.BoolP(config.FlagName(config.KeyQuiet), "q", false,
		"suppress non-error output")
	pf.String(config.FlagName(config.KeyLogFormat), "text",
		"log format: text, json")
	pf.String(config.FlagName(config.KeyLogFile), "",
		"write logs to file in JSON format")
	pf.Bool(config.FlagName(config.KeyNoColor), false,
		"disable colored output")

	f := root.Flags()
	f.String(config.FlagName(config.KeyPrompt), rename.DefaultPrompt,
		"prompt shown in front of the filename")
	f.Bool(config.FlagName(config.KeyPick), false,
		"choose files from the working directory with a fuzzy finder")
	f.String(config.FlagName(config.KeySummary), "",
		"print a summary when done: yaml, toml, json")
	f.String(config.FlagName(config.KeySummaryFile), "",
		"write the summary to this file instead of stdout")

	root.Version = cmd.Version
	root.SetVersionTemplate("modname version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	root.SilenceErrors = true
	root.SilenceUsage = true
	root.CompletionOptions.DisableDefaultCmd = true

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.NewSystemError(err, usageHint)
	})

	root.AddCommand(newVersionCmd())

	return root, a
}

// setup loads the configuration and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	config.Init()
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return errors.NewSystemError(err, usageHint)
	}
	a.cfg = cfg

	if cfg.NoColor {
		color.NoColor = true
	}

	closer, err := setupLogging(cmd, cfg)
	if err != nil {
		return err
	}
	a.logFile = closer
	return nil
}

// setupLogging configures the default logger from the configuration and
// stores it in the command context. The returned closer is non-nil when a
// log file was opened.
func setupLogging(cmd *cobra.Command, cfg *config.Config) (io.Closer, error) {
	if cfg.Quiet && cfg.Verbose > 0 {
		return nil, errors.NewSystemError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if cfg.Quiet {
		level = slog.LevelError
	} else {
		v := cfg.Verbose

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("MODNAME_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	handlers := []slog.Handler{logging.NewFormatHandler(logging.Config{
		Level:  level,
		Format: logging.Format(cfg.LogFormat),
		Output: cmd.ErrOrStderr(),
	})}

	var closer io.Closer
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, errors.NewSystemError(errors.Wrap(err, "opening log file"), "check the --log-file path")
		}
		closer = f
		// File output uses JSON format
		handlers = append(handlers, logging.NewFormatHandler(logging.Config{
			Level:  level,
			Format: logging.FormatJSON,
			Output: f,
		}))
	}

	logger := slog.New(logging.NewMultiHandler(handlers...))
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return closer, nil
}

// runRename renames every argument, plus the picked files, interactively.
func (a *app) runRename(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	if a.cfg.Pick {
		picked, err := pick.New(a.fs, ".").Pick()
		if err != nil {
			return errors.NewSystemError(err, "")
		}
		logger.Debug("picked files", "count", len(picked))
		args = append(args, picked...)
	}

	hist := lineedit.NewHistory()
	editor := lineedit.New(cmd.InOrStdin(), cmd.OutOrStdout(),
		lineedit.WithHistory(hist),
		lineedit.WithCompleter(lineedit.NewCompleter(a.fs, ".", hist)),
	)
	session := rename.NewSession(a.fs, editor, hist,
		rename.WithPrompt(a.cfg.Prompt),
		rename.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()),
	)

	results, runErr := rename.NewRunner(session).Run(ctx, args)

	if a.cfg.Summary != "" {
		if err := a.writeSummary(cmd.OutOrStdout(), results); err != nil {
			logger.Error("writing summary failed", "error", err)
			if runErr == nil {
				runErr = errors.NewSystemError(err, "")
			}
		}
	}

	return runErr
}

func (a *app) writeSummary(w io.Writer, results []rename.Result) error {
	format := report.Format(a.cfg.Summary)
	if a.cfg.SummaryFile != "" {
		return report.WriteFile(a.fs, a.cfg.SummaryFile, format, results)
	}
	return report.Write(w, format, results)
}

// close releases resources opened during setup.
func (a *app) close() {
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}

// run executes root and returns the process exit code. Errors not already
// shown to the user are printed to the command's stderr.
func run(root *cobra.Command, a *app) int {
	err := root.Execute()
	a.close()
	if err == nil {
		return errors.ExitSuccess
	}

	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) || !exitErr.Silent {
		printError(root.ErrOrStderr(), err)
	}
	return errors.Code(err)
}

func printError(w io.Writer, err error) {
	prefix := "Error:"
	if logging.SupportsColor(w) && !color.NoColor {
		prefix = color.New(color.FgRed, color.Bold).Sprint(prefix)
	}

	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) || exitErr.Suggestion == "" {
		fmt.Fprintf(w, "%s %s\n", prefix, err)
		return
	}
	if exitErr.Err == nil {
		fmt.Fprintf(w, "%s %s\n", prefix, exitErr.Suggestion)
		return
	}
	fmt.Fprintf(w, "%s %s\n%s\n", prefix, exitErr.Err, exitErr.Suggestion)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	return run(newRootCmd())
}
