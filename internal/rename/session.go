package rename

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/thoreinstein/modname/internal/errors"
	"github.com/thoreinstein/modname/internal/lineedit"
	"github.com/thoreinstein/modname/internal/logging"
	"github.com/thoreinstein/modname/internal/paths"
)

// DefaultPrompt is shown in front of the edited filename.
const DefaultPrompt = "> "

// LineEditor is the interactive line-editing collaborator.
type LineEditor interface {
	// Seed sets the initial content of the next line.
	Seed(text string) error
	// ReadLine shows prompt and blocks until a line is submitted.
	// Any error means no line was read.
	ReadLine(prompt string) (string, error)
}

// History receives every accepted new filename.
type History interface {
	Record(entry string)
}

// Session renames command-line arguments one at a time.
type Session struct {
	fs      afero.Fs
	editor  LineEditor
	history History
	prompt  string
	stdout  io.Writer
	stderr  io.Writer
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithPrompt overrides DefaultPrompt.
func WithPrompt(prompt string) SessionOption {
	return func(s *Session) {
		s.prompt = prompt
	}
}

// WithOutput sets where notices and error messages are written.
func WithOutput(stdout, stderr io.Writer) SessionOption {
	return func(s *Session) {
		s.stdout = stdout
		s.stderr = stderr
	}
}

// NewSession creates a session renaming on fs. history may be nil.
func NewSession(fs afero.Fs, editor LineEditor, history History, opts ...SessionOption) *Session {
	s := &Session{
		fs:      fs,
		editor:  editor,
		history: history,
		prompt:  DefaultPrompt,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Process runs the interactive rename of one argument.
//
// Validation and filesystem failures are reported to the user and returned as
// an OutcomeFailed result with a nil error. A non-nil error means the run
// must end immediately: either the editor produced no line (ErrNoInput) or
// an internal assertion failed.
func (s *Session) Process(ctx context.Context, rawPath string) (Result, error) {
	logger := logging.FromContext(ctx).With("arg", rawPath)

	oldPath := paths.TrimTrailingSeparators(rawPath)
	if oldPath == "" {
		logger.Debug("nothing left after trimming separators, skipping")
		return skipped(rawPath, ""), nil
	}

	df := paths.Split(oldPath)
	logger.Log(ctx, logging.LevelTrace, "split path", "directory", df.Directory, "filename", df.Filename)
	if df.Filename == "" {
		return s.fail(rawPath, oldPath, ErrEmptyFilename), nil
	}

	if err := s.editor.Seed(df.Filename); err != nil {
		logger.Debug("seeding editor failed", "error", err)
		if errors.Is(err, lineedit.ErrSeedUneditable) {
			return s.fail(rawPath, oldPath, ErrUneditableFilename), nil
		}
		return s.fail(rawPath, oldPath, ErrFilenameTooLong), nil
	}

	newName, err := s.editor.ReadLine(s.prompt)
	if err != nil {
		err = errors.Mark(errors.Wrap(err, ErrNoInput.Error()), ErrNoInput)
		return failed(rawPath, oldPath, err), err
	}

	if newName == "" {
		fmt.Fprintln(s.stdout, "New filename is empty. Skipping file!")
		return skipped(rawPath, oldPath), nil
	}
	if strings.Contains(newName, paths.Separator) {
		return s.fail(rawPath, oldPath, ErrSlashInFilename), nil
	}

	if s.history != nil {
		s.history.Record(newName)
	}

	newPath, err := paths.Join(df.Directory, newName)
	if err != nil {
		return failed(rawPath, oldPath, err), err
	}
	if df.Directory == "" && paths.IsRooted(oldPath) {
		newPath = paths.Separator + newPath
	}

	res := Result{Path: rawPath, Source: oldPath, Destination: newPath}
	if err := s.fs.Rename(oldPath, newPath); err != nil {
		err = errors.Mark(errors.Wrapf(osReason(err), "cannot rename file '%s'", oldPath), ErrRename)
		s.report(err)
		res.Outcome, res.Err = OutcomeFailed, err
		return res, nil
	}

	logger.Info("renamed", "from", oldPath, "to", newPath)
	res.Outcome = OutcomeRenamed
	return res, nil
}

func (s *Session) fail(rawPath, oldPath string, err error) Result {
	s.report(err)
	return failed(rawPath, oldPath, err)
}

// report writes a one-line error message to stderr.
func (s *Session) report(err error) {
	prefix := "Error:"
	if logging.SupportsColor(s.stderr) && !color.NoColor {
		prefix = color.New(color.FgRed, color.Bold).Sprint(prefix)
	}
	fmt.Fprintf(s.stderr, "%s %s\n", prefix, err)
}

// osReason strips the operation and paths from filesystem errors, leaving the
// system's description of the failure.
func osReason(err error) error {
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return linkErr.Err
	}
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
