package lineedit

import (
	"io"

	"golang.org/x/term"

	"github.com/thoreinstein/modname/internal/errors"
	"github.com/thoreinstein/modname/internal/logging"
)

// ErrEndOfInput is returned by ReadLine when no line could be read:
// the input ended, or the user pressed Ctrl-D on an empty line or Ctrl-C.
var ErrEndOfInput = errors.New("end of input")

// Editor is a single-line editor over a terminal or any byte stream.
// One Editor is used for the whole run so history survives between lines.
type Editor struct {
	term    *term.Terminal
	seed    *seedReader
	history *History
	out     io.Writer
	fd      int
}

// Option configures an Editor.
type Option func(*Editor)

// WithHistory shares h with the editor instead of a fresh history.
func WithHistory(h *History) Option {
	return func(e *Editor) {
		e.history = h
	}
}

// WithCompleter installs c as the Tab completion handler.
func WithCompleter(c *Completer) Option {
	return func(e *Editor) {
		e.term.AutoCompleteCallback = c.Complete
	}
}

// New returns an Editor reading keys from in and drawing on out.
// When in is a terminal it is switched to raw mode for each ReadLine call.
func New(in io.Reader, out io.Writer, opts ...Option) *Editor {
	e := &Editor{
		seed:    newSeedReader(in),
		history: NewHistory(),
		out:     out,
		fd:      -1,
	}
	if fd, ok := logging.FileDescriptor(in); ok && term.IsTerminal(fd) {
		e.fd = fd
	}

	e.term = term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{e.seed, out}, "")

	for _, opt := range opts {
		opt(e)
	}
	e.term.History = e.history

	return e
}

// History returns the history navigated by the arrow keys.
func (e *Editor) History() *History {
	return e.history
}

// Seed queues text as the initial content of the next line. Text holding
// control characters or invalid UTF-8 is rejected with ErrSeedUneditable.
func (e *Editor) Seed(text string) error {
	return e.seed.stuff(text)
}

// ReadLine shows prompt and blocks until a line is submitted.
func (e *Editor) ReadLine(prompt string) (string, error) {
	if e.fd >= 0 {
		state, err := term.MakeRaw(e.fd)
		if err != nil {
			e.seed.discard()
			return "", errors.Wrap(err, "switching terminal to raw mode")
		}
		defer term.Restore(e.fd, state) //nolint:errcheck // best effort on the way out

		if width, height, err := term.GetSize(e.fd); err == nil && width > 0 {
			_ = e.term.SetSize(width, height)
		}
	}

	e.term.SetPrompt(prompt)
	line, err := e.term.ReadLine()
	if errors.Is(err, term.ErrPasteIndicator) {
		err = nil
	}
	if err != nil {
		e.seed.discard()
		if errors.Is(err, io.EOF) {
			// Leave the unfinished prompt line so later output starts on its own line.
			_, _ = io.WriteString(e.out, "\r\n")
			return "", ErrEndOfInput
		}
		return "", errors.Wrap(err, "reading line")
	}
	return line, nil
}
