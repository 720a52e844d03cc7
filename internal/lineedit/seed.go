package lineedit

import (
	"bufio"
	"io"
	"unicode/utf8"

	"github.com/thoreinstein/modname/internal/errors"
)

// SeedCapacity is the number of bytes that can be queued for the next line.
// Filesystems rarely allow names longer than 255 bytes.
const SeedCapacity = 512

var (
	// ErrSeedOverflow is returned by Editor.Seed when the text does not fit.
	ErrSeedOverflow = errors.New("seed buffer overflow")

	// ErrSeedUneditable is returned by Editor.Seed when the text holds bytes
	// the editor would act on as keys (control characters) or drop (invalid
	// UTF-8) instead of inserting them.
	ErrSeedUneditable = errors.New("text cannot be edited")
)

// seedReader serves queued seed bytes before falling back to the real input.
// The real input is handed out one byte at a time so that the terminal never
// buffers keystrokes belonging to a later line ahead of that line's seed.
//
// The terminal only folds CRLF into one Enter when both bytes arrive in the
// same read, so an LF directly following a CR of the real input is dropped
// here. Seed bytes served in between do not reset that state.
type seedReader struct {
	pending []byte
	in      *bufio.Reader
	afterCR bool
}

func newSeedReader(in io.Reader) *seedReader {
	return &seedReader{in: bufio.NewReader(in)}
}

func (s *seedReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if len(s.pending) > 0 {
		n := copy(p, s.pending)
		s.pending = s.pending[n:]
		return n, nil
	}
	b, err := s.in.ReadByte()
	if err != nil {
		return 0, err
	}
	if s.afterCR && b == '\n' {
		if b, err = s.in.ReadByte(); err != nil {
			s.afterCR = false
			return 0, err
		}
	}
	s.afterCR = b == '\r'
	p[0] = b
	return 1, nil
}

func (s *seedReader) stuff(text string) error {
	if err := checkSeed(text); err != nil {
		return err
	}
	if len(s.pending)+len(text) > SeedCapacity {
		return errors.Wrapf(ErrSeedOverflow, "%d bytes queued, %d more requested", len(s.pending), len(text))
	}
	s.pending = append(s.pending, text...)
	return nil
}

func (s *seedReader) discard() {
	s.pending = nil
}

// checkSeed rejects text that would not reach the edit buffer verbatim.
// The terminal drops U+FFFD along with undecodable bytes.
func checkSeed(text string) error {
	for i, r := range text {
		switch {
		case r == utf8.RuneError:
			return errors.Wrapf(ErrSeedUneditable, "invalid UTF-8 at byte %d", i)
		case r < 0x20 || r == 0x7f:
			return errors.Wrapf(ErrSeedUneditable, "control character %#02x at byte %d", r, i)
		}
	}
	return nil
}
