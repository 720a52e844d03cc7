package rename

import (
	"github.com/spf13/afero"

	"github.com/thoreinstein/modname/internal/lineedit"
)

// scriptedEditor replays prepared lines and remembers every seed.
type scriptedEditor struct {
	lines   []string
	seeds   []string
	prompts []string
	seedErr error
}

func (e *scriptedEditor) Seed(text string) error {
	if e.seedErr != nil {
		return e.seedErr
	}
	e.seeds = append(e.seeds, text)
	return nil
}

func (e *scriptedEditor) ReadLine(prompt string) (string, error) {
	e.prompts = append(e.prompts, prompt)
	if len(e.lines) == 0 {
		return "", lineedit.ErrEndOfInput
	}
	line := e.lines[0]
	e.lines = e.lines[1:]
	return line, nil
}

type recordingHistory struct {
	entries []string
}

func (h *recordingHistory) Record(entry string) {
	h.entries = append(h.entries, entry)
}

// countingFs counts Rename calls on top of another filesystem.
type countingFs struct {
	afero.Fs
	renames int
}

func (c *countingFs) Rename(oldname, newname string) error {
	c.renames++
	return c.Fs.Rename(oldname, newname)
}
