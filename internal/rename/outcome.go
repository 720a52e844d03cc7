package rename

import (
	"github.com/thoreinstein/modname/internal/errors"
)

// Outcome is the result class of processing one argument.
type Outcome int

const (
	// OutcomeSkipped means nothing was renamed and the run continues.
	OutcomeSkipped Outcome = iota
	// OutcomeRenamed means the file was renamed.
	OutcomeRenamed
	// OutcomeFailed means the argument could not be renamed; the run stops.
	OutcomeFailed
)

// String returns the lower-case name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeRenamed:
		return "renamed"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Sentinel errors carried by failed results.
var (
	// ErrEmptyFilename indicates the path has no filename component.
	ErrEmptyFilename = errors.New("filename is empty")

	// ErrFilenameTooLong indicates the filename does not fit the edit buffer.
	ErrFilenameTooLong = errors.New("filename too long")

	// ErrUneditableFilename indicates the filename holds control characters
	// or invalid UTF-8 and cannot be loaded into the line editor.
	ErrUneditableFilename = errors.New("filename contains characters that cannot be edited")

	// ErrSlashInFilename indicates the new name contains a path separator.
	ErrSlashInFilename = errors.New("new filename cannot contain a slash")

	// ErrRename indicates the filesystem refused the rename.
	ErrRename = errors.New("cannot rename file")

	// ErrNoInput indicates the editor returned no line at all.
	ErrNoInput = errors.New("no line read")
)

// Result describes what happened to one argument.
type Result struct {
	// Path is the argument as given on the command line.
	Path string
	// Source is the normalized path that was renamed, if any.
	Source string
	// Destination is the new path, set once a new name was accepted.
	Destination string
	Outcome     Outcome
	// Err is the reason for OutcomeFailed.
	Err error
}

func skipped(path, source string) Result {
	return Result{Path: path, Source: source, Outcome: OutcomeSkipped}
}

func failed(path, source string, err error) Result {
	return Result{Path: path, Source: source, Outcome: OutcomeFailed, Err: err}
}
