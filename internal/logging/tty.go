package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// FileDescriptor returns the descriptor behind v when it wraps an open file.
func FileDescriptor(v any) (int, bool) {
	if f, ok := v.(interface{ Fd() uintptr }); ok {
		return int(f.Fd()), true
	}
	return -1, false
}

// IsTTY returns true if the given writer is a terminal.
// It supports os.File and any wrapper that provides an Fd() method.
func IsTTY(w io.Writer) bool {
	if fd, ok := FileDescriptor(w); ok {
		return term.IsTerminal(fd)
	}
	return false
}

// SupportsColor returns true if the given writer supports ANSI color codes.
// It returns false if:
//   - The writer is not a TTY
//   - The NO_COLOR environment variable is set
//   - The TERM environment variable is set to "dumb"
func SupportsColor(w io.Writer) bool {
	return supportsColor(w, IsTTY(w))
}

func supportsColor(_ io.Writer, isTTY bool) bool {
	// Respect NO_COLOR standard (https://no-color.org)
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	if term := os.Getenv("TERM"); term == "dumb" {
		return false
	}

	return isTTY
}
