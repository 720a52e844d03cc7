package lineedit

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
)

const keyTab = '\t'

// Completer completes the edited filename from the entries of a directory
// and the recorded history.
type Completer struct {
	fs      afero.Fs
	dir     string
	history *History
}

// NewCompleter returns a completer listing dir on fs. history may be nil.
func NewCompleter(fs afero.Fs, dir string, history *History) *Completer {
	return &Completer{fs: fs, dir: dir, history: history}
}

// Candidates returns the sorted, de-duplicated names starting with prefix.
// Unreadable directories contribute nothing.
func (c *Completer) Candidates(prefix string) []string {
	var names []string
	if infos, err := afero.ReadDir(c.fs, c.dir); err == nil {
		for _, info := range infos {
			names = append(names, info.Name())
		}
	}
	if c.history != nil {
		names = append(names, c.history.Entries()...)
	}

	var out []string
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Complete is installed as term.Terminal.AutoCompleteCallback. It reacts to
// Tab only: the text left of the cursor is extended to the single matching
// candidate, or to the longest prefix shared by all candidates.
func (c *Completer) Complete(line string, pos int, key rune) (string, int, bool) {
	if key != keyTab {
		return "", 0, false
	}

	prefix, suffix := line[:pos], line[pos:]
	completed := longestCommonPrefix(c.Candidates(prefix))
	if len(completed) <= len(prefix) {
		// Swallow the tab; it is not printable anyway.
		return line, pos, true
	}
	return completed + suffix, len(completed), true
}

func longestCommonPrefix(words []string) string {
	if len(words) == 0 {
		return ""
	}
	prefix := words[0]
	for _, w := range words[1:] {
		for !strings.HasPrefix(w, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	// Byte-wise trimming may have split a multi-byte rune.
	for !utf8.ValidString(prefix) {
		prefix = prefix[:len(prefix)-1]
	}
	return prefix
}
