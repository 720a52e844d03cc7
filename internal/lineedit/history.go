package lineedit

// History is the in-memory list of accepted filenames for one run.
// It implements term.History so the arrow keys navigate it.
type History struct {
	entries []string
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Record appends an accepted entry.
func (h *History) Record(entry string) {
	h.entries = append(h.entries, entry)
}

// Add is called by the terminal for every submitted line. Lines are only
// kept once the caller accepts them through Record, so Add drops them.
func (h *History) Add(string) {}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.entries)
}

// At returns the entry idx steps back from the most recent one.
// It panics when idx is out of range, as term.History requires.
func (h *History) At(idx int) string {
	return h.entries[len(h.entries)-1-idx]
}

// Entries returns a copy of the recorded entries, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
