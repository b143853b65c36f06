package calc

// History is the chronological log of operation descriptions for one
// session. Entries are only ever appended; Clear drops all of them at once.
// History is not safe for concurrent use.
type History struct {
	entries []string
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{entries: make([]string, 0, 64)}
}

// Append adds an entry to the end of the log.
func (h *History) Append(entry string) {
	h.entries = append(h.entries, entry)
}

// Snapshot returns an ordered copy of all entries.
func (h *History) Snapshot() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Clear empties the log.
func (h *History) Clear() {
	h.entries = nil
}
