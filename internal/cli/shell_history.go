package cli

const maxHistoryLines = 500

// shellHistory is the in-memory command history behind Up/Down. Nothing is
// written to disk; history ends with the session like the roadmap does.
type shellHistory struct {
	lines []string
	limit int
	idx   int // len(lines) means "past the newest entry"
}

func newShellHistory(limit int) *shellHistory {
	if limit <= 0 {
		limit = maxHistoryLines
	}
	return &shellHistory{limit: limit}
}

// Add records line and resets the cursor. Blank lines and immediate
// repeats are skipped.
func (h *shellHistory) Add(line string) {
	if line == "" {
		return
	}
	if n := len(h.lines); n == 0 || h.lines[n-1] != line {
		h.lines = append(h.lines, line)
		if len(h.lines) > h.limit {
			h.lines = h.lines[len(h.lines)-h.limit:]
		}
	}
	h.idx = len(h.lines)
}

// Prev moves towards older entries. ok is false when there is nothing older.
func (h *shellHistory) Prev() (string, bool) {
	if h.idx == 0 {
		return "", false
	}
	h.idx--
	return h.lines[h.idx], true
}

// Next moves towards newer entries, returning "" once past the newest.
func (h *shellHistory) Next() (string, bool) {
	if h.idx >= len(h.lines)-1 {
		h.idx = len(h.lines)
		return "", false
	}
	h.idx++
	return h.lines[h.idx], true
}

// Lines returns a copy of the recorded entries, oldest first.
func (h *shellHistory) Lines() []string {
	return append([]string(nil), h.lines...)
}
