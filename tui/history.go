// Package tui provides a Bubble Tea terminal UI for the frontier world
// explorer.
package tui

// History keeps recent explorer commands for Up/Down recall. A cursor of
// -1 means the player is typing fresh input rather than browsing.
type History struct {
	entries []string
	max     int
	cursor  int
}

// NewHistory creates a history buffer holding at most max commands.
func NewHistory(max int) *History {
	return &History{
		entries: make([]string, 0, max),
		max:     max,
		cursor:  -1,
	}
}

// Push records a command. Repeating the previous command adds nothing, so
// hammering "journal" doesn't fill the buffer. The oldest entry is dropped
// once the buffer is full.
func (h *History) Push(cmd string) {
	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == cmd {
		return
	}
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.max {
		h.entries = h.entries[1:]
	}
}

// Prev steps back toward older commands, sticking at the oldest.
// Returns ("", false) only when nothing has been recorded.
func (h *History) Prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.cursor == -1 {
		h.cursor = len(h.entries) - 1
	} else if h.cursor > 0 {
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next steps forward toward newer commands. Stepping past the newest
// returns ("", false) and leaves the buffer in the fresh-input state.
func (h *History) Next() (string, bool) {
	if h.cursor == -1 {
		return "", false
	}
	h.cursor++
	if h.cursor >= len(h.entries) {
		h.cursor = -1
		return "", false
	}
	return h.entries[h.cursor], true
}

// ResetCursor returns to fresh input, so the next Prev starts from the
// most recent command.
func (h *History) ResetCursor() {
	h.cursor = -1
}
