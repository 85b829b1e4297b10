package state

// DefaultHistoryLimit is the number of snapshots kept when no limit is given.
const DefaultHistoryLimit = 50

// History is a bounded linear undo/redo list of buffer snapshots. The index
// always points at the snapshot matching the live buffer.
type History struct {
	snapshots [][]byte
	index     int
	limit     int
}

// NewHistory starts a history holding only initial. A limit below 2 falls back
// to DefaultHistoryLimit.
func NewHistory(initial []byte, limit int) *History {
	if limit < 2 {
		limit = DefaultHistoryLimit
	}
	h := &History{limit: limit}
	h.Reset(initial)
	return h
}

// Reset drops every snapshot and keeps initial at index 0.
func (h *History) Reset(initial []byte) {
	h.snapshots = [][]byte{clone(initial)}
	h.index = 0
}

// Push records snap after the current position, discarding any redo tail.
// When the limit is exceeded the oldest snapshot is dropped.
func (h *History) Push(snap []byte) {
	h.snapshots = append(h.snapshots[:h.index+1], clone(snap))
	if len(h.snapshots) > h.limit {
		drop := len(h.snapshots) - h.limit
		h.snapshots = append([][]byte(nil), h.snapshots[drop:]...)
	}
	h.index = len(h.snapshots) - 1
}

// Undo steps back one snapshot. It returns false at index 0.
func (h *History) Undo() ([]byte, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	h.index--
	return h.snapshots[h.index], true
}

// Redo steps forward one snapshot. It returns false at the last index.
func (h *History) Redo() ([]byte, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	h.index++
	return h.snapshots[h.index], true
}

func (h *History) CanUndo() bool { return h.index > 0 }
func (h *History) CanRedo() bool { return h.index < len(h.snapshots)-1 }
func (h *History) Index() int    { return h.index }
func (h *History) Len() int      { return len(h.snapshots) }
func (h *History) Limit() int    { return h.limit }

// Current returns the snapshot at the current index. Callers must not modify it.
func (h *History) Current() []byte {
	return h.snapshots[h.index]
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}
