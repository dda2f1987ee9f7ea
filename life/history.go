package life

// HistoryCapacity is the number of past generations kept for stepping back.
const HistoryCapacity = 100

// History is a bounded double-ended queue of snapshots, oldest first.
// Pushing onto a full history evicts the oldest entry.
type History struct {
	buf  []Snapshot
	head int // index of the oldest entry
	size int
}

// NewHistory creates an empty history holding at most capacity snapshots.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{buf: make([]Snapshot, capacity)}
}

// Push appends s at the tail. It reports whether the oldest entry was
// evicted to make room.
func (h *History) Push(s Snapshot) bool {
	c := len(h.buf)
	if h.size < c {
		h.buf[(h.head+h.size)%c] = s
		h.size++
		return false
	}
	// Full: overwrite the oldest slot and advance the head.
	h.buf[h.head] = s
	h.head = (h.head + 1) % c
	return true
}

// Pop removes and returns the most recent snapshot. ok is false when the
// history is empty.
func (h *History) Pop() (s Snapshot, ok bool) {
	if h.size == 0 {
		return Snapshot{}, false
	}
	idx := (h.head + h.size - 1) % len(h.buf)
	s = h.buf[idx]
	h.buf[idx] = Snapshot{}
	h.size--
	return s, true
}

// At returns the i-th snapshot counting from the oldest.
func (h *History) At(i int) (Snapshot, bool) {
	if i < 0 || i >= h.size {
		return Snapshot{}, false
	}
	return h.buf[(h.head+i)%len(h.buf)], true
}

// Clear drops every entry.
func (h *History) Clear() {
	for i := range h.buf {
		h.buf[i] = Snapshot{}
	}
	h.head = 0
	h.size = 0
}

// Len returns the number of stored snapshots.
func (h *History) Len() int { return h.size }

// Cap returns the maximum number of stored snapshots.
func (h *History) Cap() int { return len(h.buf) }
