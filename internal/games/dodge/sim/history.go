package sim

import "github.com/vovakirdan/dodgemaster/internal/core"

// History is a fixed-capacity ring buffer of recent player centers.
// Once full, each Push evicts the oldest sample.
type History struct {
	buf   []core.Vec2
	start int
	n     int
}

// NewHistory creates an empty history holding at most capacity samples.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{buf: make([]core.Vec2, capacity)}
}

// Push appends a sample.
func (h *History) Push(v core.Vec2) {
	if h.n < len(h.buf) {
		h.buf[(h.start+h.n)%len(h.buf)] = v
		h.n++
		return
	}
	h.buf[h.start] = v
	h.start = (h.start + 1) % len(h.buf)
}

// Len returns the number of stored samples.
func (h *History) Len() int {
	return h.n
}

// Cap returns the buffer capacity.
func (h *History) Cap() int {
	return len(h.buf)
}

// At returns the i-th sample, oldest first.
func (h *History) At(i int) core.Vec2 {
	return h.buf[(h.start+i)%len(h.buf)]
}

// Samples returns a copy of the stored samples, oldest first.
func (h *History) Samples() []core.Vec2 {
	out := make([]core.Vec2, h.n)
	for i := range h.n {
		out[i] = h.At(i)
	}
	return out
}

// Clear drops all samples.
func (h *History) Clear() {
	h.start = 0
	h.n = 0
}
