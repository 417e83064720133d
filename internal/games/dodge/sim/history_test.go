package sim

import (
	"testing"

	"github.com/vovakirdan/dodgemaster/internal/core"
)

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory(3)
	for i := range 5 {
		h.Push(core.V(float64(i), 0))
	}

	if h.Len() != 3 {
		t.Fatalf("Len = %d, want 3", h.Len())
	}
	got := h.Samples()
	for i, want := range []float64{2, 3, 4} {
		if got[i].X != want {
			t.Errorf("sample %d = %v, want x=%g", i, got[i], want)
		}
	}
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory(20)
	h.Push(core.V(1, 1))
	h.Push(core.V(2, 2))
	h.Clear()

	if h.Len() != 0 || len(h.Samples()) != 0 {
		t.Errorf("history not empty after Clear: %v", h.Samples())
	}
	h.Push(core.V(9, 9))
	if h.At(0) != core.V(9, 9) {
		t.Errorf("At(0) = %v after Clear and Push", h.At(0))
	}
}

func TestHistorySamplesIsCopy(t *testing.T) {
	h := NewHistory(2)
	h.Push(core.V(1, 1))
	s := h.Samples()
	s[0] = core.V(100, 100)

	if h.At(0) != core.V(1, 1) {
		t.Error("mutating Samples result changed the history")
	}
}
