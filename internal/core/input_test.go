package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() || f.String() != "None" {
		t.Fatalf("zero frame = %q", f)
	}

	f.Set(ActionUp)
	f.Set(ActionLeft)
	f.Set(ActionNone)
	if !f.Has(ActionUp) || !f.Has(ActionLeft) || f.Has(ActionDown) || f.Has(ActionNone) {
		t.Errorf("frame = %s", f)
	}
	if f.String() != "Up+Left" {
		t.Errorf("String = %q", f.String())
	}

	c := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear left actions set")
	}
	if !c.Has(ActionUp) {
		t.Error("clone shares state with the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionRight, "Right"},
		{ActionRestart, "Restart"},
		{Action(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}
