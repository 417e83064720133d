package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodgemaster/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{"w", runeKey('w'), core.ActionUp, false},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	km := NewKeyMapper(0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.isQuit {
				t.Errorf("MapKey = (%v, %v), want (%v, %v)", got, quit, tt.want, tt.isQuit)
			}
		})
	}
}

func TestHeldKeyWindow(t *testing.T) {
	km := NewKeyMapper(3)
	km.Press(runeKey('d'))

	for i := range 3 {
		if f := km.Frame(); !f.Has(core.ActionRight) {
			t.Fatalf("frame %d: right not held", i)
		}
	}
	if f := km.Frame(); f.Has(core.ActionRight) {
		t.Error("right still held after the window")
	}
}

func TestRepeatExtendsHold(t *testing.T) {
	km := NewKeyMapper(2)
	km.Press(runeKey('w'))
	km.Frame()
	km.Press(runeKey('w'))
	km.Frame()
	if f := km.Frame(); !f.Has(core.ActionUp) {
		t.Error("auto-repeat did not extend the hold")
	}
}

func TestOppositeDirectionCancels(t *testing.T) {
	km := NewKeyMapper(0)
	km.Press(runeKey('a'))
	km.Press(runeKey('d'))
	km.Press(runeKey('w'))

	f := km.Frame()
	if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) || !f.Has(core.ActionUp) {
		t.Errorf("frame = %s", f)
	}
}

func TestPulseActionsFireOnce(t *testing.T) {
	km := NewKeyMapper(0)
	if km.Press(runeKey('p')) {
		t.Fatal("pause reported as quit")
	}
	if f := km.Frame(); !f.Has(core.ActionPause) {
		t.Fatal("pause not delivered")
	}
	if f := km.Frame(); f.Has(core.ActionPause) {
		t.Error("pause delivered twice")
	}
}

func TestRelease(t *testing.T) {
	km := NewKeyMapper(0)
	km.Press(runeKey('s'))
	km.Release()
	if f := km.Frame(); f.Has(core.ActionDown) {
		t.Error("released key still held")
	}
}

func TestPressQuit(t *testing.T) {
	km := NewKeyMapper(0)
	if !km.Press(runeKey('q')) {
		t.Error("q not reported as quit")
	}
}
