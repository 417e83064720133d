package core

import "strings"

// Action is a semantic input, abstracted from physical key presses.
type Action uint8

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionPause:   "Pause",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the set of actions active during one simulation tick.
// The zero value is an empty frame; frames are plain values and copy freely.
type InputFrame struct {
	bits uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as active for this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && a < actionCount && f.bits&(1<<a) != 0
}

// Empty reports whether no action is active.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Clone returns a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	return f
}

// String lists the active actions, e.g. "Up+Left".
func (f InputFrame) String() string {
	var names []string
	for a := ActionUp; a < actionCount; a++ {
		if f.Has(a) {
			names = append(names, a.String())
		}
	}
	if len(names) == 0 {
		return ActionNone.String()
	}
	return strings.Join(names, "+")
}
