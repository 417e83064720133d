package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodgemaster/internal/core"
)

// DefaultHoldTicks is how long a movement key counts as held after its
// last press or auto-repeat. Terminals never report key releases, so a held
// key is inferred from the repeat stream; the window has to bridge the gap
// between repeats without making the player drift after letting go.
const DefaultHoldTicks = 6

// KeyMapper translates Bubble Tea key messages to game actions and keeps
// track of which movement keys are currently held.
type KeyMapper struct {
	holdTicks int
	held      map[core.Action]int
	pulse     map[core.Action]bool
}

// NewKeyMapper creates a key mapper. holdTicks <= 0 uses DefaultHoldTicks.
func NewKeyMapper(holdTicks int) *KeyMapper {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyMapper{
		holdTicks: holdTicks,
		held:      make(map[core.Action]int),
		pulse:     make(map[core.Action]bool),
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// Press records a key message. Movement keys are held for the hold window
// and cancel the opposite direction; other actions fire on the next frame
// only. Returns true if the key was a quit request.
func (km *KeyMapper) Press(msg tea.KeyMsg) bool {
	action, isQuit := km.MapKey(msg)
	if isQuit {
		return true
	}
	switch action {
	case core.ActionNone:
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		delete(km.held, opposite(action))
		km.held[action] = km.holdTicks
	default:
		km.pulse[action] = true
	}
	return false
}

// Frame returns the input for the next tick and ages the held keys.
func (km *KeyMapper) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a, left := range km.held {
		frame.Set(a)
		if left <= 1 {
			delete(km.held, a)
		} else {
			km.held[a] = left - 1
		}
	}
	for a := range km.pulse {
		frame.Set(a)
		delete(km.pulse, a)
	}
	return frame
}

// Release forgets every held key, e.g. when the game pauses or ends.
func (km *KeyMapper) Release() {
	clear(km.held)
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}
