// Package registry maps game IDs to factories. Games register themselves in
// init(), so the CLI and the SSH server can start a game by name without
// importing its package directly.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/dodgemaster/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is what the terminal platform drives. Implementations hold pure
// game logic with no Bubble Tea imports; the platform owns timing, key
// mapping and terminal output.
type Game interface {
	// ID is the stable identifier used on the command line and in the
	// score table.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a new session. The RuntimeConfig carries the tick rate
	// and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the actions held this tick
	// (movement, pause, restart).
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst. Games clear dst themselves.
	Render(dst *core.Screen)

	// State reports score, dodges, pause and game-over status.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory to the registry.
// Panics on an empty or duplicate ID, since both are programming errors
// caught at startup.
func Register(id string, f Factory) {
	if id == "" || f == nil {
		panic("registry: Register needs an ID and a factory")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
