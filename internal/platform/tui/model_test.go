package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodgemaster/internal/core"
	"github.com/vovakirdan/dodgemaster/internal/storage"
)

// scriptedGame ends after a fixed number of ticks and restarts on R.
type scriptedGame struct {
	lastsFor int
	ticks    int
	resets   int
	over     bool
	inputs   []core.InputFrame
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "scripted") }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.ticks = 0
	g.over = false
}

func (g *scriptedGame) State() core.GameState {
	st := core.GameState{Score: g.ticks, HitsAvoided: g.ticks / 2, GameOver: g.over}
	if g.over {
		st.EndReason = "caught by pursuer"
	}
	return st
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	switch {
	case g.over && in.Has(core.ActionRestart):
		g.ticks, g.over = 0, false
	case !g.over:
		g.ticks++
		g.over = g.ticks >= g.lastsFor
	}
	return core.StepResult{State: g.State()}
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg(time.Now()))
	return next.(Model)
}

func press(t *testing.T, m Model, r rune) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return next.(Model)
}

func TestModelRecordsRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{lastsFor: 3}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1}, nil)
	m.Init()

	for range 6 {
		m = tick(t, m)
	}
	if !m.State().GameOver {
		t.Fatal("scripted game did not end")
	}

	scores, _ := store.AllScores("scripted")
	if len(scores) != 1 {
		t.Fatalf("%d runs saved, want 1", len(scores))
	}
	if s := scores[0]; s.Score != 3 || s.HitsAvoided != 1 || s.EndReason != "caught by pursuer" {
		t.Errorf("saved run = %+v", s)
	}

	// Restart and lose again: a second run is recorded.
	m = press(t, m, 'r')
	for range 5 {
		m = tick(t, m)
	}
	if scores, _ := store.AllScores("scripted"); len(scores) != 2 {
		t.Errorf("%d runs saved after second game over, want 2", len(scores))
	}
}

func TestModelHeldMovement(t *testing.T) {
	game := &scriptedGame{lastsFor: 1000}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1}, nil)
	m.Init()

	m = press(t, m, 'd')
	for range DefaultHoldTicks + 2 {
		m = tick(t, m)
	}

	held := 0
	for _, in := range game.inputs {
		if in.Has(core.ActionRight) {
			held++
		}
	}
	if held != DefaultHoldTicks {
		t.Errorf("right held for %d ticks, want %d", held, DefaultHoldTicks)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &scriptedGame{lastsFor: 1000}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1}, nil)
	m.Init()
	m = tick(t, m)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if game.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", game.resets)
	}
	if !strings.Contains(m.View(), "scripted") {
		t.Error("view does not show the game")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&scriptedGame{lastsFor: 10}, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10}, nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if next.(Model).View() != "" {
		t.Error("view not empty after quit")
	}
}
