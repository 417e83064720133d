package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodgemaster/internal/registry"
	"github.com/vovakirdan/dodgemaster/internal/storage"
)

func init() {
	registry.Register("scripted", func() registry.Game { return &scriptedGame{} })
}

func TestScoreboardShowsRunsAndStats(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()
	store.SaveRun(storage.Run{GameID: "scripted", Score: 120, HitsAvoided: 7, EndReason: "hit by projectile"})
	store.SaveRun(storage.Run{GameID: "scripted", Score: 80, HitsAvoided: 3})

	m := NewScoreboardModel(store, 100, 30)
	view := m.View()
	for _, want := range []string{"HIGH SCORES - Scripted", "Games: 2", "Best: 120", "Total dodged: 10", "hit by projectile"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != viewRecent || !strings.Contains(m.View(), "RECENT RUNS") {
		t.Error("tab did not switch to recent runs")
	}
	if len(m.scores) != 2 || m.scores[0].Score != 80 {
		t.Errorf("recent order = %+v", m.scores)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "unavailable") {
		t.Errorf("missing-store message not shown:\n%s", m.View())
	}
}
