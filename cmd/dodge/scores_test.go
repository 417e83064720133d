package main

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/dodgemaster/internal/storage"
)

func TestSelectScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	for i := 1; i <= 12; i++ {
		if _, err := store.SaveScore(gameID, i*100, i); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}

	tests := []struct {
		name      string
		all       bool
		recent    bool
		limit     int
		wantTitle string
		wantLen   int
		wantFirst int
	}{
		{name: "best", limit: 10, wantTitle: "High Scores", wantLen: 10, wantFirst: 1200},
		{name: "recent", recent: true, limit: 3, wantTitle: "Recent Runs", wantLen: 3, wantFirst: 1200},
		{name: "all ignores limit", all: true, limit: 3, wantTitle: "All Runs", wantLen: 12, wantFirst: 1200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagScoresAll = tt.all
			flagScoresRecent = tt.recent
			flagScoresLimit = tt.limit
			defer func() { flagScoresAll, flagScoresRecent, flagScoresLimit = false, false, 10 }()

			title, scores, err := selectScores(store)
			if err != nil {
				t.Fatalf("selectScores: %v", err)
			}
			if title != tt.wantTitle {
				t.Errorf("title = %q, want %q", title, tt.wantTitle)
			}
			if len(scores) != tt.wantLen {
				t.Fatalf("%d scores, want %d", len(scores), tt.wantLen)
			}
			if scores[0].Score != tt.wantFirst {
				t.Errorf("first score = %d, want %d", scores[0].Score, tt.wantFirst)
			}
		})
	}
}
