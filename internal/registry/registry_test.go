package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/dodgemaster/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen) {}
func (g stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return stubGame{"stub-b"} })
	Register("stub-a", func() Game { return stubGame{"stub-a"} })

	if !Exists("stub-a") || Exists("stub-missing") {
		t.Error("Exists reports the wrong set of games")
	}

	g, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub-b" {
		t.Errorf("created %q", g.ID())
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "stub-a" && info.Title != "Stub stub-a" {
			t.Errorf("title = %q", info.Title)
		}
	}
	if len(ids) < 2 || ids[0] > ids[1] {
		t.Errorf("List not sorted: %v", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("err = %v, want ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return stubGame{"stub-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration did not panic")
		}
	}()
	Register("stub-dup", func() Game { return stubGame{"stub-dup"} })
}
