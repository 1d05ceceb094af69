package registry

import (
	"testing"

	"github.com/vovakirdan/pillow-tower/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub " + g.id }
func (stubGame) Reset(core.RuntimeConfig) {}
func (stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (stubGame) Render(*core.Screen) {}
func (stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub-b", func() Game { return stubGame{"zz-stub-b"} })
	Register("zz-stub-a", func() Game { return stubGame{"zz-stub-a"} })

	if !Exists("zz-stub-a") {
		t.Fatal("registered mode should exist")
	}

	g, err := Create("zz-stub-b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz-stub-b" {
		t.Errorf("expected zz-stub-b, got %s", g.ID())
	}

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	if len(ids) < 2 || ids[len(ids)-2] != "zz-stub-a" || ids[len(ids)-1] != "zz-stub-b" {
		t.Errorf("expected sorted list ending in stubs, got %v", ids)
	}
	if list[len(list)-1].Title != "Stub zz-stub-b" {
		t.Errorf("unexpected title %q", list[len(list)-1].Title)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-mode"); err == nil {
		t.Error("expected an error for an unknown mode")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return stubGame{"zz-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("expected a panic on duplicate registration")
		}
	}()
	Register("zz-dup", func() Game { return stubGame{"zz-dup"} })
}
