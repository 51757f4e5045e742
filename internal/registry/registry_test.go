package registry

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tui-tunnel/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                         { return g.id }
func (g stubGame) Title() string                      { return "Stub " + g.id }
func (stubGame) Reset(core.RuntimeConfig)             {}
func (stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (stubGame) Render(*core.Screen)                  {}
func (stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Game { return stubGame{id: "zz-stub"} })
	Register("aa-stub", func() Game { return stubGame{id: "aa-stub"} })

	if !Exists("zz-stub") {
		t.Fatal("Expected zz-stub to exist")
	}

	g, err := Create("aa-stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "aa-stub" {
		t.Errorf("Created %q, want aa-stub", g.ID())
	}

	ids := IDs()
	if !slices.IsSorted(ids) {
		t.Errorf("IDs not sorted: %v", ids)
	}
	for _, info := range List() {
		if info.ID == "aa-stub" && info.Title != "Stub aa-stub" {
			t.Errorf("Unexpected title %q", info.Title)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Expected an error for an unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Game { return stubGame{id: "dup-stub"} })

	defer func() {
		if recover() == nil {
			t.Error("Expected a panic on duplicate registration")
		}
	}()
	Register("dup-stub", func() Game { return stubGame{id: "dup-stub"} })
}
