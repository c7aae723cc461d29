package registry

import (
	"testing"

	"github.com/vovakirdan/flowgrid/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Description() string { return "a stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })

	if !Exists("zz-stub") {
		t.Fatal("Exists(zz-stub) = false after Register")
	}
	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "zz-stub" {
		t.Errorf("Create().ID() = %q, want zz-stub", g.ID())
	}

	var found *GameInfo
	list := List()
	for i := range list {
		if list[i].ID == "zz-stub" {
			found = &list[i]
		}
		if i > 0 && list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
	if found == nil || found.Title != "Stub zz-stub" || found.Description != "a stub" {
		t.Errorf("List() entry = %+v, want title and description", found)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("second Register did not panic")
		}
	}()
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create(unknown) succeeded, want error")
	}
}
