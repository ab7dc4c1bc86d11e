package memory

import (
	"context"
	"errors"
	"testing"

	"go-wave-tick/internal/component"
	"go-wave-tick/internal/types"
	"go-wave-tick/pkg/grid"
)

func TestSceneKeepsInsertionOrder(t *testing.T) {
	s := NewScene(
		component.Unit{ID: "b", Name: "Orc"},
		component.Unit{ID: "a", Name: "Thug"},
	)
	id := s.Add(component.Unit{Name: "Wolf"})
	if id == "" {
		t.Fatal("Add did not assign an id")
	}

	units, err := s.Units(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	got := []types.UnitID{units[0].ID, units[1].ID, units[2].ID}
	if got[0] != "b" || got[1] != "a" || got[2] != id {
		t.Errorf("order = %v", got)
	}
}

func TestSceneMutations(t *testing.T) {
	s := NewScene(component.Unit{ID: "orc", HP: 20})
	ctx := t.Context()

	if err := s.ApplyDamage(ctx, "orc", 25); err != nil {
		t.Fatal(err)
	}
	if err := s.MoveUnit(ctx, "orc", grid.Position{Row: 2, Col: 3}); err != nil {
		t.Fatal(err)
	}
	u, _ := s.Unit("orc")
	if u.HP != -5 || u.Position != (grid.Position{Row: 2, Col: 3}) {
		t.Errorf("unit = %+v", u)
	}

	if err := s.ApplyDamage(ctx, "ghost", 1); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("err = %v, want ErrUnknownUnit", err)
	}
	if err := s.DeleteUnits(ctx, []types.UnitID{"orc", "ghost"}); err != nil {
		t.Fatal(err)
	}
	if units, _ := s.Units(ctx); len(units) != 0 {
		t.Errorf("units left: %v", units)
	}
}

func TestSceneHonoursCancellation(t *testing.T) {
	s := NewScene(component.Unit{ID: "orc", HP: 20})
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if err := s.ApplyDamage(ctx, "orc", 5); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if u, _ := s.Unit("orc"); u.HP != 20 {
		t.Errorf("hp = %d, want 20", u.HP)
	}
}
