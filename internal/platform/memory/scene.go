// Package memory implements the platform collaborators in process, for the CLI and tests.
package memory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"go-wave-tick/internal/component"
	"go-wave-tick/internal/types"
	"go-wave-tick/pkg/grid"
)

var (
	// ErrUnknownUnit is returned for an operation on a unit the scene does not hold.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrUnknownObstacle is returned when deleting an obstacle that does not exist.
	ErrUnknownObstacle = errors.New("unknown obstacle")
)

// Scene is an in-memory unit store. Units keep their insertion order.
type Scene struct {
	mu    sync.RWMutex
	units map[types.UnitID]component.Unit
	order []types.UnitID
}

func NewScene(units ...component.Unit) *Scene {
	s := &Scene{units: make(map[types.UnitID]component.Unit)}
	for _, u := range units {
		s.Add(u)
	}
	return s
}

// Add stores u, assigning a fresh ID when it has none, and returns its ID.
func (s *Scene) Add(u component.Unit) types.UnitID {
	if u.ID == "" {
		u.ID = types.UnitID(uuid.NewString())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.units[u.ID]; !ok {
		s.order = append(s.order, u.ID)
	}
	s.units[u.ID] = u
	return u.ID
}

// Unit returns the stored unit with id.
func (s *Scene) Unit(id types.UnitID) (component.Unit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.units[id]
	return u, ok
}

func (s *Scene) Units(ctx context.Context) ([]component.Unit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]component.Unit, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.units[id])
	}
	return out, nil
}

func (s *Scene) ApplyDamage(ctx context.Context, id types.UnitID, amount int) error {
	return s.update(ctx, id, func(u *component.Unit) {
		u.HP -= amount
	})
}

func (s *Scene) MoveUnit(ctx context.Context, id types.UnitID, pos grid.Position) error {
	return s.update(ctx, id, func(u *component.Unit) {
		u.Position = pos
	})
}

func (s *Scene) update(ctx context.Context, id types.UnitID, fn func(u *component.Unit)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.units[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownUnit, id)
	}
	fn(&u)
	s.units[id] = u
	return nil
}

// DeleteUnits removes the units. Unknown IDs are ignored.
func (s *Scene) DeleteUnits(ctx context.Context, ids []types.UnitID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		delete(s.units, id)
	}
	s.order = slices.DeleteFunc(s.order, func(id types.UnitID) bool {
		_, ok := s.units[id]
		return !ok
	})
	return nil
}
