package memory

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/image/math/f64"

	"go-wave-tick/internal/component"
	"go-wave-tick/internal/config"
	"go-wave-tick/internal/platform"
	"go-wave-tick/internal/types"
	"go-wave-tick/pkg/grid"
)

// Cell is a [row, col] pair in scenario files.
type Cell [2]int

func (c Cell) Position() grid.Position {
	return grid.Position{Row: c[0], Col: c[1]}
}

// WallSpec is a static wall in pixel coordinates.
type WallSpec struct {
	From           [2]float64 `yaml:"from"`
	To             [2]float64 `yaml:"to"`
	BlocksMovement bool       `yaml:"blocks_movement"`
	BlocksSight    bool       `yaml:"blocks_sight"`
}

// UnitSpec is one unit of a scenario file.
type UnitSpec struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Faction  component.Faction `yaml:"faction"`
	Cell     Cell              `yaml:"cell"`
	HP       int               `yaml:"hp"`
	Hidden   bool              `yaml:"hidden"`
	MoveRate int               `yaml:"move_rate"`
}

// Scenario describes a map and the units on it.
type Scenario struct {
	Rows     int        `yaml:"rows"`
	Cols     int        `yaml:"cols"`
	CellSize float64    `yaml:"cell_size"`
	Blocked  []Cell     `yaml:"blocked"`
	Walls    []WallSpec `yaml:"walls"`
	Units    []UnitSpec `yaml:"units"`
}

// LoadScenario reads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	var s Scenario
	if err := config.LoadYAML(path, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks map bounds and unit placement.
func (s *Scenario) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("map size %dx%d must be positive", s.Rows, s.Cols)
	}
	if s.CellSize < 0 {
		return errors.New("cell_size must not be negative")
	}
	inside := func(c Cell) bool {
		return c[0] >= 0 && c[0] < s.Rows && c[1] >= 0 && c[1] < s.Cols
	}
	for _, c := range s.Blocked {
		if !inside(c) {
			return fmt.Errorf("blocked cell %v is off the map", c)
		}
	}
	for _, u := range s.Units {
		if u.Name == "" {
			return errors.New("unit without a name")
		}
		if !inside(u.Cell) {
			return fmt.Errorf("unit %q at %v is off the map", u.Name, u.Cell)
		}
		switch u.Faction {
		case component.FactionFriendly, component.FactionHostile, component.FactionNeutral:
		case "":
		default:
			return fmt.Errorf("unit %q has unknown faction %q", u.Name, u.Faction)
		}
	}
	return nil
}

// World is a scenario brought to life: every platform collaborator backed by memory.
type World struct {
	Map        *grid.Map
	Scene      *Scene
	Walls      *Walls
	Pathfinder *Pathfinder
	Animator   *Animator
}

// NewWorld returns an empty world over m.
func NewWorld(m *grid.Map, stepCost int) *World {
	walls := NewWalls()
	return &World{
		Map:        m,
		Scene:      NewScene(),
		Walls:      walls,
		Pathfinder: NewPathfinder(m, walls, stepCost),
		Animator:   NewAnimator(nil),
	}
}

// Build creates the world described by the scenario.
func (s *Scenario) Build(stepCost int) (*World, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	size := s.CellSize
	if size == 0 {
		size = config.CellSize
	}
	w := NewWorld(grid.NewMap(s.Rows, s.Cols, size), stepCost)
	for _, c := range s.Blocked {
		w.Map.SetPassable(c.Position(), false)
	}

	static := make([]platform.Obstacle, 0, len(s.Walls))
	for _, ws := range s.Walls {
		static = append(static, platform.Obstacle{
			A:              f64.Vec2{ws.From[0], ws.From[1]},
			B:              f64.Vec2{ws.To[0], ws.To[1]},
			BlocksMovement: ws.BlocksMovement,
			BlocksSight:    ws.BlocksSight,
		})
	}
	if _, err := w.Walls.CreateObstacles(context.Background(), static); err != nil {
		return nil, fmt.Errorf("static walls: %w", err)
	}

	for _, us := range s.Units {
		faction := us.Faction
		if faction == "" {
			faction = component.FactionNeutral
		}
		w.Scene.Add(component.Unit{
			ID:       types.UnitID(us.ID),
			Name:     us.Name,
			Faction:  faction,
			Position: us.Cell.Position(),
			HP:       us.HP,
			Hidden:   us.Hidden,
			MoveRate: us.MoveRate,
		})
	}
	return w, nil
}

// Platform exposes the world as engine collaborators.
func (w *World) Platform() platform.Platform {
	return platform.Platform{
		Scene:      w.Scene,
		Grid:       w.Map,
		Sight:      w.Walls,
		Pathfinder: w.Pathfinder,
		Obstacles:  w.Walls,
		Animator:   w.Animator,
	}
}
