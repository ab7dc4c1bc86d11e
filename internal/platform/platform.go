package platform

import (
	"context"
	"time"

	"golang.org/x/image/math/f64"

	"go-wave-tick/internal/component"
	"go-wave-tick/internal/types"
	"go-wave-tick/pkg/grid"
)

//go:generate go tool mockgen -destination=./mocks/platform_mock.go -package=mocks . SceneStore,Grid,Sight,Pathfinder,ObstacleStore,Animator

// SceneStore is the sole mutator of persistent unit state.
type SceneStore interface {
	// Units returns a snapshot of every unit in the scene, hidden ones included.
	Units(ctx context.Context) ([]component.Unit, error)
	// ApplyDamage subtracts amount from the unit's hit points.
	ApplyDamage(ctx context.Context, id types.UnitID, amount int) error
	// MoveUnit places the unit on pos.
	MoveUnit(ctx context.Context, id types.UnitID, pos grid.Position) error
	// DeleteUnits removes the units from the scene.
	DeleteUnits(ctx context.Context, ids []types.UnitID) error
}

// Grid converts between pixels and cells and describes cell geometry.
type Grid interface {
	PositionFromPixels(pt f64.Vec2) grid.Position
	Pixels(p grid.Position) f64.Vec2
	Center(p grid.Position) f64.Vec2
	Neighbors(p grid.Position) []grid.Position
	BorderPolygon(p grid.Position) []f64.Vec2
}

// Sight tests straight segments against sight-blocking geometry.
type Sight interface {
	Blocked(from, to f64.Vec2) bool
}

// Pathfinder computes shortest paths. A nil path with a nil error means unreachable.
type Pathfinder interface {
	FindPath(ctx context.Context, start, goal grid.Position) (*grid.Path, error)
}

// Obstacle is one temporary wall segment.
type Obstacle struct {
	A, B           f64.Vec2
	BlocksMovement bool
	BlocksSight    bool
}

// ObstacleStore creates and deletes temporary blocking geometry.
type ObstacleStore interface {
	CreateObstacles(ctx context.Context, obstacles []Obstacle) ([]types.ObstacleID, error)
	DeleteObstacles(ctx context.Context, ids []types.ObstacleID) error
}

// Effect describes a cosmetic animation.
type Effect struct {
	Animation string
	Source    types.UnitID
	From      f64.Vec2
	To        f64.Vec2
	Radius    int           // area effects, in cells
	Duration  time.Duration // nominal length of the effect
}

// Animator plays cosmetic effects. Play returns when the effect has finished.
type Animator interface {
	Play(ctx context.Context, effect Effect) error
}

// Platform bundles every collaborator the engine consumes.
type Platform struct {
	Scene      SceneStore
	Grid       Grid
	Sight      Sight
	Pathfinder Pathfinder
	Obstacles  ObstacleStore
	Animator   Animator
}
