package memory

import (
	"context"

	"go-wave-tick/pkg/grid"
)

// Pathfinder runs A* over a grid map. A step is refused when a movement-blocking wall
// crosses the segment between the two cell centers.
type Pathfinder struct {
	grid     *grid.Map
	walls    *Walls
	stepCost int
}

func NewPathfinder(m *grid.Map, walls *Walls, stepCost int) *Pathfinder {
	return &Pathfinder{grid: m, walls: walls, stepCost: stepCost}
}

func (p *Pathfinder) FindPath(ctx context.Context, start, goal grid.Position) (*grid.Path, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	canStep := func(from, to grid.Position) bool {
		if p.walls == nil {
			return true
		}
		return !p.walls.MovementBlocked(p.grid.Center(from), p.grid.Center(to))
	}
	return grid.AStar(start, goal, p.grid, canStep, p.stepCost), nil
}
