// internal/system/planner.go
package system

import (
	"context"
	"errors"
	"fmt"

	"go-wave-tick/internal/platform"
	"go-wave-tick/pkg/grid"
)

// ErrNoHappyPath is returned when the entrance cannot reach the exit.
var ErrNoHappyPath = errors.New("no path from entrance to exit")

// Planner caches the entrance-to-exit path of a tick and serves hostile paths from it.
type Planner struct {
	pathfinder platform.Pathfinder
	stepCost   int

	happy *grid.Path
	index map[grid.Position]int
}

func NewPlanner(pf platform.Pathfinder, stepCost int) *Planner {
	return &Planner{pathfinder: pf, stepCost: stepCost}
}

// ComputeHappyPath queries the entrance-to-exit path once and indexes its cells.
func (p *Planner) ComputeHappyPath(ctx context.Context, entrance, exit grid.Position) (*grid.Path, error) {
	p.happy = nil
	p.index = nil

	path, err := p.pathfinder.FindPath(ctx, entrance, exit)
	if err != nil {
		return nil, fmt.Errorf("happy path %v -> %v: %w", entrance, exit, err)
	}
	if path == nil || len(path.Cells) == 0 {
		return nil, ErrNoHappyPath
	}

	p.happy = path
	p.index = make(map[grid.Position]int, len(path.Cells))
	for i, c := range path.Cells {
		// a path never revisits a cell; keep the first offset anyway
		if _, ok := p.index[c]; !ok {
			p.index[c] = i
		}
	}
	return path, nil
}

// HappyPath returns the cached path, or nil before ComputeHappyPath succeeded.
func (p *Planner) HappyPath() *grid.Path {
	return p.happy
}

// PlannedPath returns the path from one cell to goal. A start on the happy path toward
// its goal reuses the cached suffix; anything else is a fresh query.
func (p *Planner) PlannedPath(ctx context.Context, from, goal grid.Position) (*grid.Path, error) {
	if p.happy != nil && goal == p.happy.Goal() {
		if i, ok := p.index[from]; ok {
			return p.happy.Suffix(i, p.stepCost), nil
		}
	}
	return p.PathBetween(ctx, from, goal)
}

// PathBetween is an uncached pathfinder query. A nil path means unreachable.
func (p *Planner) PathBetween(ctx context.Context, from, to grid.Position) (*grid.Path, error) {
	path, err := p.pathfinder.FindPath(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("path %v -> %v: %w", from, to, err)
	}
	if path == nil || len(path.Cells) == 0 {
		return nil, nil
	}
	return path, nil
}
