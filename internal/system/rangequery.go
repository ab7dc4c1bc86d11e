// internal/system/rangequery.go
package system

import (
	"go-wave-tick/internal/entity"
	"go-wave-tick/internal/platform"
	"go-wave-tick/internal/types"
	"go-wave-tick/pkg/grid"
)

// RangeOptions tune a range query.
type RangeOptions struct {
	IncludeOrigin bool
	MinRange      int  // cells closer than this many hops are excluded
	IgnoreSight   bool // skip the line-of-sight test
	OnePerCell    bool // units query: keep only the healthiest occupant per cell
}

// RangeQuery finds the cells and units reachable from a cell within a number of hops.
type RangeQuery struct {
	grid  platform.Grid
	sight platform.Sight
}

func NewRangeQuery(g platform.Grid, sight platform.Sight) *RangeQuery {
	return &RangeQuery{grid: g, sight: sight}
}

type queued struct {
	pos  grid.Position
	hops int
}

// CellsWithinRange walks the grid breadth-first from origin up to rng hops.
// A neighbor whose center is not visible from origin's center is neither reported nor
// expanded, unless IgnoreSight is set.
func (q *RangeQuery) CellsWithinRange(origin grid.Position, rng int, opts RangeOptions) []grid.Position {
	result := []grid.Position{}
	if opts.IncludeOrigin {
		result = append(result, origin)
	}

	visited := map[grid.Position]bool{origin: true}
	queue := []queued{{pos: origin, hops: 0}}
	from := q.grid.Center(origin)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.hops >= rng {
			continue
		}
		for _, n := range q.grid.Neighbors(cur.pos) {
			if visited[n] {
				continue
			}
			visited[n] = true

			if !opts.IgnoreSight && q.sight.Blocked(from, q.grid.Center(n)) {
				continue
			}
			if cur.hops+1 >= opts.MinRange {
				result = append(result, n)
			}
			queue = append(queue, queued{pos: n, hops: cur.hops + 1})
		}
	}
	return result
}

// UnitsWithinRange returns the units of index standing on cells within range, in cell
// order. hp supplies current hit points for the OnePerCell tie-break.
func (q *RangeQuery) UnitsWithinRange(index entity.UnitIndex, origin grid.Position, rng int, opts RangeOptions, hp func(types.UnitID) int) []types.UnitID {
	var out []types.UnitID
	for _, cell := range q.CellsWithinRange(origin, rng, opts) {
		inCell := index[cell]
		if len(inCell) == 0 {
			continue
		}
		if !opts.OnePerCell {
			out = append(out, inCell...)
			continue
		}
		best := inCell[0]
		for _, id := range inCell[1:] {
			if hp(id) > hp(best) {
				best = id
			}
		}
		out = append(out, best)
	}
	return out
}
