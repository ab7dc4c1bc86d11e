package system_test

import (
	"context"
	"testing"

	"golang.org/x/image/math/f64"
	"pgregory.net/rapid"

	"go-wave-tick/internal/entity"
	"go-wave-tick/internal/platform"
	"go-wave-tick/internal/platform/memory"
	"go-wave-tick/internal/system"
	"go-wave-tick/internal/types"
	"go-wave-tick/pkg/grid"
)

func TestCellsWithinRangeZeroIncludesOnlyOrigin(t *testing.T) {
	q := system.NewRangeQuery(grid.NewMap(5, 5, 100), memory.NewWalls())

	got := q.CellsWithinRange(pos(2, 2), 0, system.RangeOptions{IncludeOrigin: true})
	if len(got) != 1 || got[0] != pos(2, 2) {
		t.Errorf("got %v, want only the origin", got)
	}
	if got := q.CellsWithinRange(pos(2, 2), 0, system.RangeOptions{}); len(got) != 0 {
		t.Errorf("got %v, want nothing", got)
	}
}

func TestCellsWithinRangeRings(t *testing.T) {
	q := system.NewRangeQuery(grid.NewMap(7, 7, 100), memory.NewWalls())

	if got := q.CellsWithinRange(pos(3, 3), 1, system.RangeOptions{}); len(got) != 8 {
		t.Errorf("range 1 found %d cells, want 8", len(got))
	}
	if got := q.CellsWithinRange(pos(3, 3), 2, system.RangeOptions{}); len(got) != 24 {
		t.Errorf("range 2 found %d cells, want 24", len(got))
	}

	ring := q.CellsWithinRange(pos(3, 3), 2, system.RangeOptions{MinRange: 2})
	if len(ring) != 16 {
		t.Fatalf("min range 2 found %d cells, want 16", len(ring))
	}
	for _, c := range ring {
		if c.Distance(pos(3, 3)) != 2 {
			t.Errorf("cell %v is not on the outer ring", c)
		}
	}
}

func TestCellsWithinRangeBFSOrder(t *testing.T) {
	q := system.NewRangeQuery(grid.NewMap(5, 5, 100), memory.NewWalls())

	got := q.CellsWithinRange(pos(2, 2), 2, system.RangeOptions{})
	for i := 0; i < 8; i++ {
		if got[i].Distance(pos(2, 2)) != 1 {
			t.Fatalf("cell %d (%v) reported before the first ring was done", i, got[i])
		}
	}
	if got[0] != pos(1, 2) {
		t.Errorf("first cell = %v, want the northern neighbor", got[0])
	}
}

func TestCellsWithinRangeStopsAtSightBlockers(t *testing.T) {
	walls := memory.NewWalls()
	// vertical wall between column 1 and 2 over the whole map
	if _, err := walls.CreateObstacles(t.Context(), []platform.Obstacle{
		{A: f64.Vec2{200, 0}, B: f64.Vec2{200, 500}, BlocksSight: true},
	}); err != nil {
		t.Fatal(err)
	}
	q := system.NewRangeQuery(grid.NewMap(5, 5, 100), walls)

	for _, c := range q.CellsWithinRange(pos(2, 0), 4, system.RangeOptions{}) {
		if c.Col >= 2 {
			t.Errorf("cell %v is behind the wall", c)
		}
	}
	if got := q.CellsWithinRange(pos(2, 0), 4, system.RangeOptions{IgnoreSight: true}); len(got) != 24 {
		t.Errorf("ignoring sight found %d cells, want 24", len(got))
	}
}

func TestUnitsWithinRangeOnePerCell(t *testing.T) {
	q := system.NewRangeQuery(grid.NewMap(3, 3, 100), memory.NewWalls())
	index := entity.UnitIndex{}
	index.Add(pos(0, 1), "weak")
	index.Add(pos(0, 1), "strong")
	index.Add(pos(0, 1), "also-strong")
	index.Add(pos(2, 2), "far")
	hp := map[types.UnitID]int{"weak": 3, "strong": 9, "also-strong": 9, "far": 1}
	lookup := func(id types.UnitID) int { return hp[id] }

	all := q.UnitsWithinRange(index, pos(1, 1), 1, system.RangeOptions{}, lookup)
	if len(all) != 4 {
		t.Errorf("found %v, want all four units", all)
	}

	one := q.UnitsWithinRange(index, pos(1, 1), 1, system.RangeOptions{OnePerCell: true}, lookup)
	if len(one) != 2 || one[0] != "strong" || one[1] != "far" {
		t.Errorf("found %v, want [strong far]", one)
	}
}

// Sight checks only ever remove cells.
func TestSightOnlyShrinksRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows := rapid.IntRange(1, 8).Draw(t, "rows")
		cols := rapid.IntRange(1, 8).Draw(t, "cols")
		m := grid.NewMap(rows, cols, 100)
		origin := grid.Position{
			Row: rapid.IntRange(0, rows-1).Draw(t, "row"),
			Col: rapid.IntRange(0, cols-1).Draw(t, "col"),
		}
		rng := rapid.IntRange(0, 5).Draw(t, "range")

		walls := memory.NewWalls()
		n := rapid.IntRange(0, 4).Draw(t, "walls")
		var obstacles []platform.Obstacle
		for i := 0; i < n; i++ {
			coord := rapid.Float64Range(0, 800)
			obstacles = append(obstacles, platform.Obstacle{
				A:           f64.Vec2{coord.Draw(t, "ax"), coord.Draw(t, "ay")},
				B:           f64.Vec2{coord.Draw(t, "bx"), coord.Draw(t, "by")},
				BlocksSight: true,
			})
		}
		if _, err := walls.CreateObstacles(context.Background(), obstacles); err != nil {
			t.Fatal(err)
		}

		q := system.NewRangeQuery(m, walls)
		blind := q.CellsWithinRange(origin, rng, system.RangeOptions{IgnoreSight: true})
		seen := q.CellsWithinRange(origin, rng, system.RangeOptions{})

		all := make(map[grid.Position]bool, len(blind))
		for _, c := range blind {
			all[c] = true
		}
		for _, c := range seen {
			if !all[c] {
				t.Fatalf("cell %v found with sight but not without", c)
			}
			if c.Distance(origin) > rng {
				t.Fatalf("cell %v is beyond range %d", c, rng)
			}
		}
		if len(seen) > len(blind) {
			t.Fatalf("sight found %d cells, more than %d", len(seen), len(blind))
		}
	})
}
