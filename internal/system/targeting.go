// internal/system/targeting.go
package system

import (
	"cmp"
	"slices"

	"go-wave-tick/internal/component"
	"go-wave-tick/pkg/grid"
)

// SortCostFirst orders hostiles by remaining path cost, then by hit points, highest first.
// Equal records keep their order.
func SortCostFirst(infos []component.UnitInfo) {
	slices.SortStableFunc(infos, func(a, b component.UnitInfo) int {
		if c := cmp.Compare(a.PathCost(), b.PathCost()); c != 0 {
			return c
		}
		return cmp.Compare(b.HP, a.HP)
	})
}

// SortHPFirst orders hostiles by hit points, highest first, then by remaining path cost.
func SortHPFirst(infos []component.UnitInfo) {
	slices.SortStableFunc(infos, func(a, b component.UnitInfo) int {
		if c := cmp.Compare(b.HP, a.HP); c != 0 {
			return c
		}
		return cmp.Compare(a.PathCost(), b.PathCost())
	})
}

// eligible keeps hostiles that have a planned path and are still standing.
func eligible(infos []component.UnitInfo) []component.UnitInfo {
	out := infos[:0]
	for _, info := range infos {
		if info.HasPath() && info.HP > 0 {
			out = append(out, info)
		}
	}
	return out
}

// hostilesInRange returns the eligible hostiles within range of origin, unsorted.
func (c *Combat) hostilesInRange(origin grid.Position, rng int, opts RangeOptions) []component.UnitInfo {
	ids := c.ranges.UnitsWithinRange(c.tick.HostileIndex(), origin, rng, opts, c.tick.HP)
	return eligible(c.tick.Infos(ids))
}

// blastTarget is one candidate centre for an area attack.
type blastTarget struct {
	cell    grid.Position
	victims []component.UnitInfo
	score   int // hit points the blast would remove
	cost    int // summed path cost of the victims
}

// bestBlast scores every reachable cell as a blast centre and returns the one removing the
// most hit points, preferring victims closer to the exit on ties. ok is false when no cell
// would hurt anyone.
func (c *Combat) bestBlast(origin grid.Position, rng, minRange, radius, damage int, ignoreSight bool) (blastTarget, bool) {
	cells := c.ranges.CellsWithinRange(origin, rng, RangeOptions{MinRange: minRange, IgnoreSight: ignoreSight})

	var best blastTarget
	found := false
	for _, cell := range cells {
		victims := c.hostilesInRange(cell, radius, RangeOptions{IncludeOrigin: true})
		t := blastTarget{cell: cell, victims: victims}
		for _, v := range victims {
			t.score += min(max(0, v.HP), damage)
			t.cost += v.PathCost()
		}
		if t.score <= 0 {
			continue
		}
		if !found || t.score > best.score || (t.score == best.score && t.cost < best.cost) {
			best = t
			found = true
		}
	}
	return best, found
}
