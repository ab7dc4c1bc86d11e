package component

import "go-wave-tick/pkg/grid"

// UnitInfo is the tick-scoped working record of a unit.
type UnitInfo struct {
	Unit       Unit
	HP         int        // running total; includes damage issued but not yet committed
	Path       *grid.Path // planned path to the exit, hostiles only
	DamageBuff bool
}

// HasPath reports whether the unit has a valid planned path.
func (i UnitInfo) HasPath() bool {
	return i.Path != nil
}

// PathCost returns the planned path cost, or 0 when there is none.
func (i UnitInfo) PathCost() int {
	if i.Path == nil {
		return 0
	}
	return i.Path.Cost
}
