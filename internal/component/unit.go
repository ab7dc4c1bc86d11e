// internal/component/unit.go
package component

import (
	"go-wave-tick/internal/types"
	"go-wave-tick/pkg/grid"
)

// Faction is the disposition of a unit.
type Faction string

const (
	FactionFriendly Faction = "friendly"
	FactionHostile  Faction = "hostile"
	FactionNeutral  Faction = "neutral"
)

// Unit is a snapshot of a scene unit, read once per tick.
type Unit struct {
	ID       types.UnitID
	Name     string        // archetype name, or an anchor name (Entrance/Exit)
	Faction  Faction
	Position grid.Position // cell the unit occupies
	HP       int
	Hidden   bool // hidden units are inactive and ignored by the tick
	MoveRate int  // feet per turn
}

func (u Unit) IsAlive() bool {
	return u.HP > 0
}

func (u Unit) IsActive() bool {
	return !u.Hidden
}
