// internal/event/types.go
package event

import (
	"go-wave-tick/internal/types"
	"go-wave-tick/pkg/grid"
)

const (
	TickStarted   EventType = "TickStarted"
	TickCompleted EventType = "TickCompleted" // Data: TickResult
	TickFailed    EventType = "TickFailed"    // Data: TickResult
	UnitDamaged   EventType = "UnitDamaged"   // Data: Damage
	HostilePushed EventType = "HostilePushed" // Data: Move
	HostileMoved  EventType = "HostileMoved"  // Data: Move
	WaveCleared   EventType = "WaveCleared"
	UnitsDeleted  EventType = "UnitsDeleted" // Data: []types.UnitID
)

// Damage is a committed hit-point change.
type Damage struct {
	Unit   types.UnitID `json:"unit"`
	Amount int          `json:"amount"`
}

// Move is a position change made by the engine.
type Move struct {
	Unit types.UnitID  `json:"unit"`
	From grid.Position `json:"from"`
	To   grid.Position `json:"to"`
}

// TickResult summarizes a finished tick.
type TickResult struct {
	Tick    uint64 `json:"tick"`
	Outcome string `json:"outcome"`
	Error   string `json:"error,omitempty"`
}
