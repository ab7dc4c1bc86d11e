// internal/entity/tick.go
package entity

import (
	"sync"

	"go-wave-tick/internal/component"
	"go-wave-tick/internal/types"
	"go-wave-tick/pkg/grid"
)

// UnitIndex maps an occupied cell to the units standing on it, in insertion order.
type UnitIndex map[grid.Position][]types.UnitID

// Add appends id to the units on pos.
func (idx UnitIndex) Add(pos grid.Position, id types.UnitID) {
	idx[pos] = append(idx[pos], id)
}

// TickContext holds the working records of one tick. Records are created lazily on first
// reference and dropped with the context at tick end.
type TickContext struct {
	mu    sync.Mutex
	infos map[types.UnitID]component.UnitInfo

	Entrance   component.Unit
	Exit       component.Unit
	Active     []component.Unit // every non-hidden unit at tick start
	Friendlies []component.Unit // live friendlies, nearest to the entrance first

	friendlyIndex UnitIndex
	hostileIndex  UnitIndex
}

func NewTickContext() *TickContext {
	return &TickContext{
		infos:         make(map[types.UnitID]component.UnitInfo),
		friendlyIndex: make(UnitIndex),
		hostileIndex:  make(UnitIndex),
	}
}

// Track returns the record for u, creating it from the snapshot when missing.
func (t *TickContext) Track(u component.Unit) component.UnitInfo {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.trackLocked(u)
}

func (t *TickContext) trackLocked(u component.Unit) component.UnitInfo {
	info, ok := t.infos[u.ID]
	if !ok {
		info = component.UnitInfo{Unit: u, HP: u.HP}
		t.infos[u.ID] = info
	}
	return info
}

// Refresh replaces the snapshot and running hit points of u, keeping its path and buff.
func (t *TickContext) Refresh(u component.Unit) {
	t.mu.Lock()
	defer t.mu.Unlock()
	info := t.trackLocked(u)
	info.Unit = u
	info.HP = u.HP
	t.infos[u.ID] = info
}

// Info returns a copy of the record for id.
func (t *TickContext) Info(id types.UnitID) (component.UnitInfo, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	info, ok := t.infos[id]
	return info, ok
}

// Infos returns copies of the records for ids, skipping unknown ones.
func (t *TickContext) Infos(ids []types.UnitID) []component.UnitInfo {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]component.UnitInfo, 0, len(ids))
	for _, id := range ids {
		if info, ok := t.infos[id]; ok {
			out = append(out, info)
		}
	}
	return out
}

// HP returns the running hit points of id, or 0 for an unknown unit.
func (t *TickContext) HP(id types.UnitID) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.infos[id].HP
}

// Update applies fn to the record for id. It is a no-op for unknown units.
func (t *TickContext) Update(id types.UnitID, fn func(info *component.UnitInfo)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	info, ok := t.infos[id]
	if !ok {
		return
	}
	fn(&info)
	t.infos[id] = info
}

// IssueDamage lowers the running hit points of id and returns the new total.
func (t *TickContext) IssueDamage(id types.UnitID, amount int) int {
	var hp int
	t.Update(id, func(info *component.UnitInfo) {
		info.HP -= amount
		hp = info.HP
	})
	return hp
}

// SetPath assigns a planned path, tracking u if needed.
func (t *TickContext) SetPath(u component.Unit, path *grid.Path) {
	t.mu.Lock()
	defer t.mu.Unlock()
	info := t.trackLocked(u)
	info.Path = path
	t.infos[u.ID] = info
}

// Buff marks the unit with a damage buff.
func (t *TickContext) Buff(u component.Unit) {
	t.mu.Lock()
	defer t.mu.Unlock()
	info := t.trackLocked(u)
	info.DamageBuff = true
	t.infos[u.ID] = info
}

// SetFriendlies records the live friendlies and indexes them by cell.
func (t *TickContext) SetFriendlies(units []component.Unit) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Friendlies = units
	t.friendlyIndex = make(UnitIndex, len(units))
	for _, u := range units {
		t.trackLocked(u)
		t.friendlyIndex.Add(u.Position, u.ID)
	}
}

// SetHostiles indexes planned hostiles by the first cell of their path.
func (t *TickContext) SetHostiles(units []component.Unit) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hostileIndex = make(UnitIndex, len(units))
	for _, u := range units {
		info, ok := t.infos[u.ID]
		if !ok || info.Path == nil || len(info.Path.Cells) == 0 {
			continue
		}
		t.hostileIndex.Add(info.Path.Start(), u.ID)
	}
}

func (t *TickContext) FriendlyIndex() UnitIndex {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.friendlyIndex
}

func (t *TickContext) HostileIndex() UnitIndex {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hostileIndex
}
