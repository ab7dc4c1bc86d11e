package system_test

import (
	"testing"

	"go-wave-tick/internal/component"
	"go-wave-tick/internal/config"
	"go-wave-tick/internal/entity"
	"go-wave-tick/internal/event"
	"go-wave-tick/internal/platform/memory"
	"go-wave-tick/internal/system"
	"go-wave-tick/internal/types"
	"go-wave-tick/pkg/grid"
)

func pos(r, c int) grid.Position { return grid.Position{Row: r, Col: c} }

func unit(id string, name string, faction component.Faction, p grid.Position, hp int) component.Unit {
	return component.Unit{ID: types.UnitID(id), Name: name, Faction: faction, Position: p, HP: hp}
}

// fixture is a memory world plus a tick prepared the way the engine prepares it.
type fixture struct {
	world      *memory.World
	tick       *entity.TickContext
	planner    *system.Planner
	combat     *system.Combat
	damage     *system.DamageSerializer
	dispatcher *event.Dispatcher
	damaged    chan event.Damage
}

func newFixture(t *testing.T, rows, cols int, entrance, exit grid.Position, units ...component.Unit) *fixture {
	t.Helper()
	settings := config.Instant()
	world := memory.NewWorld(grid.NewMap(rows, cols, config.CellSize), settings.StepCost)

	tick := entity.NewTickContext()
	tick.Entrance = unit("entrance", config.EntranceName, component.FactionNeutral, entrance, 1)
	tick.Exit = unit("exit", config.ExitName, component.FactionNeutral, exit, 1)
	world.Scene.Add(tick.Entrance)
	world.Scene.Add(tick.Exit)

	var friendlies, hostiles []component.Unit
	for _, u := range units {
		world.Scene.Add(u)
		switch u.Faction {
		case component.FactionFriendly:
			friendlies = append(friendlies, u)
		case component.FactionHostile:
			hostiles = append(hostiles, u)
		}
	}
	tick.SetFriendlies(friendlies)

	f := &fixture{
		world:      world,
		tick:       tick,
		dispatcher: event.NewDispatcher(),
		damaged:    make(chan event.Damage, 64),
	}
	f.dispatcher.Subscribe(event.UnitDamaged, event.ListenerFunc(func(ev event.Event) {
		f.damaged <- ev.Data.(event.Damage)
	}))

	p := world.Platform()
	f.planner = system.NewPlanner(p.Pathfinder, settings.StepCost)
	if _, err := f.planner.ComputeHappyPath(t.Context(), entrance, exit); err != nil {
		t.Fatalf("ComputeHappyPath: %v", err)
	}
	if _, err := system.PlanHostiles(t.Context(), tick, f.planner, hostiles, exit); err != nil {
		t.Fatalf("PlanHostiles: %v", err)
	}
	f.damage = system.NewDamageSerializer(p.Scene, f.dispatcher, true)
	ranges := system.NewRangeQuery(p.Grid, p.Sight)
	f.combat = system.NewCombat(tick, ranges, f.planner, f.damage, p, f.dispatcher, settings)
	return f
}

func (f *fixture) hp(t *testing.T, id string) int {
	t.Helper()
	u, ok := f.world.Scene.Unit(types.UnitID(id))
	if !ok {
		t.Fatalf("unit %s not in scene", id)
	}
	return u.HP
}
