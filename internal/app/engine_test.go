package app_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"go-wave-tick/internal/app"
	"go-wave-tick/internal/component"
	"go-wave-tick/internal/config"
	"go-wave-tick/internal/event"
	"go-wave-tick/internal/platform/memory"
	"go-wave-tick/internal/platform/mocks"
	"go-wave-tick/internal/state"
	"go-wave-tick/internal/types"
	"go-wave-tick/pkg/grid"
)

func pos(r, c int) grid.Position { return grid.Position{Row: r, Col: c} }

func unit(id string, name string, faction component.Faction, p grid.Position, hp int) component.Unit {
	return component.Unit{ID: types.UnitID(id), Name: name, Faction: faction, Position: p, HP: hp}
}

func anchors(entrance, exit grid.Position) []component.Unit {
	return []component.Unit{
		unit("entrance", config.EntranceName, component.FactionNeutral, entrance, 1),
		unit("exit", config.ExitName, component.FactionNeutral, exit, 1),
	}
}

func newWorld(rows, cols int, units ...component.Unit) *memory.World {
	w := memory.NewWorld(grid.NewMap(rows, cols, config.CellSize), config.StepCost)
	for _, u := range units {
		w.Scene.Add(u)
	}
	return w
}

func newEngine(t *testing.T, w *memory.World, settings config.Settings, d *event.Dispatcher) *app.Engine {
	t.Helper()
	e, err := app.NewEngine(w.Platform(), settings, nil, app.WithDispatcher(d))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

// corridor is a 3x5 map with the entrance and exit on the middle row, a Thug above the
// middle and one hostile in its reach.
func corridor(hostileHP int) *memory.World {
	units := append(anchors(pos(1, 0), pos(1, 4)),
		unit("thug", "Thug", component.FactionFriendly, pos(0, 2), 10),
		unit("orc", "Orc", component.FactionHostile, pos(1, 2), hostileHP),
	)
	return newWorld(3, 5, units...)
}

func TestRunTickClearsWave(t *testing.T) {
	w := corridor(10)
	d := event.NewDispatcher()
	var damaged []event.Damage
	d.Subscribe(event.UnitDamaged, event.ListenerFunc(func(ev event.Event) {
		damaged = append(damaged, ev.Data.(event.Damage))
	}))
	var deleted []types.UnitID
	d.Subscribe(event.UnitsDeleted, event.ListenerFunc(func(ev event.Event) {
		deleted = ev.Data.([]types.UnitID)
	}))
	cleared := false
	d.Subscribe(event.WaveCleared, event.ListenerFunc(func(event.Event) { cleared = true }))

	e := newEngine(t, w, config.Instant(), d)
	outcome, err := e.RunTick(t.Context())
	if err != nil {
		t.Fatalf("RunTick: %v", err)
	}
	if outcome != app.OutcomeCleared {
		t.Errorf("outcome = %v, want cleared", outcome)
	}
	if len(damaged) != 1 || damaged[0] != (event.Damage{Unit: "orc", Amount: 12}) {
		t.Errorf("damage events = %+v", damaged)
	}
	if _, ok := w.Scene.Unit("orc"); ok {
		t.Error("dead hostile still in the scene")
	}
	if len(deleted) != 1 || deleted[0] != "orc" {
		t.Errorf("deleted = %v", deleted)
	}
	if !cleared {
		t.Error("no wave cleared event")
	}
	if n := w.Walls.Len(); n != 0 {
		t.Errorf("%d walls left after the tick", n)
	}
	if e.Phase() != state.Idle {
		t.Errorf("phase = %v, want idle", e.Phase())
	}
}

func TestRunTickContinuesWhileHostilesStand(t *testing.T) {
	w := corridor(30)
	e := newEngine(t, w, config.Instant(), nil)

	outcome, err := e.RunTick(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	if outcome != app.OutcomeContinue {
		t.Errorf("outcome = %v, want continue", outcome)
	}
	if u, _ := w.Scene.Unit("orc"); u.HP != 18 {
		t.Errorf("orc hp = %d, want 18", u.HP)
	}
}

func TestRunTickKeepsDeadHostilesWhenAsked(t *testing.T) {
	w := corridor(10)
	settings := config.Instant()
	settings.DeleteDeadHostiles = false
	e := newEngine(t, w, settings, nil)

	outcome, err := e.RunTick(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	if outcome != app.OutcomeCleared {
		t.Errorf("outcome = %v, want cleared", outcome)
	}
	if u, ok := w.Scene.Unit("orc"); !ok || u.HP != -2 {
		t.Errorf("orc = %+v, %v; want kept at -2", u, ok)
	}
}

func TestRunTickWithoutHostiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := newWorld(3, 5, append(anchors(pos(1, 0), pos(1, 4)),
		unit("thug", "Thug", component.FactionFriendly, pos(0, 2), 10))...)
	p := w.Platform()
	// no expectations: nothing may be animated
	p.Animator = mocks.NewMockAnimator(ctrl)

	settings := config.Instant()
	settings.PlayAnimations = true
	e, err := app.NewEngine(p, settings, nil)
	if err != nil {
		t.Fatal(err)
	}

	outcome, err := e.RunTick(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	if outcome != app.OutcomeCleared {
		t.Errorf("outcome = %v, want cleared", outcome)
	}
}

func TestRunTickRejectsTwoExits(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := newWorld(3, 5)
	scene := mocks.NewMockSceneStore(ctrl)
	units := append(anchors(pos(1, 0), pos(1, 4)),
		unit("exit-2", config.ExitName, component.FactionNeutral, pos(2, 4), 1))
	scene.EXPECT().Units(gomock.Any()).Return(units, nil)

	p := w.Platform()
	p.Scene = scene
	e, err := app.NewEngine(p, config.Instant(), nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = e.RunTick(t.Context())
	if !errors.Is(err, app.ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
	var cfg *app.ConfigError
	if !errors.As(err, &cfg) || cfg.Name != config.ExitName || cfg.Count != 2 {
		t.Errorf("config error = %+v", cfg)
	}
	if e.Phase() != state.Idle {
		t.Errorf("phase = %v, want idle", e.Phase())
	}
}

func TestRunTickIgnoresHiddenAnchors(t *testing.T) {
	units := append(anchors(pos(1, 0), pos(1, 4)),
		unit("thug", "Thug", component.FactionFriendly, pos(0, 2), 10),
		unit("orc", "Orc", component.FactionHostile, pos(1, 2), 10),
	)
	hiddenExit := unit("old-exit", config.ExitName, component.FactionNeutral, pos(2, 4), 1)
	hiddenExit.Hidden = true
	w := newWorld(3, 5, append(units, hiddenExit)...)
	e := newEngine(t, w, config.Instant(), nil)

	if _, err := e.RunTick(t.Context()); err != nil {
		t.Fatalf("RunTick: %v", err)
	}
}

func TestRunTickRoutingFailure(t *testing.T) {
	w := newWorld(3, 3, append(anchors(pos(1, 0), pos(1, 2)),
		unit("thug", "Thug", component.FactionFriendly, pos(0, 0), 10),
		unit("orc", "Orc", component.FactionHostile, pos(2, 0), 10),
	)...)
	for r := range 3 {
		w.Map.SetPassable(pos(r, 1), false)
	}
	d := event.NewDispatcher()
	var failed []event.TickResult
	d.Subscribe(event.TickFailed, event.ListenerFunc(func(ev event.Event) {
		failed = append(failed, ev.Data.(event.TickResult))
	}))
	e := newEngine(t, w, config.Instant(), d)

	_, err := e.RunTick(t.Context())
	if !errors.Is(err, app.ErrRoutingFailure) {
		t.Fatalf("err = %v, want ErrRoutingFailure", err)
	}
	if n := w.Walls.Len(); n != 0 {
		t.Errorf("%d walls left after a failed tick", n)
	}
	if u, _ := w.Scene.Unit("orc"); u.HP != 10 {
		t.Errorf("orc hp = %d, want untouched", u.HP)
	}
	if len(failed) != 1 || failed[0].Error == "" {
		t.Errorf("failure events = %+v", failed)
	}
	if e.Phase() != state.Idle {
		t.Errorf("phase = %v, want idle", e.Phase())
	}
}

func TestRunTickIsSingleFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := newWorld(3, 5)
	scene := mocks.NewMockSceneStore(ctrl)
	entered := make(chan struct{})
	release := make(chan struct{})
	scene.EXPECT().Units(gomock.Any()).DoAndReturn(func(context.Context) ([]component.Unit, error) {
		close(entered)
		<-release
		return nil, errors.New("scene offline")
	})

	p := w.Platform()
	p.Scene = scene
	e, err := app.NewEngine(p, config.Instant(), nil)
	if err != nil {
		t.Fatal(err)
	}

	first := make(chan error, 1)
	go func() {
		_, err := e.RunTick(t.Context())
		first <- err
	}()
	<-entered

	if !e.Running() {
		t.Error("Running() = false during a tick")
	}
	outcome, err := e.RunTick(t.Context())
	if err != nil || outcome != app.OutcomeSkipped {
		t.Errorf("second tick = %v, %v; want skipped", outcome, err)
	}

	close(release)
	if err := <-first; err == nil {
		t.Error("first tick should report the scene error")
	}
	if e.Running() {
		t.Error("Running() = true after the tick")
	}
}

func TestRunTickMovesHostiles(t *testing.T) {
	orc := unit("orc", "Orc", component.FactionHostile, pos(1, 1), 10)
	orc.MoveRate = 10
	w := newWorld(3, 7, append(anchors(pos(1, 0), pos(1, 6)), orc)...)
	settings := config.Instant()
	settings.HostileMove = true
	settings.FriendlyAttacks = false
	d := event.NewDispatcher()
	var moves []event.Move
	d.Subscribe(event.HostileMoved, event.ListenerFunc(func(ev event.Event) {
		moves = append(moves, ev.Data.(event.Move))
	}))
	e := newEngine(t, w, settings, d)

	outcome, err := e.RunTick(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	if outcome != app.OutcomeContinue {
		t.Errorf("outcome = %v, want continue", outcome)
	}
	u, _ := w.Scene.Unit("orc")
	if u.Position.Col != 3 {
		t.Errorf("orc at %v, want two steps closer to the exit", u.Position)
	}
	if len(moves) != 1 || moves[0].From != pos(1, 1) || moves[0].To != u.Position {
		t.Errorf("move events = %+v", moves)
	}
}

func TestContinuousWaveRunsUntilCleared(t *testing.T) {
	w := corridor(20)
	d := event.NewDispatcher()
	var completed atomic.Int32
	d.Subscribe(event.TickCompleted, event.ListenerFunc(func(event.Event) { completed.Add(1) }))
	e := newEngine(t, w, config.Instant(), d)

	if !e.ToggleContinuousWave(t.Context()) {
		t.Fatal("wave did not start")
	}
	if err := e.WaitWave(); err != nil {
		t.Fatalf("WaitWave: %v", err)
	}

	if n := completed.Load(); n != 2 {
		t.Errorf("ticks = %d, want 2", n)
	}
	if e.WaveRunning() {
		t.Error("wave still running after clearing")
	}
	if _, ok := w.Scene.Unit("orc"); ok {
		t.Error("dead hostile still in the scene")
	}
}

func TestToggleStopsWave(t *testing.T) {
	w := corridor(20)
	settings := config.Instant()
	settings.DealDamage = false
	settings.WavePause = 10 * time.Millisecond
	d := event.NewDispatcher()
	ticked := make(chan struct{}, 1)
	d.Subscribe(event.TickCompleted, event.ListenerFunc(func(event.Event) {
		select {
		case ticked <- struct{}{}:
		default:
		}
	}))
	e := newEngine(t, w, settings, d)

	if !e.ToggleContinuousWave(t.Context()) {
		t.Fatal("wave did not start")
	}
	<-ticked
	if e.ToggleContinuousWave(t.Context()) {
		t.Fatal("second toggle should stop the wave")
	}
	if err := e.WaitWave(); err != nil {
		t.Errorf("WaitWave after toggling off = %v, want nil", err)
	}

	if e.WaveRunning() {
		t.Error("wave still running")
	}
	if u, _ := w.Scene.Unit("orc"); u.HP != 20 {
		t.Errorf("orc hp = %d, want 20 with damage disabled", u.HP)
	}
}

func TestNewEngineRejectsBadSettings(t *testing.T) {
	w := newWorld(3, 5)
	settings := config.Instant()
	settings.StepCost = 0
	if _, err := app.NewEngine(w.Platform(), settings, nil); err == nil {
		t.Error("expected an error for a zero step cost")
	}

	p := w.Platform()
	p.Pathfinder = nil
	if _, err := app.NewEngine(p, config.Instant(), nil); err == nil {
		t.Error("expected an error for a missing pathfinder")
	}
}

var errPlatformDown = errors.New("platform down")

// brokenScene reads and moves units normally but refuses every damage write.
type brokenScene struct {
	*memory.Scene
}

func (brokenScene) ApplyDamage(context.Context, types.UnitID, int) error {
	return errPlatformDown
}

func TestRunTickPlatformFaultDuringAttack(t *testing.T) {
	w := corridor(30)
	p := w.Platform()
	p.Scene = brokenScene{w.Scene}
	e, err := app.NewEngine(p, config.Instant(), nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = e.RunTick(t.Context())
	if !errors.Is(err, errPlatformDown) {
		t.Fatalf("err = %v, want the platform fault", err)
	}
	if n := w.Walls.Len(); n != 0 {
		t.Errorf("%d walls left after the fault", n)
	}
	if u, _ := w.Scene.Unit("orc"); u.HP != 30 {
		t.Errorf("orc hp = %d, want 30", u.HP)
	}
	if e.Phase() != state.Idle {
		t.Errorf("phase = %v, want idle", e.Phase())
	}
}

func TestContinuousWaveStopsOnFault(t *testing.T) {
	w := corridor(30)
	p := w.Platform()
	p.Scene = brokenScene{w.Scene}
	e, err := app.NewEngine(p, config.Instant(), nil)
	if err != nil {
		t.Fatal(err)
	}

	if !e.ToggleContinuousWave(t.Context()) {
		t.Fatal("wave did not start")
	}
	if err := e.WaitWave(); !errors.Is(err, errPlatformDown) {
		t.Errorf("WaitWave = %v, want the platform fault", err)
	}
	if e.WaveRunning() {
		t.Error("wave still running after a failed tick")
	}
	if n := w.Walls.Len(); n != 0 {
		t.Errorf("%d walls left after the fault", n)
	}
}

func TestContinuousWaveReportsConfigError(t *testing.T) {
	w := newWorld(3, 5, unit("exit", config.ExitName, component.FactionNeutral, pos(1, 4), 1))
	e := newEngine(t, w, config.Instant(), nil)

	e.ToggleContinuousWave(t.Context())
	err := e.WaitWave()
	var cfg *app.ConfigError
	if !errors.As(err, &cfg) || cfg.Name != config.EntranceName || cfg.Count != 0 {
		t.Errorf("WaitWave = %v, want a missing entrance", err)
	}
}

func TestWaitWaveWithoutWave(t *testing.T) {
	e := newEngine(t, newWorld(3, 5), config.Instant(), nil)
	if err := e.WaitWave(); err != nil {
		t.Errorf("WaitWave = %v, want nil", err)
	}
}
