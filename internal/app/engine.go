// internal/app/engine.go
package app

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"go-wave-tick/internal/component"
	"go-wave-tick/internal/config"
	"go-wave-tick/internal/defs"
	"go-wave-tick/internal/entity"
	"go-wave-tick/internal/event"
	"go-wave-tick/internal/platform"
	"go-wave-tick/internal/state"
	"go-wave-tick/internal/system"
	"go-wave-tick/internal/types"
	"go-wave-tick/pkg/utils"
)

const tracerName = "go-wave-tick/internal/app"

// Outcome is the result of one tick. It is meaningful only when RunTick returns no error.
type Outcome int

const (
	// OutcomeContinue means some hostile still has ground to cover.
	OutcomeContinue Outcome = iota
	// OutcomeCleared means no hostile can make progress toward the exit.
	OutcomeCleared
	// OutcomeSkipped means another tick was already running; nothing happened.
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeCleared:
		return "cleared"
	case OutcomeSkipped:
		return "skipped"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Engine runs ticks against a platform. A single Engine runs at most one tick at a time.
type Engine struct {
	platform   platform.Platform
	settings   config.Settings
	library    *defs.Library
	dispatcher *event.Dispatcher
	tracer     trace.Tracer
	phases     *state.StateMachine
	obstacles  *system.ObstacleManager

	running atomic.Bool
	ticks   atomic.Uint64

	waveMu     sync.Mutex
	waveCancel context.CancelFunc
	wave       *waveRun
}

// Option configures an Engine.
type Option func(*Engine)

// WithDispatcher sets the dispatcher that receives engine events.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(e *Engine) { e.dispatcher = d }
}

// WithTracer replaces the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(e *Engine) { e.tracer = t }
}

// NewEngine validates settings and returns an idle engine. A nil library selects the
// default archetype table.
func NewEngine(p platform.Platform, settings config.Settings, library *defs.Library, opts ...Option) (*Engine, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	if p.Scene == nil || p.Grid == nil || p.Sight == nil || p.Pathfinder == nil || p.Obstacles == nil {
		return nil, errors.New("platform is missing a collaborator")
	}
	if library == nil {
		library = defs.DefaultLibrary()
	}

	e := &Engine{
		platform: p,
		settings: settings,
		library:  library,
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.phases = state.NewStateMachine(func(from, to state.Phase) {
		slog.Debug("phase", "from", from, "to", to)
	})
	e.obstacles = system.NewObstacleManager(p.Obstacles, p.Grid, settings.Obstacles)
	return e, nil
}

// Phase returns the phase of the running tick, or Idle.
func (e *Engine) Phase() state.Phase {
	return e.phases.Current()
}

// Running reports whether a tick is in progress.
func (e *Engine) Running() bool {
	return e.running.Load()
}

// RunTick runs one tick. A call made while another tick runs returns OutcomeSkipped at once.
func (e *Engine) RunTick(ctx context.Context) (Outcome, error) {
	if !e.running.CompareAndSwap(false, true) {
		slog.WarnContext(ctx, "tick already running, skipping")
		return OutcomeSkipped, nil
	}
	defer e.running.Store(false)

	n := e.ticks.Add(1)
	ctx, span := e.tracer.Start(ctx, "tick", trace.WithAttributes(attribute.Int64("tick", int64(n))))
	defer span.End()

	e.phases.Reset()
	e.dispatcher.Dispatch(event.Event{Type: event.TickStarted})

	outcome, err := e.runTick(ctx)
	e.phases.Reset()

	result := event.TickResult{Tick: n, Outcome: outcome.String()}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		result.Error = err.Error()
		slog.WarnContext(ctx, "tick failed", "tick", n, "error", err)
		e.dispatcher.Dispatch(event.Event{Type: event.TickFailed, Data: result})
		return outcome, err
	}

	span.SetAttributes(attribute.String("outcome", outcome.String()))
	slog.InfoContext(ctx, "tick done", "tick", n, "outcome", outcome)
	e.dispatcher.Dispatch(event.Event{Type: event.TickCompleted, Data: result})
	if outcome == OutcomeCleared {
		e.dispatcher.Dispatch(event.Event{Type: event.WaveCleared})
	}
	return outcome, nil
}

func (e *Engine) runTick(ctx context.Context) (Outcome, error) {
	e.enter(ctx, state.Initializing)
	units, err := e.platform.Scene.Units(ctx)
	if err != nil {
		e.enter(ctx, state.Evaluated)
		return OutcomeContinue, fmt.Errorf("read units: %w", err)
	}
	tick, hostiles, err := e.newTick(units)
	if err != nil {
		e.enter(ctx, state.Evaluated)
		return OutcomeContinue, err
	}

	planner := system.NewPlanner(e.platform.Pathfinder, e.settings.StepCost)

	e.enter(ctx, state.ObstaclesUp)
	if err := e.withObstacles(ctx, tick.Friendlies, func(ctx context.Context) error {
		return e.route(ctx, tick, planner, hostiles)
	}); err != nil {
		e.enter(ctx, state.Evaluated)
		return OutcomeContinue, err
	}

	e.enter(ctx, state.Evaluated)
	return e.evaluate(ctx, planner, tick.Exit)
}

// enter moves the phase machine. The pipeline only takes allowed steps, so a refused
// transition is logged rather than returned.
func (e *Engine) enter(ctx context.Context, p state.Phase) {
	if err := e.phases.Transition(p); err != nil {
		slog.WarnContext(ctx, "phase change refused", "error", err)
	}
}

// newTick validates the anchors and prepares the tick context from a unit snapshot.
// It also returns the active hostiles.
func (e *Engine) newTick(units []component.Unit) (*entity.TickContext, []component.Unit, error) {
	var active []component.Unit
	for _, u := range units {
		if u.IsActive() {
			active = append(active, u)
		}
	}

	exit, err := single(active, config.ExitName)
	if err != nil {
		return nil, nil, err
	}
	entrance, err := single(active, config.EntranceName)
	if err != nil {
		return nil, nil, err
	}

	tick := entity.NewTickContext()
	tick.Entrance = entrance
	tick.Exit = exit
	tick.Active = active

	origin := e.platform.Grid.Pixels(entrance.Position)
	var friendlies, hostiles []component.Unit
	for _, u := range active {
		switch {
		case u.Faction == component.FactionFriendly && u.IsAlive():
			friendlies = append(friendlies, u)
		case u.Faction == component.FactionHostile:
			hostiles = append(hostiles, u)
		}
	}
	slices.SortStableFunc(friendlies, func(a, b component.Unit) int {
		pa := e.platform.Grid.Pixels(a.Position)
		pb := e.platform.Grid.Pixels(b.Position)
		return cmp.Compare(
			utils.DistanceSq(pa[0], pa[1], origin[0], origin[1]),
			utils.DistanceSq(pb[0], pb[1], origin[0], origin[1]),
		)
	})
	tick.SetFriendlies(friendlies)
	return tick, hostiles, nil
}

func single(units []component.Unit, name string) (component.Unit, error) {
	var found []component.Unit
	for _, u := range units {
		if u.Name == name {
			found = append(found, u)
		}
	}
	if len(found) != 1 {
		return component.Unit{}, &ConfigError{Name: name, Count: len(found)}
	}
	return found[0], nil
}

// withObstacles erects the friendly walls, runs fn and always tears the walls down.
func (e *Engine) withObstacles(ctx context.Context, friendlies []component.Unit, fn func(ctx context.Context) error) (err error) {
	defer func() {
		e.enter(ctx, state.ObstaclesDown)
		tctx, span := e.tracer.Start(ctx, "obstacles.teardown")
		defer span.End()
		if terr := e.obstacles.Teardown(tctx); terr != nil {
			span.RecordError(terr)
			err = errors.Join(err, terr)
		}
	}()

	bctx, span := e.tracer.Start(ctx, "obstacles.build", trace.WithAttributes(attribute.Int("friendlies", len(friendlies))))
	err = e.obstacles.EraseAndBuild(bctx, friendlies)
	span.End()
	if err != nil {
		return err
	}
	return fn(ctx)
}

// route computes the happy path, then runs the optional hostile move and the attack phase.
func (e *Engine) route(ctx context.Context, tick *entity.TickContext, planner *system.Planner, hostiles []component.Unit) error {
	e.enter(ctx, state.Routing)
	rctx, span := e.tracer.Start(ctx, "routing")
	happy, err := planner.ComputeHappyPath(rctx, tick.Entrance.Position, tick.Exit.Position)
	span.End()
	if errors.Is(err, system.ErrNoHappyPath) {
		e.enter(ctx, state.RoutingFailed)
		return fmt.Errorf("%w: %v -> %v", ErrRoutingFailure, tick.Entrance.Position, tick.Exit.Position)
	}
	if err != nil {
		return err
	}
	slog.DebugContext(ctx, "happy path", "steps", happy.Steps(), "cost", happy.Cost)

	e.enter(ctx, state.AttackPhase)
	damage := system.NewDamageSerializer(e.platform.Scene, e.dispatcher, e.settings.DealDamage)
	ranges := system.NewRangeQuery(e.platform.Grid, e.platform.Sight)
	combat := system.NewCombat(tick, ranges, planner, damage, e.platform, e.dispatcher, e.settings)

	if e.settings.HostileMove {
		mctx, span := e.tracer.Start(ctx, "hostiles.move")
		err := e.moveHostiles(mctx, tick, planner, combat, hostiles)
		span.End()
		if err != nil {
			return err
		}
		// positions changed; plan the attack against a fresh snapshot
		if hostiles, err = e.activeHostiles(ctx); err != nil {
			return err
		}
	}

	if !e.settings.FriendlyAttacks {
		return nil
	}
	actx, span := e.tracer.Start(ctx, "attack")
	defer span.End()
	plan, err := system.PlanHostiles(actx, tick, planner, hostiles, tick.Exit.Position)
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.Int("hostiles", len(plan)))
	if len(plan) == 0 {
		return nil
	}
	return combat.RunAttackPhase(actx, e.library)
}

func (e *Engine) moveHostiles(ctx context.Context, tick *entity.TickContext, planner *system.Planner, combat *system.Combat, hostiles []component.Unit) error {
	plan, err := system.PlanHostiles(ctx, tick, planner, hostiles, tick.Exit.Position)
	if err != nil {
		return err
	}
	if len(plan) == 0 {
		return nil
	}
	return combat.MoveHostiles(ctx, plan)
}

func (e *Engine) activeHostiles(ctx context.Context) ([]component.Unit, error) {
	units, err := e.platform.Scene.Units(ctx)
	if err != nil {
		return nil, fmt.Errorf("read units: %w", err)
	}
	var hostiles []component.Unit
	for _, u := range units {
		if u.IsActive() && u.Faction == component.FactionHostile {
			hostiles = append(hostiles, u)
		}
	}
	return hostiles, nil
}

// evaluate re-reads the scene after the walls are down and decides whether the wave goes on.
func (e *Engine) evaluate(ctx context.Context, planner *system.Planner, exit component.Unit) (Outcome, error) {
	ctx, span := e.tracer.Start(ctx, "evaluate")
	defer span.End()

	hostiles, err := e.activeHostiles(ctx)
	if err != nil {
		return OutcomeContinue, err
	}
	plan, err := system.PlanHostiles(ctx, entity.NewTickContext(), planner, hostiles, exit.Position)
	if err != nil {
		return OutcomeContinue, err
	}
	if len(plan) > 0 {
		return OutcomeContinue, nil
	}

	if e.settings.DeleteDeadHostiles {
		if err := e.deleteDead(ctx, hostiles); err != nil {
			return OutcomeCleared, err
		}
	}
	return OutcomeCleared, nil
}

func (e *Engine) deleteDead(ctx context.Context, hostiles []component.Unit) error {
	var dead []types.UnitID
	for _, u := range hostiles {
		if !u.IsAlive() {
			dead = append(dead, u.ID)
		}
	}
	if len(dead) == 0 {
		return nil
	}
	if err := e.platform.Scene.DeleteUnits(ctx, dead); err != nil {
		return fmt.Errorf("delete %d dead hostiles: %w", len(dead), err)
	}
	slog.InfoContext(ctx, "dead hostiles removed", "count", len(dead))
	e.dispatcher.Dispatch(event.Event{Type: event.UnitsDeleted, Data: dead})
	return nil
}
