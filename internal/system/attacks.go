// internal/system/attacks.go
package system

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"go-wave-tick/internal/component"
	"go-wave-tick/internal/config"
	"go-wave-tick/internal/defs"
	"go-wave-tick/internal/entity"
	"go-wave-tick/internal/event"
	"go-wave-tick/internal/platform"
	"go-wave-tick/internal/types"
	"go-wave-tick/pkg/utils"
)

// Combat selects and plays friendly attacks for one tick.
type Combat struct {
	tick       *entity.TickContext
	ranges     *RangeQuery
	planner    *Planner
	damage     *DamageSerializer
	platform   platform.Platform
	dispatcher *event.Dispatcher
	settings   config.Settings
}

func NewCombat(
	tick *entity.TickContext,
	ranges *RangeQuery,
	planner *Planner,
	damage *DamageSerializer,
	p platform.Platform,
	dispatcher *event.Dispatcher,
	settings config.Settings,
) *Combat {
	return &Combat{
		tick:       tick,
		ranges:     ranges,
		planner:    planner,
		damage:     damage,
		platform:   p,
		dispatcher: dispatcher,
		settings:   settings,
	}
}

// gate is closed when an effect reaches the point where its damage lands.
type gate struct {
	ch   chan struct{}
	once sync.Once
}

func newGate() *gate { return &gate{ch: make(chan struct{})} }

func (g *gate) open() { g.once.Do(func() { close(g.ch) }) }

// AttackTask is a selected attack. Targets and running hit points were settled when the
// task was created; Run only plays effects and commits the queued damage.
type AttackTask struct {
	Actor component.Unit
	Name  string
	run   func(ctx context.Context) error
	gates []*gate
}

// Run plays the attack. Damage gates still closed when it returns are opened, so queued
// damage always commits.
func (t *AttackTask) Run(ctx context.Context) error {
	defer t.Release()
	return t.run(ctx)
}

// Release opens every damage gate of a task that will not be run.
func (t *AttackTask) Release() {
	for _, g := range t.gates {
		g.open()
	}
}

// Attack selects targets for actor according to d and returns the task that plays the
// attack, or nil when there is nothing to attack.
func (c *Combat) Attack(ctx context.Context, actor component.Unit, d defs.AttackDescriptor) *AttackTask {
	switch d.Behavior {
	case defs.BehaviorBuff:
		return c.buff(actor, d)
	case defs.BehaviorStrike:
		return c.strike(ctx, actor, d)
	case defs.BehaviorDuel:
		return c.duel(ctx, actor, d)
	case defs.BehaviorArea:
		return c.area(ctx, actor, d)
	case defs.BehaviorHybrid:
		return c.hybrid(ctx, actor, d)
	}
	slog.WarnContext(ctx, "unknown behavior", "archetype", d.Name, "behavior", d.Behavior)
	return nil
}

// BuffedDamage returns base raised by the buff bonus when actor carries a damage buff.
func (c *Combat) BuffedDamage(actor types.UnitID, base int) int {
	info, ok := c.tick.Info(actor)
	if !ok || !info.DamageBuff {
		return base
	}
	return base + min(c.settings.BuffDamageCap, base)
}

func (c *Combat) buff(actor component.Unit, d defs.AttackDescriptor) *AttackTask {
	opts := RangeOptions{IgnoreSight: d.IgnoreSight}
	ids := c.ranges.UnitsWithinRange(c.tick.FriendlyIndex(), actor.Position, d.Range, opts, c.tick.HP)
	for _, info := range c.tick.Infos(ids) {
		if info.Unit.ID == actor.ID {
			continue
		}
		c.tick.Buff(info.Unit)
	}

	effect := platform.Effect{
		Animation: d.Animation,
		Source:    actor.ID,
		From:      c.platform.Grid.Center(actor.Position),
		To:        c.platform.Grid.Center(actor.Position),
		Radius:    d.Range,
	}
	return &AttackTask{
		Actor: actor,
		Name:  d.Name,
		run: func(ctx context.Context) error {
			c.play(ctx, effect)
			return nil
		},
	}
}

func (c *Combat) strike(ctx context.Context, actor component.Unit, d defs.AttackDescriptor) *AttackTask {
	infos := c.hostilesInRange(actor.Position, d.Range, RangeOptions{
		MinRange:    d.MinRange,
		IgnoreSight: d.IgnoreSight,
		OnePerCell:  d.OnePerCell,
	})
	if len(infos) == 0 {
		return nil
	}
	SortCostFirst(infos)
	return c.hitTargets(ctx, actor, d, infos[:min(d.TargetCount(), len(infos))])
}

func (c *Combat) duel(ctx context.Context, actor component.Unit, d defs.AttackDescriptor) *AttackTask {
	infos := c.hostilesInRange(actor.Position, d.Range, RangeOptions{
		MinRange:    d.MinRange,
		IgnoreSight: d.IgnoreSight,
	})
	if len(infos) == 0 {
		return nil
	}
	SortHPFirst(infos)
	return c.hitTargets(ctx, actor, d, infos[:1])
}

// hybrid fights in melee when two hostiles are adjacent, or when one is and the ranged
// variant would not find two targets. Otherwise it uses the ranged variant.
func (c *Combat) hybrid(ctx context.Context, actor component.Unit, d defs.AttackDescriptor) *AttackTask {
	melee := d
	melee.Behavior = defs.BehaviorStrike
	melee.Ranged = nil
	if d.Ranged == nil {
		return c.strike(ctx, actor, melee)
	}
	ranged := *d.Ranged

	near := c.hostilesInRange(actor.Position, melee.Range, RangeOptions{IgnoreSight: melee.IgnoreSight})
	far := c.hostilesInRange(actor.Position, ranged.Range, RangeOptions{
		MinRange:    ranged.MinRange,
		IgnoreSight: ranged.IgnoreSight,
		OnePerCell:  ranged.OnePerCell,
	})
	if len(near) >= 2 || (len(far) < 2 && len(near) > 0) {
		return c.strike(ctx, actor, melee)
	}
	return c.strike(ctx, actor, ranged)
}

func (c *Combat) area(ctx context.Context, actor component.Unit, d defs.AttackDescriptor) *AttackTask {
	damage := c.BuffedDamage(actor.ID, d.Damage)
	radius := max(d.BlastRadius, 1)
	target, ok := c.bestBlast(actor.Position, d.Range, d.MinRange, radius, damage, d.IgnoreSight)
	if !ok {
		return nil
	}

	hit := newGate()
	pending := make([]*Pending, 0, len(target.victims))
	for _, v := range target.victims {
		c.tick.IssueDamage(v.Unit.ID, damage)
		pending = append(pending, c.damage.Enqueue(ctx, v.Unit.ID, damage, hit.ch))
	}
	slog.DebugContext(ctx, "area attack", "actor", actor.ID, "cell", target.cell, "victims", len(target.victims), "damage", damage)

	effect := platform.Effect{
		Animation: d.Animation,
		Source:    actor.ID,
		From:      c.platform.Grid.Center(actor.Position),
		To:        c.platform.Grid.Center(target.cell),
		Radius:    radius,
	}
	return &AttackTask{
		Actor: actor,
		Name:  d.Name,
		gates: []*gate{hit},
		run: func(ctx context.Context) error {
			c.play(ctx, effect)
			hit.open()
			var errs []error
			for _, p := range pending {
				errs = append(errs, p.Wait(ctx))
			}
			return errors.Join(errs...)
		},
	}
}

// hitTargets settles damage against each target now and returns the task that plays one
// effect per target, spaced by the archetype's target pause.
func (c *Combat) hitTargets(ctx context.Context, actor component.Unit, d defs.AttackDescriptor, targets []component.UnitInfo) *AttackTask {
	damage := c.BuffedDamage(actor.ID, d.Damage)

	type hit struct {
		target  component.Unit
		gate    *gate
		pending *Pending
	}
	hits := make([]hit, 0, len(targets))
	gates := make([]*gate, 0, len(targets))
	for _, t := range targets {
		g := newGate()
		c.tick.IssueDamage(t.Unit.ID, damage)
		hits = append(hits, hit{
			target:  t.Unit,
			gate:    g,
			pending: c.damage.Enqueue(ctx, t.Unit.ID, damage, g.ch),
		})
		gates = append(gates, g)
		slog.DebugContext(ctx, "attack", "actor", actor.ID, "archetype", d.Name, "target", t.Unit.ID, "damage", damage)
	}

	pause := c.settings.TargetPause(d.AttackDelay)
	from := c.platform.Grid.Center(actor.Position)

	return &AttackTask{
		Actor: actor,
		Name:  d.Name,
		gates: gates,
		run: func(ctx context.Context) error {
			var g errgroup.Group
			for i, h := range hits {
				if i > 0 {
					if err := utils.Sleep(ctx, pause); err != nil {
						return errors.Join(err, g.Wait())
					}
				}
				g.Go(func() error {
					c.play(ctx, platform.Effect{
						Animation: d.Animation,
						Source:    actor.ID,
						From:      from,
						To:        c.platform.Grid.Center(h.target.Position),
					})
					h.gate.open()
					if err := h.pending.Wait(ctx); err != nil {
						return err
					}
					if d.Pushback > 0 {
						return c.pushback(ctx, h.target.ID, d.Pushback)
					}
					return nil
				})
			}
			return g.Wait()
		},
	}
}

// pushback moves a hostile cells steps back along its path toward the entrance. It does
// nothing when no such path exists or the path is shorter than cells.
func (c *Combat) pushback(ctx context.Context, id types.UnitID, cells int) error {
	info, ok := c.tick.Info(id)
	if !ok {
		return nil
	}
	from := info.Unit.Position
	path, err := c.planner.PathBetween(ctx, from, c.tick.Entrance.Position)
	if err != nil {
		return fmt.Errorf("pushback %s: %w", id, err)
	}
	if path == nil || path.Steps() < cells {
		slog.DebugContext(ctx, "pushback skipped", "unit", id, "cells", cells)
		return nil
	}

	to := path.Cells[cells]
	if err := c.platform.Scene.MoveUnit(ctx, id, to); err != nil {
		return fmt.Errorf("pushback %s to %v: %w", id, to, err)
	}
	c.tick.Update(id, func(info *component.UnitInfo) {
		info.Unit.Position = to
	})
	c.dispatcher.Dispatch(event.Event{
		Type: event.HostilePushed,
		Data: event.Move{Unit: id, From: from, To: to},
	})
	return nil
}

// play runs a cosmetic effect. Failures are logged and otherwise ignored.
func (c *Combat) play(ctx context.Context, e platform.Effect) {
	if !c.settings.PlayAnimations || c.platform.Animator == nil {
		return
	}
	if e.Duration == 0 {
		e.Duration = c.settings.EffectDuration
	}
	if err := c.platform.Animator.Play(ctx, e); err != nil {
		slog.WarnContext(ctx, "effect failed", "animation", e.Animation, "source", e.Source, "error", err)
	}
}
