// internal/system/hostiles.go
package system

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"go-wave-tick/internal/component"
	"go-wave-tick/internal/config"
	"go-wave-tick/internal/entity"
	"go-wave-tick/internal/event"
	"go-wave-tick/pkg/grid"
	"go-wave-tick/pkg/utils"
)

// PlanHostiles plans the path to exit of every live hostile and records it in tick.
// It returns the hostiles that still have ground to cover, cost-first, and indexes them
// by cell for range queries. Hostiles without a path are left out.
func PlanHostiles(ctx context.Context, tick *entity.TickContext, planner *Planner, hostiles []component.Unit, exit grid.Position) ([]component.UnitInfo, error) {
	var plan []component.UnitInfo
	for _, u := range hostiles {
		if !u.IsAlive() {
			continue
		}
		path, err := planner.PlannedPath(ctx, u.Position, exit)
		if err != nil {
			return nil, fmt.Errorf("plan %s: %w", u.ID, err)
		}
		if path == nil {
			slog.DebugContext(ctx, "hostile has no path", "unit", u.ID, "position", u.Position)
			continue
		}
		tick.Refresh(u)
		tick.SetPath(u, path)
		info, _ := tick.Info(u.ID)
		plan = append(plan, info)
	}

	SortCostFirst(plan)

	out := plan[:0]
	for _, info := range plan {
		if info.PathCost() > 0 {
			out = append(out, info)
		}
	}

	units := make([]component.Unit, 0, len(out))
	for _, info := range out {
		units = append(units, info.Unit)
	}
	tick.SetHostiles(units)
	return out, nil
}

// MoveHostiles walks every planned hostile along its path, up to its move rate. Hostiles
// start one after another and their walks overlap.
func (c *Combat) MoveHostiles(ctx context.Context, plan []component.UnitInfo) error {
	var g errgroup.Group
	for i, info := range plan {
		rate := info.Unit.MoveRate
		if rate <= 0 {
			rate = config.DefaultMoveRate
		}
		budget := max(rate/config.FeetPerStep, 1)
		steps := min(budget, info.Path.Steps())
		delay := c.settings.MoveStepDelay(len(plan), budget)

		if i > 0 {
			if err := utils.Sleep(ctx, delay); err != nil {
				return errors.Join(err, g.Wait())
			}
		}
		if steps == 0 {
			continue
		}
		g.Go(func() error {
			return c.walk(ctx, info, steps, delay)
		})
	}
	return g.Wait()
}

func (c *Combat) walk(ctx context.Context, info component.UnitInfo, steps int, delay time.Duration) error {
	id := info.Unit.ID
	from := info.Unit.Position
	for i := 1; i <= steps; i++ {
		to := info.Path.Cells[i]
		if err := c.platform.Scene.MoveUnit(ctx, id, to); err != nil {
			return fmt.Errorf("move %s to %v: %w", id, to, err)
		}
		c.tick.Update(id, func(info *component.UnitInfo) {
			info.Unit.Position = to
		})
		if i < steps {
			if err := utils.Sleep(ctx, delay); err != nil {
				return err
			}
		}
	}
	to := info.Path.Cells[steps]
	slog.DebugContext(ctx, "hostile moved", "unit", id, "from", from, "to", to)
	c.dispatcher.Dispatch(event.Event{
		Type: event.HostileMoved,
		Data: event.Move{Unit: id, From: from, To: to},
	})
	return nil
}
