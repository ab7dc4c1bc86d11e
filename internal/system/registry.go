// internal/system/registry.go
package system

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"go-wave-tick/internal/component"
	"go-wave-tick/internal/defs"
	"go-wave-tick/pkg/utils"
)

// GroupByArchetype buckets units by name, keeping their order within each bucket.
func GroupByArchetype(units []component.Unit) map[string][]component.Unit {
	groups := make(map[string][]component.Unit)
	for _, u := range units {
		groups[u.Name] = append(groups[u.Name], u)
	}
	return groups
}

// RunAttackPhase walks the library in order and launches the attack of every live friendly
// of each archetype. Selection is sequential; the selected tasks play concurrently, bounded
// by MaxConcurrentAttacks. Each launched attack delays the next selection by the launch
// delay. It returns once every task and every queued damage instruction has resolved.
func (c *Combat) RunAttackPhase(ctx context.Context, library *defs.Library) error {
	friendlies := make([]component.Unit, 0, len(c.tick.Friendlies))
	for _, u := range c.tick.Friendlies {
		if u.IsAlive() {
			friendlies = append(friendlies, u)
		}
	}
	groups := GroupByArchetype(friendlies)
	delay := c.settings.AttackLaunchDelay(len(friendlies))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.settings.MaxConcurrentAttacks)

	var launchErr error
	launched := 0
	pause := false
launch:
	for _, d := range library.Ordered() {
		for _, u := range groups[d.Name] {
			// only a launched attack delays the next selection
			if pause {
				if err := utils.Sleep(gctx, delay); err != nil {
					launchErr = err
					break launch
				}
				pause = false
			}
			task := c.Attack(ctx, u, d)
			if task == nil {
				slog.DebugContext(ctx, "no attack", "actor", u.ID, "archetype", d.Name)
				continue
			}
			launched++
			pause = true
			g.Go(func() error {
				if err := task.Run(gctx); err != nil {
					return fmt.Errorf("%s attack by %s: %w", task.Name, task.Actor.ID, err)
				}
				return nil
			})
		}
	}

	err := g.Wait()
	// a failed sibling cancels gctx; report the failure rather than the cancellation
	if err != nil {
		launchErr = nil
	}
	// failed instructions were already reported by their task
	if drainErr := c.damage.Drain(ctx); err == nil {
		err = drainErr
	}
	slog.DebugContext(ctx, "attack phase done", "friendlies", len(friendlies), "attacks", launched)
	return errors.Join(launchErr, err)
}
