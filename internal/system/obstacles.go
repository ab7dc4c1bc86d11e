// internal/system/obstacles.go
package system

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go-wave-tick/internal/component"
	"go-wave-tick/internal/config"
	"go-wave-tick/internal/platform"
	"go-wave-tick/internal/types"
)

// ObstacleManager erects walls around every friendly cell for the duration of a tick.
type ObstacleManager struct {
	store    platform.ObstacleStore
	grid     platform.Grid
	settings config.ObstacleSettings

	mu  sync.Mutex
	ids []types.ObstacleID
}

func NewObstacleManager(store platform.ObstacleStore, g platform.Grid, settings config.ObstacleSettings) *ObstacleManager {
	return &ObstacleManager{store: store, grid: g, settings: settings}
}

// EraseAndBuild removes walls left by a previous build, then creates one wall per border
// edge of every friendly's cell.
func (m *ObstacleManager) EraseAndBuild(ctx context.Context, friendlies []component.Unit) error {
	if err := m.Teardown(ctx); err != nil {
		return err
	}

	var walls []platform.Obstacle
	for _, u := range friendlies {
		poly := m.grid.BorderPolygon(u.Position)
		for i := range poly {
			walls = append(walls, platform.Obstacle{
				A:              poly[i],
				B:              poly[(i+1)%len(poly)],
				BlocksMovement: m.settings.BlocksMovement,
				BlocksSight:    m.settings.BlocksSight,
			})
		}
	}
	if len(walls) == 0 {
		return nil
	}

	ids, err := m.store.CreateObstacles(ctx, walls)
	// record whatever was created so teardown can remove it
	m.mu.Lock()
	m.ids = append(m.ids, ids...)
	m.mu.Unlock()
	if err != nil {
		return fmt.Errorf("create %d obstacles: %w", len(walls), err)
	}
	slog.DebugContext(ctx, "obstacles erected", "friendlies", len(friendlies), "walls", len(ids))
	return nil
}

// Teardown deletes exactly the walls recorded by EraseAndBuild. It ignores cancellation
// of ctx.
func (m *ObstacleManager) Teardown(ctx context.Context) error {
	m.mu.Lock()
	ids := m.ids
	m.ids = nil
	m.mu.Unlock()

	if len(ids) == 0 {
		return nil
	}
	if err := m.store.DeleteObstacles(context.WithoutCancel(ctx), ids); err != nil {
		return fmt.Errorf("delete %d obstacles: %w", len(ids), err)
	}
	slog.DebugContext(ctx, "obstacles removed", "walls", len(ids))
	return nil
}

// Live returns the identifiers currently recorded.
func (m *ObstacleManager) Live() []types.ObstacleID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]types.ObstacleID(nil), m.ids...)
}
