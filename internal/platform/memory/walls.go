package memory

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/image/math/f64"

	"go-wave-tick/internal/platform"
	"go-wave-tick/internal/types"
)

// Walls stores wall segments. It serves both as the obstacle store and as the sight test.
type Walls struct {
	mu    sync.RWMutex
	walls map[types.ObstacleID]platform.Obstacle
}

func NewWalls() *Walls {
	return &Walls{walls: make(map[types.ObstacleID]platform.Obstacle)}
}

func (w *Walls) CreateObstacles(ctx context.Context, obstacles []platform.Obstacle) ([]types.ObstacleID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	ids := make([]types.ObstacleID, 0, len(obstacles))
	for _, o := range obstacles {
		id := types.ObstacleID(uuid.NewString())
		w.walls[id] = o
		ids = append(ids, id)
	}
	return ids, nil
}

// DeleteObstacles removes every known id and reports the unknown ones.
func (w *Walls) DeleteObstacles(ctx context.Context, ids []types.ObstacleID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	var errs []error
	for _, id := range ids {
		if _, ok := w.walls[id]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownObstacle, id))
			continue
		}
		delete(w.walls, id)
	}
	return errors.Join(errs...)
}

// Len returns the number of stored walls.
func (w *Walls) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.walls)
}

// Blocked reports whether a sight-blocking wall crosses the segment from-to.
func (w *Walls) Blocked(from, to f64.Vec2) bool {
	return w.crossed(from, to, func(o platform.Obstacle) bool { return o.BlocksSight })
}

// MovementBlocked reports whether a movement-blocking wall crosses the segment from-to.
func (w *Walls) MovementBlocked(from, to f64.Vec2) bool {
	return w.crossed(from, to, func(o platform.Obstacle) bool { return o.BlocksMovement })
}

func (w *Walls) crossed(from, to f64.Vec2, applies func(platform.Obstacle) bool) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, o := range w.walls {
		if applies(o) && segmentsIntersect(from, to, o.A, o.B) {
			return true
		}
	}
	return false
}

// segmentsIntersect reports whether p1-p2 and q1-q2 share a point. Touching at an
// endpoint counts. Parallel segments never intersect.
func segmentsIntersect(p1, p2, q1, q2 f64.Vec2) bool {
	dx, dy := p2[0]-p1[0], p2[1]-p1[1]
	segDX, segDY := q2[0]-q1[0], q2[1]-q1[1]

	denominator := dx*segDY - dy*segDX
	if math.Abs(denominator) < 1e-10 {
		return false
	}

	diffX := q1[0] - p1[0]
	diffY := q1[1] - p1[1]
	// p1 + t*d == q1 + u*s
	t := (diffX*segDY - diffY*segDX) / denominator
	u := (diffX*dy - diffY*dx) / denominator

	const eps = 1e-9
	return t >= -eps && t <= 1+eps && u >= -eps && u <= 1+eps
}
