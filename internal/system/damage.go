// internal/system/damage.go
package system

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go-wave-tick/internal/event"
	"go-wave-tick/internal/platform"
	"go-wave-tick/internal/types"
)

// Pending is one queued damage instruction.
type Pending struct {
	done chan struct{}
	err  error
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

// Done is closed once the instruction has been applied or has failed.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the instruction resolved and returns its error.
func (p *Pending) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// DamageSerializer applies damage to the scene so that instructions for the same target
// commit in the order they were enqueued. Different targets proceed concurrently.
type DamageSerializer struct {
	scene      platform.SceneStore
	dispatcher *event.Dispatcher
	enabled    bool

	mu    sync.Mutex
	tails map[types.UnitID]*Pending
	all   []*Pending
}

// NewDamageSerializer returns a serializer writing to scene. With enabled false every
// instruction resolves without touching the scene.
func NewDamageSerializer(scene platform.SceneStore, dispatcher *event.Dispatcher, enabled bool) *DamageSerializer {
	return &DamageSerializer{
		scene:      scene,
		dispatcher: dispatcher,
		enabled:    enabled,
		tails:      make(map[types.UnitID]*Pending),
	}
}

// Enqueue schedules amount of damage against target. The instruction applies after every
// earlier instruction for target has resolved and after ready is closed. A nil ready
// means the instruction does not wait for an effect.
func (s *DamageSerializer) Enqueue(ctx context.Context, target types.UnitID, amount int, ready <-chan struct{}) *Pending {
	p := newPending()

	s.mu.Lock()
	prev := s.tails[target]
	s.tails[target] = p
	s.all = append(s.all, p)
	s.mu.Unlock()

	go func() {
		defer close(p.done)

		// the previous link always resolves, even on cancellation
		if prev != nil {
			<-prev.done
		}
		if ready != nil {
			select {
			case <-ready:
			case <-ctx.Done():
				p.err = ctx.Err()
				return
			}
		}
		p.err = s.apply(ctx, target, amount)
	}()
	return p
}

func (s *DamageSerializer) apply(ctx context.Context, target types.UnitID, amount int) error {
	if !s.enabled {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.scene.ApplyDamage(ctx, target, amount); err != nil {
		slog.WarnContext(ctx, "apply damage failed", "unit", target, "damage", amount, "error", err)
		return fmt.Errorf("apply %d damage to %s: %w", amount, target, err)
	}
	slog.DebugContext(ctx, "damage applied", "unit", target, "damage", amount)
	s.dispatcher.Dispatch(event.Event{
		Type: event.UnitDamaged,
		Data: event.Damage{Unit: target, Amount: amount},
	})
	return nil
}

// Tail returns the last instruction queued for target, or nil.
func (s *DamageSerializer) Tail(target types.UnitID) *Pending {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tails[target]
}

// Drain waits for every queued instruction and returns the first failure.
func (s *DamageSerializer) Drain(ctx context.Context) error {
	s.mu.Lock()
	all := append([]*Pending(nil), s.all...)
	s.mu.Unlock()

	var first error
	for _, p := range all {
		if err := p.Wait(ctx); err != nil && first == nil {
			first = err
		}
	}
	return first
}
