package memory

import (
	"context"
	"sync"

	"go-wave-tick/internal/platform"
	"go-wave-tick/pkg/utils"
)

// Animator records played effects and waits out their duration.
type Animator struct {
	mu      sync.Mutex
	played  []platform.Effect
	observe func(platform.Effect)
}

// NewAnimator returns an animator. observe, when non-nil, sees every effect as it starts.
func NewAnimator(observe func(platform.Effect)) *Animator {
	return &Animator{observe: observe}
}

func (a *Animator) Play(ctx context.Context, effect platform.Effect) error {
	a.mu.Lock()
	a.played = append(a.played, effect)
	a.mu.Unlock()
	if a.observe != nil {
		a.observe(effect)
	}
	return utils.Sleep(ctx, effect.Duration)
}

// Played returns the effects played so far.
func (a *Animator) Played() []platform.Effect {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]platform.Effect(nil), a.played...)
}
