// internal/app/wave.go
package app

import (
	"context"
	"log/slog"

	"go-wave-tick/pkg/utils"
)

// waveRun is one continuous wave loop. err is written before done is closed.
type waveRun struct {
	done chan struct{}
	err  error
}

// ToggleContinuousWave starts a loop that runs ticks, pausing WavePause between them, until
// a tick clears the wave or fails. Calling it while the loop runs stops the loop instead.
// Cancellation is observed between ticks; a running tick completes. It reports whether a
// loop was started.
func (e *Engine) ToggleContinuousWave(ctx context.Context) bool {
	e.waveMu.Lock()
	defer e.waveMu.Unlock()

	if e.waveCancel != nil {
		slog.InfoContext(ctx, "stopping wave")
		e.waveCancel()
		e.waveCancel = nil
		return false
	}

	ctx, cancel := context.WithCancel(ctx)
	run := &waveRun{done: make(chan struct{})}
	e.waveCancel = cancel
	e.wave = run
	slog.InfoContext(ctx, "starting wave")
	go e.runWave(ctx, cancel, run)
	return true
}

// WaveRunning reports whether the continuous wave loop is active.
func (e *Engine) WaveRunning() bool {
	e.waveMu.Lock()
	defer e.waveMu.Unlock()
	return e.waveCancel != nil
}

// WaitWave blocks until the most recently started wave loop has exited and returns the
// tick error that stopped it. A loop that was toggled off or cleared the wave returns nil.
func (e *Engine) WaitWave() error {
	e.waveMu.Lock()
	run := e.wave
	e.waveMu.Unlock()
	if run == nil {
		return nil
	}
	<-run.done
	return run.err
}

func (e *Engine) runWave(ctx context.Context, cancel context.CancelFunc, run *waveRun) {
	defer close(run.done)
	defer func() {
		e.waveMu.Lock()
		if e.wave == run {
			e.waveCancel = nil
		}
		e.waveMu.Unlock()
		cancel()
	}()

	for ctx.Err() == nil {
		outcome, err := e.RunTick(context.WithoutCancel(ctx))
		if err != nil {
			slog.ErrorContext(ctx, "wave stopped", "error", err)
			run.err = err
			return
		}
		if outcome == OutcomeCleared {
			slog.InfoContext(ctx, "wave cleared")
			return
		}
		if err := utils.Sleep(ctx, e.settings.WavePause); err != nil {
			return
		}
	}
}
