package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go-wave-tick/internal/app"
	"go-wave-tick/internal/config"
	"go-wave-tick/internal/defs"
	"go-wave-tick/internal/event"
	"go-wave-tick/internal/feed"
	"go-wave-tick/internal/platform/memory"
)

func main() {
	var scenarioPath, archetypesPath, settingsPath, listen, origins string
	var ticks int
	var wave, verbose, instant bool
	flag.StringVar(&scenarioPath, "scenario", "assets/scenario.yaml", "scenario file")
	flag.StringVar(&archetypesPath, "archetypes", "", "archetype table (default: built-in)")
	flag.StringVar(&settingsPath, "settings", "", "engine settings (default: built-in)")
	flag.IntVar(&ticks, "ticks", 1, "number of ticks to run when -wave is off")
	flag.BoolVar(&wave, "wave", false, "run ticks until the wave is cleared")
	flag.BoolVar(&instant, "instant", false, "disable pacing and effects")
	flag.StringVar(&listen, "listen", "", "serve the event feed on this address, e.g. :8080")
	flag.StringVar(&origins, "origins", "", "comma-separated origin host patterns allowed to open the feed")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, options{
		scenario:   scenarioPath,
		archetypes: archetypesPath,
		settings:   settingsPath,
		listen:     listen,
		origins:    splitList(origins),
		ticks:      ticks,
		wave:       wave,
		instant:    instant,
	}); err != nil {
		slog.Error("wavetick failed", "err", err)
		os.Exit(1)
	}
}

type options struct {
	scenario, archetypes, settings, listen string
	origins                                []string
	ticks                                  int
	wave, instant                          bool
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func run(ctx context.Context, opts options) error {
	shutdown, err := setupTracing(ctx)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			slog.Warn("tracer shutdown failed", "err", err)
		}
	}()

	settings := config.Default()
	if opts.instant {
		settings = config.Instant()
	}
	if opts.settings != "" {
		if settings, err = config.LoadSettings(opts.settings); err != nil {
			return err
		}
	}

	library := defs.DefaultLibrary()
	if opts.archetypes != "" {
		if library, err = defs.LoadArchetypes(opts.archetypes); err != nil {
			return err
		}
	}

	scenario, err := memory.LoadScenario(opts.scenario)
	if err != nil {
		return err
	}
	world, err := scenario.Build(settings.StepCost)
	if err != nil {
		return err
	}

	dispatcher := event.NewDispatcher()
	dispatcher.Subscribe(event.UnitDamaged, event.ListenerFunc(func(ev event.Event) {
		if d, ok := ev.Data.(event.Damage); ok {
			slog.Info("damage", "unit", d.Unit, "amount", d.Amount)
		}
	}))

	if opts.listen != "" {
		hub := feed.NewHub(64, opts.origins...)
		dispatcher.SubscribeAll(hub)
		srv := &http.Server{Addr: opts.listen, Handler: hub}
		go func() {
			slog.Info("event feed listening", "addr", opts.listen)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("event feed stopped", "err", err)
			}
		}()
		defer srv.Close()
	}

	engine, err := app.NewEngine(world.Platform(), settings, library, app.WithDispatcher(dispatcher))
	if err != nil {
		return err
	}

	if opts.wave {
		engine.ToggleContinuousWave(ctx)
		go func() {
			<-ctx.Done()
			if engine.WaveRunning() {
				engine.ToggleContinuousWave(ctx)
			}
		}()
		if err := engine.WaitWave(); err != nil {
			return err
		}
	} else {
		for i := 0; i < opts.ticks && ctx.Err() == nil; i++ {
			outcome, err := engine.RunTick(ctx)
			if err != nil {
				return err
			}
			if outcome == app.OutcomeCleared {
				break
			}
		}
	}

	// the signal context may already be cancelled
	return report(context.WithoutCancel(ctx), world)
}

func report(ctx context.Context, world *memory.World) error {
	units, err := world.Scene.Units(ctx)
	if err != nil {
		return err
	}
	for _, u := range units {
		fmt.Printf("%-10s %-8s %-8s row=%d col=%d hp=%d\n", u.ID, u.Name, u.Faction, u.Position.Row, u.Position.Col, u.HP)
	}
	return nil
}
