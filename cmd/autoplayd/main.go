package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/autoplay/internal/ai"
	"github.com/udisondev/autoplay/internal/autoplay"
	"github.com/udisondev/autoplay/internal/config"
	"github.com/udisondev/autoplay/internal/data"
	"github.com/udisondev/autoplay/internal/game"
	"github.com/udisondev/autoplay/internal/game/itemhandler"
	"github.com/udisondev/autoplay/internal/game/skill"
	"github.com/udisondev/autoplay/internal/gameserver/admin"
	"github.com/udisondev/autoplay/internal/gameserver/admin/commands"
	"github.com/udisondev/autoplay/internal/telemetry"
	"github.com/udisondev/autoplay/internal/variables"
	"github.com/udisondev/autoplay/internal/world"
)

// ConfigPath is the default daemon config location.
const ConfigPath = "config/autoplayd.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("AUTOPLAY_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := parseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))
	ai.EnableDebugLogging(logLevel == slog.LevelDebug)

	slog.Info("autoplayd starting",
		"log_level", cfg.LogLevel,
		"storage", cfg.Storage.Driver,
		"config", cfgPath)

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer scancel()
		if err := shutdownTracing(sctx); err != nil {
			slog.Warn("telemetry shutdown", "error", err)
		}
	}()

	if err := data.LoadSkills(); err != nil {
		return fmt.Errorf("loading skills: %w", err)
	}
	if err := data.LoadItemTemplates(); err != nil {
		return fmt.Errorf("loading item templates: %w", err)
	}
	itemhandler.Init()

	store, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	vars := variables.NewRegistry(store.vars)
	w := world.New()
	engine := game.NewEngine(w, nil, nil)

	mgr := autoplay.NewManager(autoplay.Deps{
		Players:  engine,
		Spatial:  engine,
		Actions:  engine,
		Notifier: engine,
		Settings: vars,
		Clock:    engine,
		Store:    store.configs,
	}, autoplay.TuningFromConfig(cfg.Autoplay))

	ticks := ai.NewTickManager(cfg.SchedulerResolution)
	effects := skill.NewEffectManager(w, skill.DefaultSweepInterval)

	cmds := admin.NewHandler()
	commands.RegisterAll(cmds, commands.Deps{
		Players:   w,
		Scheduler: ticks,
		Vars:      vars,
		AutoPlay:  mgr,
	})

	sessions := &sessionHost{world: w, vars: vars, manager: mgr, ticks: ticks}

	if cfg.Demo.Enabled {
		rnd := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		if err := seedDemo(ctx, cfg.Demo, w, sessions, rnd); err != nil {
			return fmt.Errorf("seeding demo world: %w", err)
		}
	}

	watcher, err := config.NewWatcher(cfgPath, func(a config.AutoplayConfig) {
		mgr.SetTuning(autoplay.TuningFromConfig(a))
	})
	if err != nil {
		return fmt.Errorf("creating config watcher: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := ticks.Start(gctx); err != nil {
			return fmt.Errorf("tick manager: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return effects.Run(gctx)
	})
	g.Go(func() error {
		return watcher.Run(gctx)
	})
	g.Go(func() error {
		autosave(gctx, cfg.AutosaveInterval, vars, mgr)
		return nil
	})
	if cfg.Demo.Enabled && cfg.Demo.Attrition {
		g.Go(func() error {
			runAttrition(gctx, w, time.Second)
			return nil
		})
	}
	if cfg.Demo.Console {
		// stdin reads cannot be interrupted; the console lives outside the group
		go runConsole(gctx, os.Stdin, w, cmds)
	}

	slog.Info("autoplayd running", "players", vars.Count(), "sessions", mgr.SessionCount())

	err = g.Wait()

	// final save with a fresh context: gctx is already canceled
	sctx, scancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer scancel()
	sessions.LogoutAll(sctx)

	if err != nil {
		return fmt.Errorf("running autoplayd: %w", err)
	}
	slog.Info("autoplayd stopped")
	return nil
}

// autosave flushes dirty variables and live configs every interval.
func autosave(ctx context.Context, interval time.Duration, vars *variables.Registry, mgr *autoplay.Manager) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := vars.FlushAll(ctx); err != nil {
				slog.Error("autosave variables", "error", err)
			}
			mgr.SaveAll(ctx)
			slog.Debug("autosave done", "characters", vars.Count())
		}
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
