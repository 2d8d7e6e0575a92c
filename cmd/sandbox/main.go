package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/gogpu/gg"
	"github.com/hubastard/powder/engine/core"
	"github.com/hubastard/powder/engine/handoff"
	"github.com/hubastard/powder/engine/profiler"
	"golang.org/x/sync/errgroup"
)

func init() {
	// GLFW and GL must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	var (
		configPath = flag.String("config", "powder.toml", "window config (TOML)")
		fontPath   = flag.String("font", "", "UI font file (default: embedded Go Regular)")
		period     = flag.Duration("tick", time.Second, "simulation period")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	core.SetLogger(logger)
	gg.SetLogger(logger)

	cfg := loadConfig(*configPath)
	profiler.Init(1 << 14)

	// Simulation -> graphics hand-off.
	mb := handoff.New[Renderable]()

	ctx, cancel := context.WithCancel(context.Background())
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return simulate(gctx, mb, *period) })

	err := render(cfg, *fontPath, mb)

	// Graceful shutdown
	cancel()
	if werr := g.Wait(); werr != nil {
		logger.Error("simulation", "err", werr)
	}
	if err != nil {
		logger.Error("powder", "err", err)
		os.Exit(1)
	}
}

func loadConfig(path string) core.Config {
	cfg, err := core.LoadConfig(path)
	switch {
	case err == nil:
		return cfg
	case errors.Is(err, fs.ErrNotExist):
		cfg = core.DefaultConfig()
		cfg.Title = "Powder Example"
		cfg.Width, cfg.Height = 1200, 800
		return cfg
	default:
		core.Logger().Error("bad config, using defaults", "err", err)
		return core.DefaultConfig()
	}
}
