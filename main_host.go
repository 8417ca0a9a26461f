//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"faceplate/app"
	"faceplate/hal"
	"faceplate/internal/buildinfo"
	"faceplate/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file.")
		facesPath  = flag.String("faces", "", "Face file (JSON lines). Overrides config and "+config.EnvFacePath+".")
		headless   = flag.Bool("headless", false, "Run without a window.")
		hz         = flag.Int("hz", 0, "Tick rate (0 = config tps).")
		ticks      = flag.Uint64("ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
		seed       = flag.Uint64("seed", 0, "Random seed (0 = config seed, else time).")
		showHUD    = flag.Bool("hud", false, "Show the mood/tick overlay.")
		retarget   = flag.String("retarget", "", "Retarget policy: converged|every|manual.")
		logLevel   = flag.String("log-level", "", "debug|info|warn|error.")
		colorName  = flag.String("color", "scale", "RGB565 widening: scale|shift.")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			fatal(err)
		}
		cfg = c
	}
	cfg.ApplyEnv()
	if *facesPath != "" {
		cfg.Faces = *facesPath
	}
	if *hz > 0 {
		cfg.TPS = *hz
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *showHUD {
		cfg.HUD = true
	}
	if *retarget != "" {
		cfg.Retarget = *retarget
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}
	conv, ok := hal.ColorFuncByName(*colorName)
	if !ok {
		fatal(fmt.Errorf("unknown -color: %s", *colorName))
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	log.Info("faceplate: starting", "build", buildinfo.Short())

	// Load before opening a window so a bad face file fails fast.
	set, err := app.LoadFaces(cfg.Faces, log)
	if err != nil {
		fatal(err)
	}
	newApp := func(h hal.HAL) (func() error, error) {
		return app.New(h, set, cfg, app.WithLogger(log))
	}
	host := hal.HostConfig{
		Width:  cfg.Width,
		Height: cfg.Height,
		Scale:  cfg.Scale,
		Color:  conv,
		Title:  "faceplate",
	}

	if *headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{Host: host, Hz: cfg.TPS, Ticks: *ticks})
		if err != nil && !errors.Is(err, context.Canceled) {
			fatal(err)
		}
		return
	}

	if err := hal.RunWindow(host, cfg.TPS, newApp); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
