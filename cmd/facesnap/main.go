// Command facesnap renders a seeded run of the face animation to PNG files.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"faceplate/hal"
	"faceplate/internal/config"
)

func main() {
	var (
		facesPath  = flag.String("faces", "", "Face file (JSON lines). Overrides config and "+config.EnvFacePath+".")
		configPath = flag.String("config", "", "YAML config file.")
		seed       = flag.Uint64("seed", 1, "Random seed.")
		ticks      = flag.Int("ticks", 120, "Ticks to run.")
		every      = flag.Int("every", 10, "Keep every Nth frame.")
		scale      = flag.Int("scale", 0, "Upscale factor (0 = config scale).")
		outDir     = flag.String("out", "snaps", "Output directory.")
		colorName  = flag.String("color", "scale", "RGB565 widening: scale|shift.")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			fatalf("%v", err)
		}
		cfg = c
	}
	cfg.ApplyEnv()
	if *facesPath != "" {
		cfg.Faces = *facesPath
	}
	cfg.Seed = *seed
	if *scale > 0 {
		cfg.Scale = *scale
	}
	if err := cfg.Validate(); err != nil {
		fatalf("%v", err)
	}
	if *ticks <= 0 || *every <= 0 {
		fatalf("usage: facesnap -faces faces.jsonl [-ticks 120] [-every 10] [-scale 2] [-out snaps]")
	}
	conv, ok := hal.ColorFuncByName(*colorName)
	if !ok {
		fatalf("unknown -color: %s", *colorName)
	}
	level, _ := config.ParseLevel(cfg.LogLevel)
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	frames, err := capture(cfg, *ticks, *every, log)
	if err != nil {
		fatalf("%v", err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fatalf("%v", err)
	}
	paths, err := writePNGs(*outDir, frames, cfg.Scale, conv)
	if err != nil {
		fatalf("%v", err)
	}
	log.Info("facesnap: done", "frames", len(paths), "out", *outDir)
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
