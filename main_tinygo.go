//go:build tinygo && baremetal

package main

import (
	"bytes"
	"log/slog"

	"faceplate/app"
	"faceplate/assets"
	"faceplate/hal"
	"faceplate/internal/anim"
	"faceplate/internal/buildinfo"
	"faceplate/internal/config"
	"faceplate/internal/face"
)

func main() {
	h := hal.New()
	cfg := config.Default()
	log := app.NewLogger(h, slog.LevelInfo)
	log.Info("faceplate: starting", "build", buildinfo.Short())

	if err := cfg.ValidateEmbedded(); err != nil {
		app.Fatal(h, err)
	}
	set, err := face.Load(bytes.NewReader(assets.Faces),
		face.WithRequiredLabels(anim.FaceLabels...),
		face.WithLogger(log),
	)
	if err != nil {
		app.Fatal(h, err)
	}
	step, err := app.New(h, set, cfg, app.WithLogger(log))
	if err != nil {
		app.Fatal(h, err)
	}
	if err := app.Run(step, app.FramePeriod); err != nil {
		app.Fatal(h, err)
	}
	log.Info("faceplate: stopped")
	select {}
}
