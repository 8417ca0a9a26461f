package main

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"runtime"

	"faceplate/app"
	"faceplate/hal"
	"faceplate/internal/config"
	"faceplate/internal/raster"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// captureHAL keeps every flushed frame in memory.
type captureHAL struct {
	log   *lineSink
	panel *capturePanel
}

type lineSink struct{ log *slog.Logger }

func (s *lineSink) WriteLineString(line string) { s.log.Info(line) }

type capturePanel struct {
	w, h   int
	frames []*raster.Frame
}

func (p *capturePanel) Size() (w, h int) { return p.w, p.h }

func (p *capturePanel) Flush(f *raster.Frame) error {
	p.frames = append(p.frames, f.Clone())
	return nil
}

func (h *captureHAL) Logger() hal.Logger     { return h.log }
func (h *captureHAL) Panel() hal.Panel       { return h.panel }
func (h *captureHAL) Keyboard() hal.Keyboard { return nil }

// capture runs the app for ticks frames and returns every Nth one.
func capture(cfg config.Config, ticks, every int, log *slog.Logger) ([]*raster.Frame, error) {
	h := &captureHAL{
		log:   &lineSink{log: log},
		panel: &capturePanel{w: cfg.Width, h: cfg.Height},
	}
	step, err := app.Open(h, cfg, app.WithLogger(log))
	if err != nil {
		return nil, err
	}
	for i := 0; i < ticks; i++ {
		if err := step(); err != nil {
			return nil, fmt.Errorf("tick %d: %w", i, err)
		}
	}

	var kept []*raster.Frame
	for i, f := range h.panel.frames {
		if i%every == 0 {
			kept = append(kept, f)
		}
	}
	return kept, nil
}

// writePNGs upscales each frame by scale and writes frame_NNNN.png files into dir.
func writePNGs(dir string, frames []*raster.Frame, scale int, conv hal.ColorFunc) ([]string, error) {
	if scale <= 0 {
		scale = 1
	}
	paths := make([]string, len(frames))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, f := range frames {
		paths[i] = filepath.Join(dir, fmt.Sprintf("frame_%04d.png", i))
		g.Go(func() error {
			src := f.Image(conv)
			b := src.Bounds()
			dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
			xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
			if err := gg.NewContextForImage(dst).SavePNG(paths[i]); err != nil {
				return fmt.Errorf("write %s: %w", paths[i], err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
