//go:build !tinygo && cgo

package hal

import (
	"errors"

	"faceplate/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window showing the panel and forwarding keys.
// It blocks until the window closes or the step function returns ErrQuit.
func RunWindow(cfg HostConfig, tps int, newApp func(HAL) (func() error, error)) error {
	cfg = cfg.withDefaults()
	h := newHost(cfg)
	step, err := newApp(h)
	if err != nil {
		return err
	}
	if tps <= 0 {
		tps = 60
	}

	title := cfg.Title
	if title == "" {
		title = "faceplate"
	}
	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle(title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetTPS(tps)
	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type hostGame struct {
	h       *hostHAL
	img     *ebiten.Image
	scratch []byte
	seen    uint64
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if g.step == nil {
		return nil
	}
	if err := g.step(); err != nil {
		if errors.Is(err, ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	p := g.h.panel
	if g.img == nil {
		g.img = ebiten.NewImage(p.width, p.height)
		g.scratch = make([]byte, p.width*p.height*4)
	}

	if n := p.snapshotRGBA(g.scratch); n != g.seen {
		g.seen = n
		g.img.WritePixels(g.scratch)
	}
	screen.DrawImage(g.img, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.panel.width, g.h.panel.height
}
