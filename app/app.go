// Package app wires the face engine to a HAL: it turns key presses, ticks and the
// retarget policy into one step function that renders and flushes a frame.
package app

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"faceplate/hal"
	"faceplate/internal/anim"
	"faceplate/internal/config"
	"faceplate/internal/face"
	"faceplate/internal/hud"
	"faceplate/internal/raster"
)

// ErrQuit is returned by the step function when the user asks to leave.
var ErrQuit = hal.ErrQuit

type options struct {
	log *slog.Logger
	rng anim.Rand
}

// Option configures New and Open.
type Option func(*options)

// WithLogger sets the logger for the app and the engine it builds.
func WithLogger(l *slog.Logger) Option { return func(o *options) { o.log = l } }

// WithRand overrides the random source, ignoring the configured seed.
func WithRand(r anim.Rand) Option { return func(o *options) { o.rng = r } }

// LoadFaces reads the face file at path, keeping only poses that carry every label
// the renderer draws.
func LoadFaces(path string, log *slog.Logger) (*face.Set, error) {
	return face.LoadFile(path,
		face.WithRequiredLabels(anim.FaceLabels...),
		face.WithLogger(log),
	)
}

// Open loads cfg.Faces and builds the step function on h.
func Open(h hal.HAL, cfg config.Config, opts ...Option) (func() error, error) {
	o := buildOptions(opts)
	set, err := LoadFaces(cfg.Faces, o.log)
	if err != nil {
		return nil, err
	}
	return New(h, set, cfg, opts...)
}

// New builds the engine over set and returns the per-frame step function.
//
// The frame size follows the panel when it reports one, else cfg.Width x cfg.Height.
func New(h hal.HAL, set *face.Set, cfg config.Config, opts ...Option) (func() error, error) {
	r, err := newRunner(h, set, cfg, buildOptions(opts))
	if err != nil {
		return nil, err
	}
	return r.step, nil
}

func newRunner(h hal.HAL, set *face.Set, cfg config.Config, o options) (*runner, error) {
	if h == nil || h.Panel() == nil {
		return nil, fmt.Errorf("app: %w: no panel", hal.ErrNotImplemented)
	}

	w, ht := h.Panel().Size()
	if w <= 0 || ht <= 0 {
		w, ht = cfg.Width, cfg.Height
	}
	rng := o.rng
	if rng == nil && cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}

	engOpts := []anim.Option{
		anim.WithStep(cfg.Step),
		anim.WithSize(w, ht),
		anim.WithJitter(cfg.JitterMin, cfg.JitterMax),
		anim.WithBackdropJitter(cfg.BackdropJitter),
		anim.WithLogger(o.log),
	}
	if rng != nil {
		engOpts = append(engOpts, anim.WithRand(rng))
	}
	eng, err := anim.New(set, engOpts...)
	if err != nil {
		return nil, err
	}

	r := &runner{
		eng:    eng,
		panel:  h.Panel(),
		policy: cfg.Retarget,
		every:  uint64(cfg.RetargetEvery),
		hud:    cfg.HUD,
		log:    o.log,
	}
	if kbd := h.Keyboard(); kbd != nil {
		r.keys = kbd.Events()
	}
	o.log.Info("app: started",
		"poses", set.Len(),
		"size", fmt.Sprintf("%dx%d", w, ht),
		"retarget", cfg.Retarget,
	)
	return r, nil
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = slog.New(slog.DiscardHandler)
	}
	return o
}

type runner struct {
	eng    *anim.Engine
	panel  hal.Panel
	keys   <-chan hal.KeyEvent
	policy string
	every  uint64
	frames uint64
	hud    bool
	log    *slog.Logger
}

func (r *runner) step() error {
	if err := r.drainKeys(); err != nil {
		return err
	}

	r.eng.Tick()
	r.frames++
	if err := r.retarget(); err != nil {
		return err
	}

	f := r.eng.RenderFrame()
	if r.hud {
		s := r.eng.Snapshot()
		state := "moving"
		if s.Converged {
			state = "settled"
		}
		hud.Draw(f, raster.White,
			"mood "+s.Mood,
			fmt.Sprintf("tick %d", s.Ticks),
			state,
		)
	}
	return r.panel.Flush(f)
}

func (r *runner) drainKeys() error {
	for {
		select {
		case ev, ok := <-r.keys:
			if !ok {
				r.keys = nil
				return nil
			}
			if !ev.Press {
				continue
			}
			if err := r.handleKey(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (r *runner) handleKey(ev hal.KeyEvent) error {
	switch ev.Code {
	case hal.KeyEscape:
		r.log.Info("app: quit", "frames", r.frames)
		return ErrQuit
	case hal.KeyRight:
		r.eng.Tick()
	case hal.KeySpace:
		return r.setTarget()
	case hal.KeyUnknown:
		switch ev.Rune {
		case 'h', 'H':
			r.hud = !r.hud
		case ' ':
			return r.setTarget()
		}
	}
	return nil
}

func (r *runner) retarget() error {
	switch r.policy {
	case config.RetargetConverged:
		if r.eng.Converged() {
			return r.setTarget()
		}
	case config.RetargetEvery:
		if r.every > 0 && r.frames%r.every == 0 {
			return r.setTarget()
		}
	}
	return nil
}

func (r *runner) setTarget() error {
	if err := r.eng.SetTarget(); err != nil {
		return err
	}
	r.log.Info("app: retarget", "mood", r.eng.State().TargetMood())
	return nil
}
