// Package anim drives the face: a current pose creeping toward a randomly chosen
// target, one fixed step per tick, and the frame drawn from it.
//
// Speed is counted in ticks only. The tick counter is observable progress and has no
// say in how fast poses converge; only the number of Step calls does.
package anim

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"faceplate/internal/face"
)

const (
	DefaultStep           = 2
	DefaultWidth          = 240
	DefaultHeight         = 240
	DefaultJitterMin      = 1
	DefaultJitterMax      = 5
	DefaultBackdropJitter = 10
)

// Rand is the engine's source of randomness. *math/rand/v2.Rand satisfies it.
type Rand = face.Rand

// PoseSource hands out random poses. *face.Set implements it.
type PoseSource interface {
	Random(r face.Rand) (face.Record, error)
}

type options struct {
	rng            Rand
	step           int
	w, h           int
	jitterMin      int
	jitterMax      int
	backdropJitter int
	palette        Palette
	log            *slog.Logger
}

// Option configures New.
type Option func(*options)

// WithRand injects the random source used for target picks and jitter.
func WithRand(r Rand) Option { return func(o *options) { o.rng = r } }

// WithStep sets the per-tick step magnitude.
func WithStep(n int) Option { return func(o *options) { o.step = n } }

// WithSize sets the frame dimensions.
func WithSize(w, h int) Option { return func(o *options) { o.w, o.h = w, h } }

// WithJitter sets the inclusive per-point jitter range applied at render time.
func WithJitter(lo, hi int) Option {
	return func(o *options) { o.jitterMin, o.jitterMax = lo, hi }
}

// WithBackdropJitter sets n for the -n..n wobble of the backdrop vertices.
func WithBackdropJitter(n int) Option { return func(o *options) { o.backdropJitter = n } }

// WithPalette overrides the colors.
func WithPalette(p Palette) Option { return func(o *options) { o.palette = p } }

// WithLogger sets the logger. A nil logger discards.
func WithLogger(l *slog.Logger) Option { return func(o *options) { o.log = l } }

// Engine owns the animation state and the draw order.
type Engine struct {
	src   PoseSource
	state *State

	stepMu sync.Mutex
	step   int

	rngMu sync.Mutex
	rng   Rand

	w, h           int
	jitterMin      int
	jitterMax      int
	backdropJitter int
	palette        Palette

	log *slog.Logger
}

// New builds an engine whose current and target poses are both drawn from src.
func New(src PoseSource, opts ...Option) (*Engine, error) {
	o := options{
		step:           DefaultStep,
		w:              DefaultWidth,
		h:              DefaultHeight,
		jitterMin:      DefaultJitterMin,
		jitterMax:      DefaultJitterMax,
		backdropJitter: DefaultBackdropJitter,
		palette:        DefaultPalette,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if src == nil {
		return nil, errors.New("anim: nil pose source")
	}
	if o.step <= 0 {
		return nil, fmt.Errorf("anim: step must be positive, got %d", o.step)
	}
	if o.w <= 0 || o.h <= 0 {
		return nil, fmt.Errorf("anim: invalid frame size %dx%d", o.w, o.h)
	}
	if o.jitterMax < o.jitterMin {
		o.jitterMin, o.jitterMax = o.jitterMax, o.jitterMin
	}
	if o.backdropJitter < 0 {
		o.backdropJitter = -o.backdropJitter
	}
	if o.rng == nil {
		seed := uint64(time.Now().UnixNano())
		o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	if o.log == nil {
		o.log = slog.New(slog.DiscardHandler)
	}

	cur, err := src.Random(o.rng)
	if err != nil {
		return nil, fmt.Errorf("anim: initial pose: %w", err)
	}
	tgt, err := src.Random(o.rng)
	if err != nil {
		return nil, fmt.Errorf("anim: initial target: %w", err)
	}

	return &Engine{
		src:            src,
		state:          NewState(cur, tgt),
		step:           o.step,
		rng:            o.rng,
		w:              o.w,
		h:              o.h,
		jitterMin:      o.jitterMin,
		jitterMax:      o.jitterMax,
		backdropJitter: o.backdropJitter,
		palette:        o.palette,
		log:            o.log,
	}, nil
}

// State exposes the engine's pose state for readers.
func (e *Engine) State() *State { return e.state }

// Tick advances the tick counter and takes one step. It returns the new counter.
func (e *Engine) Tick() uint32 {
	t := e.state.Advance()
	e.Step()
	return t
}

// Step moves the current pose one step toward the target.
//
// Both poses are read under lock, the next pose is computed with no lock held, and
// the result is published under the current lock alone.
func (e *Engine) Step() {
	e.stepMu.Lock()
	defer e.stepMu.Unlock()

	cur, tgt := e.state.Snapshot()
	e.state.publish(Approach(cur, tgt, e.step))
}

// SetTarget swaps in a fresh random target. The engine never calls it on its own;
// when to retarget is the caller's policy.
func (e *Engine) SetTarget() error {
	e.rngMu.Lock()
	rec, err := e.src.Random(e.rng)
	e.rngMu.Unlock()
	if err != nil {
		return fmt.Errorf("anim: set target: %w", err)
	}
	e.state.SetTarget(rec)
	e.log.Debug("anim: new target", "mood", rec.Mood, "labels", len(rec.Pose))
	return nil
}

// Converged reports whether the current pose has reached the target.
func (e *Engine) Converged() bool {
	cur, tgt := e.state.Snapshot()
	return converged(cur, tgt)
}

// Snapshot is a point-in-time summary for overlays and logs.
type Snapshot struct {
	Ticks     uint32
	Mood      string
	Converged bool
}

// Snapshot reads the tick counter, target mood and convergence in one call.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Ticks:     e.state.Ticks(),
		Mood:      e.state.TargetMood(),
		Converged: e.Converged(),
	}
}
