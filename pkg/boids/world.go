package boids

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// World owns the flock and the shared parameter set. One call to Tick runs
// one full simulation step; an external driver (the ebiten game loop, a
// timer, a test) decides the cadence.
//
// Params may be replaced from the controlling goroutine at any time between
// ticks; Tick takes a single value copy up front so a whole tick always
// observes one consistent parameter snapshot.
type World struct {
	mu     sync.RWMutex
	params Params

	bound    float64
	addNoise bool
	flock    []*Boid

	workers int
	log     *zap.Logger

	// Throughput accounting, reported once per second.
	ticks   int
	lastLog time.Time
}

// NewWorld spawns cfg.NumBoids boids at random positions and headings.
// Pass a nil logger to disable logging.
func NewWorld(cfg *Config, logger *zap.Logger) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid world config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	flock := make([]*Boid, cfg.NumBoids)
	for i := range flock {
		flock[i] = New(i, cfg.Bound, cfg.Params.Velocity)
	}

	logger.Info("world spawned",
		zap.Int("boids", cfg.NumBoids),
		zap.Float64("bound", cfg.Bound))

	return &World{
		params:   cfg.Params,
		bound:    cfg.Bound,
		addNoise: cfg.AddNoise,
		flock:    flock,
		workers:  runtime.GOMAXPROCS(0),
		log:      logger,
		lastLog:  time.Now(),
	}, nil
}

// Bound returns the side length of the world square.
func (w *World) Bound() float64 { return w.bound }

// Params returns the current parameter snapshot.
func (w *World) Params() Params {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.params
}

// SetParams validates and atomically replaces the shared parameters. The
// new values take effect at the next tick; a tick in progress keeps its
// own snapshot.
func (w *World) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	w.mu.Lock()
	w.params = p
	w.mu.Unlock()
	return nil
}

// ResetParams restores the stock defaults.
func (w *World) ResetParams() {
	w.mu.Lock()
	w.params = DefaultParams()
	w.mu.Unlock()
}

// Snapshot returns value copies of every boid, in flock order. This is the
// read-only observation channel for renderers.
func (w *World) Snapshot() []State {
	states := make([]State, len(w.flock))
	for i, b := range w.flock {
		states[i] = b.State()
	}
	return states
}

// Tick runs one simulation step in two strict passes.
//
// Pass 1 (read): every boid discovers its neighbors and computes its next
// heading against the same immutable pre-tick snapshot, so a heading
// written for boid i is never observed by boid j in the same pass. Each
// boid writes only its own heading, which makes the pass embarrassingly
// parallel; it is chunked across workers.
//
// Pass 2 (write): every boid integrates its position using the pass-1
// headings. The two-pass barrier makes the result independent of flock
// iteration order, up to floating-point summation order.
func (w *World) Tick() {
	p := w.Params()
	sep := p.SeparationMode.contribution()
	snap := w.Snapshot()

	g := new(errgroup.Group)
	chunk := (len(w.flock) + w.workers - 1) / w.workers
	if chunk < 1 {
		chunk = 1
	}
	for start := 0; start < len(w.flock); start += chunk {
		end := min(start+chunk, len(w.flock))
		g.Go(func() error {
			for i := start; i < end; i++ {
				near := Neighbors(snap[i], snap, p.SenseRange)
				w.flock[i].Heading = adjustedHeading(snap[i], near, p, sep)
			}
			return nil
		})
	}
	// Workers never return errors; Wait is the pass barrier.
	_ = g.Wait()

	for _, b := range w.flock {
		b.Move(w.bound, w.addNoise, p)
	}

	w.countTick()
}

func (w *World) countTick() {
	w.ticks++
	if time.Since(w.lastLog) >= time.Second {
		w.log.Debug("tick rate",
			zap.Int("ticksPerSec", w.ticks),
			zap.Int("boids", len(w.flock)))
		w.ticks = 0
		w.lastLog = time.Now()
	}
}
