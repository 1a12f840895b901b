// Package confetti runs a fixed-size pool of falling confetti streaks for a
// bounded time, driven by frame callbacks.
package confetti

import (
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/automoto/wishcake/frame"
)

// Surface is the drawing target the particles are stroked onto.
type Surface interface {
	Clear()
	StrokeLine(x0, y0, x1, y1, width float64, c color.RGBA)
}

// Scheduler requests and cancels frame callbacks. *frame.Loop satisfies it.
type Scheduler interface {
	RequestFrame(cb frame.Callback) frame.ID
	CancelFrame(id frame.ID)
}

// Config holds the tunables of a confetti run.
type Config struct {
	PoolSize      int
	Duration      time.Duration
	SpawnY        float64 // y of freshly spawned and recycled particles
	RecycleMargin float64 // distance below the bottom edge before recycling
	Size          Range
	TiltIncrement Range
	FallSpeed     Range
	SwayStep      float64 // horizontal drift per frame at full sway
	SwayDraw      float64 // draw-only sway amplitude
	StreakLength  float64 // stroke length as a multiple of size
	Palette       []color.RGBA
}

// DefaultConfig returns the standard burst: 220 particles for 5.5 seconds.
func DefaultConfig() Config {
	return Config{
		PoolSize:      220,
		Duration:      5500 * time.Millisecond,
		SpawnY:        -20,
		RecycleMargin: 30,
		Size:          Range{6, 12},
		TiltIncrement: Range{0.02, 0.10},
		FallSpeed:     Range{2, 5},
		SwayStep:      1.2,
		SwayDraw:      12,
		StreakLength:  1.5,
		Palette:       DefaultPalette,
	}
}

// Option configures a System.
type Option func(*System)

// WithConfig replaces the default run configuration.
func WithConfig(cfg Config) Option {
	return func(s *System) { s.cfg = cfg }
}

// WithRand sets the random source used for spawning and recycling.
func WithRand(rng *rand.Rand) Option {
	return func(s *System) { s.rng = rng }
}

// WithBounds sets the initial surface size.
func WithBounds(width, height float64) Option {
	return func(s *System) { s.width, s.height = width, height }
}

// System owns the particle pool and its frame loop. Only one run is active
// at a time; Start while running is a no-op.
type System struct {
	cfg     Config
	surface Surface
	frames  Scheduler
	rng     *rand.Rand

	width, height float64

	pool     []Particle
	running  bool
	elapsed  time.Duration
	last     time.Duration
	baseline bool
	frameID  frame.ID
}

// New creates an idle System with an empty pool.
func New(surface Surface, frames Scheduler, opts ...Option) *System {
	s := &System{
		cfg:     DefaultConfig(),
		surface: surface,
		frames:  frames,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if len(s.cfg.Palette) == 0 {
		s.cfg.Palette = DefaultPalette
	}
	return s
}

// Start fills the pool and begins the per-frame loop. It does nothing while
// a run is already active.
func (s *System) Start() {
	if s.running {
		return
	}
	s.running = true
	s.elapsed = 0
	s.baseline = false

	s.pool = s.pool[:0]
	for i := 0; i < s.cfg.PoolSize; i++ {
		s.pool = append(s.pool, s.spawn())
	}

	s.frameID = s.frames.RequestFrame(s.step)
}

// Stop halts the run, cancels any pending frame and clears the surface. It
// is safe to call when nothing is running.
func (s *System) Stop() {
	s.running = false
	if s.frameID != 0 {
		s.frames.CancelFrame(s.frameID)
		s.frameID = 0
	}
	s.pool = s.pool[:0]
	s.surface.Clear()
}

// Resize updates the surface bounds used for future spawns and recycling.
// Particles already in flight keep their positions.
func (s *System) Resize(width, height float64) {
	s.width, s.height = width, height
}

// Bounds returns the current surface size.
func (s *System) Bounds() (width, height float64) {
	return s.width, s.height
}

// Running reports whether a run is active.
func (s *System) Running() bool {
	return s.running
}

// Elapsed returns the time accumulated by the current or last run.
func (s *System) Elapsed() time.Duration {
	return s.elapsed
}

// Len returns the number of particles in the pool.
func (s *System) Len() int {
	return len(s.pool)
}

// Pool returns a copy of the particles in pool order.
func (s *System) Pool() []Particle {
	out := make([]Particle, len(s.pool))
	copy(out, s.pool)
	return out
}

// spawn creates a particle at the top edge with randomized traits.
func (s *System) spawn() Particle {
	return Particle{
		X:                  s.randomX(),
		Y:                  s.cfg.SpawnY,
		Size:               s.cfg.Size.Random(s.rng),
		TiltAngleIncrement: s.cfg.TiltIncrement.Random(s.rng),
		Color:              s.cfg.Palette[s.rng.IntN(len(s.cfg.Palette))],
		FallSpeed:          s.cfg.FallSpeed.Random(s.rng),
	}
}

func (s *System) randomX() float64 {
	return s.rng.Float64() * s.width
}

// step is the frame callback: advance, draw, recycle, then reschedule or stop.
func (s *System) step(now time.Duration) {
	s.frameID = 0
	if !s.running {
		return
	}

	if !s.baseline {
		s.last = now
		s.baseline = true
	}
	s.elapsed += now - s.last
	s.last = now

	s.surface.Clear()

	bottom := s.height + s.cfg.RecycleMargin
	for i := range s.pool {
		p := &s.pool[i]
		p.advance(s.cfg.SwayStep, s.cfg.SwayDraw)

		x0, y0, x1, y1 := p.streak(s.cfg.StreakLength)
		s.surface.StrokeLine(x0, y0, x1, y1, p.Size, p.Color)

		if p.Y > bottom {
			p.X = s.randomX()
			p.Y = s.cfg.SpawnY
		}
	}

	if s.elapsed >= s.cfg.Duration {
		s.Stop()
		return
	}
	s.frameID = s.frames.RequestFrame(s.step)
}
