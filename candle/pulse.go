package candle

import (
	"math"
	"time"

	"github.com/tanema/gween/ease"
)

// PulseConfig shapes the idle flicker of a lit flame.
type PulseConfig struct {
	HalfCycle time.Duration // one direction of the yoyo
	ScaleX    float64
	ScaleY    float64
	Y         float64
}

// Pulse is the looping flame flicker. It is either looping or stopped; once
// cancelled it leaves the flame wherever the last update put it.
type Pulse struct {
	cfg     PulseConfig
	target  *Element
	t       time.Duration
	looping bool
}

// NewPulse starts a looping pulse on target. A nil target yields a pulse
// that loops without writing anything.
func NewPulse(target *Element, cfg PulseConfig) *Pulse {
	return &Pulse{cfg: cfg, target: target, looping: true}
}

// Looping reports whether the pulse is still running.
func (p *Pulse) Looping() bool {
	return p.looping
}

// Cancel stops the pulse.
func (p *Pulse) Cancel() {
	p.looping = false
}

// Update advances the pulse by dt.
func (p *Pulse) Update(dt time.Duration) {
	if !p.looping || p.target == nil || p.cfg.HalfCycle <= 0 {
		return
	}
	p.t += dt

	half := float32(p.cfg.HalfCycle.Seconds())
	cycle := math.Mod(p.t.Seconds(), 2*p.cfg.HalfCycle.Seconds())
	phase := float32(cycle)
	if phase > half {
		phase = 2*half - phase
	}
	k := float64(ease.InOutSine(phase, 0, 1, half))

	p.target.ScaleX = 1 + (p.cfg.ScaleX-1)*k
	p.target.ScaleY = 1 + (p.cfg.ScaleY-1)*k
	p.target.Y = p.cfg.Y * k
}
