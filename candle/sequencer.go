// Package candle sequences the "blow out the candle" transition.
package candle

import (
	"time"

	"github.com/automoto/wishcake/timeline"
	"github.com/tanema/gween/ease"
)

// Starter is started once when the candle is blown out.
type Starter interface {
	Start()
}

// Step names of the blow-out timeline.
const (
	StepFlameShrink = "flame-shrink"
	StepFlameFade   = "flame-fade"
	StepSmokeIn     = "smoke-in"
	StepSmokeOut    = "smoke-out"
	StepReveal      = "reveal"
)

const ms = time.Millisecond

// Sequencer owns the lit flag, the idle flame pulse and the blow-out timeline.
type Sequencer struct {
	lit      bool
	elements Elements
	pulse    *Pulse
	timeline *timeline.Timeline
	confetti Starter
}

// NewSequencer creates a lit candle. confetti may be nil.
func NewSequencer(el Elements, pulse PulseConfig, confetti Starter) *Sequencer {
	return &Sequencer{
		lit:      true,
		elements: el,
		pulse:    NewPulse(el.Flame, pulse),
		timeline: BlowOutTimeline(el),
		confetti: confetti,
	}
}

// BlowOutTimeline builds the fixed extinguish sequence for el. Offsets are
// measured from activation: the flame fade overlaps the shrink by 50ms, the
// smoke fades in alongside it, and the reveal starts 1.1s before the smoke
// has finished fading out.
func BlowOutTimeline(el Elements) *timeline.Timeline {
	f, s, r := el.Flame, el.Smoke, el.Reveal
	return timeline.New(
		timeline.Step{
			Name: StepFlameShrink, Offset: 0, Duration: 200 * ms,
			Tracks: []timeline.Track{
				{Target: field(f, scaleY), To: 0.3, Ease: ease.InQuad},
				{Target: field(f, scaleX), To: 1.1, Ease: ease.InQuad},
				{Target: field(f, posY), To: 4, Ease: ease.InQuad},
			},
		},
		timeline.Step{
			Name: StepFlameFade, Offset: 150 * ms, Duration: 300 * ms,
			Tracks: []timeline.Track{
				{Target: field(f, alpha), To: 0, Ease: ease.OutQuad},
				{Target: field(f, scaleY), To: 0, Ease: ease.OutQuad},
			},
		},
		timeline.Step{
			Name: StepSmokeIn, Offset: 150 * ms, Duration: 300 * ms,
			Tracks: []timeline.Track{
				{Target: field(s, alpha), To: 1, Ease: ease.OutQuad},
			},
		},
		timeline.Step{
			Name: StepSmokeOut, Offset: 450 * ms, Duration: 1600 * ms,
			Tracks: []timeline.Track{
				{Target: field(s, alpha), To: 0, Ease: ease.OutCubic},
			},
		},
		timeline.Step{
			Name: StepReveal, Offset: 950 * ms, Duration: 800 * ms,
			Tracks: []timeline.Track{
				{Target: field(r, alpha), From: timeline.From(0), To: 1, Ease: ease.OutCubic},
				{Target: field(r, posY), From: timeline.From(10), To: 0, Ease: ease.OutCubic},
			},
		},
	)
}

func scaleX(e *Element) *float64 { return &e.ScaleX }
func scaleY(e *Element) *float64 { return &e.ScaleY }
func posY(e *Element) *float64   { return &e.Y }
func alpha(e *Element) *float64  { return &e.Alpha }

// field returns the selected field of e, or nil when e is absent.
func field(e *Element, sel func(*Element) *float64) *float64 {
	if e == nil {
		return nil
	}
	return sel(e)
}

// Activate blows the candle out. It returns false, doing nothing, if the
// candle is already out.
func (s *Sequencer) Activate() bool {
	if !s.lit {
		return false
	}
	s.lit = false
	s.pulse.Cancel()
	s.timeline.Play()
	if s.confetti != nil {
		s.confetti.Start()
	}
	return true
}

// Update advances the idle pulse while lit and the timeline once blown out.
func (s *Sequencer) Update(dt time.Duration) {
	if s.lit {
		s.pulse.Update(dt)
		return
	}
	s.timeline.Update(dt)
}

// Lit reports whether the candle is still burning.
func (s *Sequencer) Lit() bool {
	return s.lit
}

// Done reports whether the blow-out sequence has finished.
func (s *Sequencer) Done() bool {
	return !s.lit && s.timeline.Done()
}

// Elapsed returns the time since activation.
func (s *Sequencer) Elapsed() time.Duration {
	return s.timeline.Elapsed()
}

// Active returns the names of the timeline steps currently running.
func (s *Sequencer) Active() []string {
	return s.timeline.Active()
}

// Pulse returns the idle flame pulse.
func (s *Sequencer) Pulse() *Pulse {
	return s.pulse
}

// Elements returns the animated targets.
func (s *Sequencer) Elements() Elements {
	return s.elements
}
