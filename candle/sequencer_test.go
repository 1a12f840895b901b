package candle

import (
	"math"
	"testing"
	"time"
)

type countingStarter struct {
	starts int
}

func (c *countingStarter) Start() {
	c.starts++
}

var testPulse = PulseConfig{HalfCycle: 700 * ms, ScaleX: 0.98, ScaleY: 1.08, Y: -2}

func newTestSequencer() (*Sequencer, Elements, *countingStarter) {
	el := Elements{
		Flame:  NewElement(1),
		Smoke:  NewElement(0),
		Reveal: NewElement(0),
	}
	starter := &countingStarter{}
	return NewSequencer(el, testPulse, starter), el, starter
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

// advance runs the sequencer in 10ms steps for d.
func advance(s *Sequencer, d time.Duration) {
	for step := 10 * ms; d > 0; d -= step {
		if d < step {
			step = d
		}
		s.Update(step)
	}
}

func TestNewSequencerIsLit(t *testing.T) {
	s, _, starter := newTestSequencer()
	if !s.Lit() {
		t.Error("new candle should be lit")
	}
	if !s.Pulse().Looping() {
		t.Error("flame pulse should loop while lit")
	}
	if starter.starts != 0 {
		t.Errorf("starts = %d, want 0", starter.starts)
	}
}

func TestActivateOnlyOnce(t *testing.T) {
	s, el, starter := newTestSequencer()

	if !s.Activate() {
		t.Fatal("first Activate should succeed")
	}
	advance(s, 300*ms)
	flameAlpha := el.Flame.Alpha
	elapsed := s.Elapsed()

	if s.Activate() {
		t.Error("second Activate should be a no-op")
	}
	if starter.starts != 1 {
		t.Errorf("confetti starts = %d, want 1", starter.starts)
	}
	if s.Elapsed() != elapsed || el.Flame.Alpha != flameAlpha {
		t.Error("second Activate restarted the timeline")
	}
	if s.Lit() {
		t.Error("candle should stay out")
	}
}

func TestActivateCancelsPulse(t *testing.T) {
	s, el, _ := newTestSequencer()
	advance(s, 350*ms)
	if el.Flame.ScaleY <= 1 {
		t.Fatalf("pulse should have stretched the flame, ScaleY = %f", el.Flame.ScaleY)
	}

	s.Activate()
	if s.Pulse().Looping() {
		t.Error("pulse should stop on Activate")
	}
}

func TestPulseYoyo(t *testing.T) {
	el := NewElement(1)
	p := NewPulse(el, testPulse)

	p.Update(700 * ms)
	if !near(el.ScaleY, 1.08) || !near(el.ScaleX, 0.98) || !near(el.Y, -2) {
		t.Errorf("at peak: %+v, want ScaleY 1.08 ScaleX 0.98 Y -2", *el)
	}
	p.Update(700 * ms)
	if !near(el.ScaleY, 1) || !near(el.Y, 0) {
		t.Errorf("after full cycle: %+v, want rest", *el)
	}

	p.Update(350 * ms)
	p.Cancel()
	held := *el
	p.Update(500 * ms)
	if *el != held {
		t.Error("cancelled pulse kept writing")
	}
}

func TestBlowOutWindows(t *testing.T) {
	s, el, _ := newTestSequencer()
	s.Activate()

	advance(s, 100*ms)
	if got := s.Active(); len(got) != 1 || got[0] != StepFlameShrink {
		t.Errorf("active at 100ms = %v, want [%s]", got, StepFlameShrink)
	}
	if el.Flame.ScaleY >= 1 || el.Flame.ScaleY <= 0.3 {
		t.Errorf("flame ScaleY at 100ms = %f, want between 0.3 and 1", el.Flame.ScaleY)
	}
	if el.Smoke.Alpha != 0 {
		t.Errorf("smoke alpha at 100ms = %f, want 0", el.Smoke.Alpha)
	}

	advance(s, 70*ms) // 170ms: shrink, flame fade and smoke-in overlap
	if got := s.Active(); len(got) != 3 {
		t.Errorf("active at 170ms = %v, want three overlapping steps", got)
	}

	advance(s, 280*ms) // 450ms
	if el.Flame.Alpha != 0 || el.Flame.ScaleY != 0 {
		t.Errorf("flame at 450ms alpha=%f scaleY=%f, want 0 and 0", el.Flame.Alpha, el.Flame.ScaleY)
	}
	if !near(el.Smoke.Alpha, 1) {
		t.Errorf("smoke alpha at 450ms = %f, want 1", el.Smoke.Alpha)
	}
	if el.Flame.ScaleX != 1.1 || el.Flame.Y != 4 {
		t.Errorf("flame ScaleX=%f Y=%f, want 1.1 and 4", el.Flame.ScaleX, el.Flame.Y)
	}

	advance(s, 490*ms) // 940ms
	if el.Reveal.Alpha != 0 || el.Reveal.Y != 10 {
		t.Errorf("reveal before 950ms alpha=%f y=%f, want 0 and 10", el.Reveal.Alpha, el.Reveal.Y)
	}

	advance(s, 810*ms) // 1750ms
	if el.Reveal.Alpha != 1 || el.Reveal.Y != 0 {
		t.Errorf("reveal at 1750ms alpha=%f y=%f, want 1 and 0", el.Reveal.Alpha, el.Reveal.Y)
	}
	if s.Done() {
		t.Error("smoke is still fading at 1750ms")
	}

	advance(s, 300*ms) // 2050ms
	if el.Smoke.Alpha != 0 {
		t.Errorf("smoke alpha at 2050ms = %f, want 0", el.Smoke.Alpha)
	}
	if !s.Done() {
		t.Error("sequence should be done at 2050ms")
	}
}

func TestRevealHiddenImmediatelyOnActivate(t *testing.T) {
	s, el, _ := newTestSequencer()
	el.Reveal.Alpha = 0.4
	s.Activate()
	if el.Reveal.Alpha != 0 || el.Reveal.Y != 10 {
		t.Errorf("reveal after Activate alpha=%f y=%f, want 0 and 10", el.Reveal.Alpha, el.Reveal.Y)
	}
}

func TestMissingElementsAreSkipped(t *testing.T) {
	starter := &countingStarter{}
	s := NewSequencer(Elements{}, testPulse, starter)
	advance(s, 100*ms)

	if !s.Activate() {
		t.Fatal("Activate should work without elements")
	}
	advance(s, 2100*ms)
	if !s.Done() {
		t.Error("sequence should complete without elements")
	}
	if starter.starts != 1 {
		t.Errorf("confetti starts = %d, want 1", starter.starts)
	}
}

func TestPartialElements(t *testing.T) {
	reveal := NewElement(0)
	s := NewSequencer(Elements{Reveal: reveal}, testPulse, nil)
	s.Activate()
	advance(s, 2050*ms)
	if reveal.Alpha != 1 {
		t.Errorf("reveal alpha = %f, want 1", reveal.Alpha)
	}
}
