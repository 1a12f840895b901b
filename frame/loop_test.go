package frame

import (
	"testing"
	"time"
)

func TestTickRunsPendingInOrder(t *testing.T) {
	l := NewLoop()
	var got []int
	l.RequestFrame(func(time.Duration) { got = append(got, 1) })
	l.RequestFrame(func(time.Duration) { got = append(got, 2) })

	if ran := l.Tick(16 * time.Millisecond); ran != 2 {
		t.Fatalf("ran = %d, want 2", ran)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("order = %v, want [1 2]", got)
	}
	if l.Pending() != 0 {
		t.Errorf("pending = %d, want 0", l.Pending())
	}
}

func TestTickPassesTimestamp(t *testing.T) {
	l := NewLoop()
	var seen time.Duration
	l.RequestFrame(func(now time.Duration) { seen = now })
	l.Tick(42 * time.Millisecond)
	if seen != 42*time.Millisecond {
		t.Errorf("now = %v, want 42ms", seen)
	}
}

func TestRequestDuringTickRunsNextTick(t *testing.T) {
	l := NewLoop()
	calls := 0
	var step Callback
	step = func(time.Duration) {
		calls++
		l.RequestFrame(step)
	}
	l.RequestFrame(step)

	l.Tick(0)
	if calls != 1 {
		t.Fatalf("calls after first tick = %d, want 1", calls)
	}
	l.Tick(16 * time.Millisecond)
	if calls != 2 {
		t.Errorf("calls after second tick = %d, want 2", calls)
	}
	if l.Pending() != 1 {
		t.Errorf("pending = %d, want 1", l.Pending())
	}
}

func TestCancelFrame(t *testing.T) {
	l := NewLoop()
	fired := false
	id := l.RequestFrame(func(time.Duration) { fired = true })
	l.CancelFrame(id)

	if ran := l.Tick(0); ran != 0 {
		t.Errorf("ran = %d, want 0", ran)
	}
	if fired {
		t.Error("cancelled callback fired")
	}
}

func TestCancelFromEarlierCallbackInSameTick(t *testing.T) {
	l := NewLoop()
	fired := false
	var second ID
	l.RequestFrame(func(time.Duration) { l.CancelFrame(second) })
	second = l.RequestFrame(func(time.Duration) { fired = true })

	l.Tick(0)
	if fired {
		t.Error("callback cancelled mid-tick still fired")
	}
}

func TestCancelUnknownIDsIgnored(t *testing.T) {
	l := NewLoop()
	id := l.RequestFrame(func(time.Duration) {})
	l.Tick(0)

	// Already ran, zero and never-issued IDs must all be harmless.
	l.CancelFrame(id)
	l.CancelFrame(0)
	l.CancelFrame(999)

	if l.Pending() != 0 {
		t.Errorf("pending = %d, want 0", l.Pending())
	}
}

func TestManualClock(t *testing.T) {
	c := &ManualClock{}
	c.Advance(16 * time.Millisecond)
	c.Advance(16 * time.Millisecond)
	if c.Now() != 32*time.Millisecond {
		t.Errorf("Now() = %v, want 32ms", c.Now())
	}
}
