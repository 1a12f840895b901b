package frame

import "time"

// Clock reports monotonic time since it was created.
type Clock interface {
	Now() time.Duration
}

type wallClock struct {
	start time.Time
}

// NewClock returns a Clock backed by the runtime's monotonic clock.
func NewClock() Clock {
	return wallClock{start: time.Now()}
}

func (c wallClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock is a Clock advanced by hand. Useful for fixed-step hosts and tests.
type ManualClock struct {
	T time.Duration
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Duration {
	return c.T
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.T += d
}
