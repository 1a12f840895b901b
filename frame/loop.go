// Package frame schedules callbacks to run once on the next display frame.
//
// A Loop is the game-loop counterpart of a browser's requestAnimationFrame:
// callers request a callback, the host drives Tick once per frame, and every
// callback pending at the start of the tick runs exactly once. Callbacks
// requested while a tick is running wait for the following tick, so a
// callback that reschedules itself never runs twice in one frame.
package frame

import "time"

// ID identifies a pending frame request. The zero ID is never issued.
type ID uint64

// Callback receives the host's timestamp for the frame being run.
type Callback func(now time.Duration)

type request struct {
	id ID
	cb Callback
}

// Loop holds pending frame requests. It is not safe for concurrent use; it
// is driven from the single update goroutine.
type Loop struct {
	nextID  ID
	pending []request
	running []request
}

// NewLoop creates an empty Loop.
func NewLoop() *Loop {
	return &Loop{}
}

// RequestFrame schedules cb for the next Tick and returns its ID.
func (l *Loop) RequestFrame(cb Callback) ID {
	l.nextID++
	l.pending = append(l.pending, request{id: l.nextID, cb: cb})
	return l.nextID
}

// CancelFrame removes a pending request. Unknown IDs, IDs that already ran
// and the zero ID are ignored.
func (l *Loop) CancelFrame(id ID) {
	if id == 0 {
		return
	}
	for i, r := range l.pending {
		if r.id == id {
			l.pending = append(l.pending[:i], l.pending[i+1:]...)
			return
		}
	}
	// A request cancelled by an earlier callback of the same tick must not run.
	for i := range l.running {
		if l.running[i].id == id {
			l.running[i].cb = nil
			return
		}
	}
}

// Pending returns the number of requests waiting for the next tick.
func (l *Loop) Pending() int {
	return len(l.pending)
}

// Tick runs every callback that was pending when the tick started, in
// request order, and returns how many ran.
func (l *Loop) Tick(now time.Duration) int {
	if len(l.pending) == 0 {
		return 0
	}

	l.running, l.pending = l.pending, l.running[:0]
	ran := 0
	for i := range l.running {
		cb := l.running[i].cb
		if cb == nil {
			continue
		}
		l.running[i].cb = nil
		cb(now)
		ran++
	}
	l.running = l.running[:0]
	return ran
}
