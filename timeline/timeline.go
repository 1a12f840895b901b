// Package timeline plays a fixed list of tweens against one shared clock.
//
// Every Step starts at an explicit offset from the moment the timeline is
// played, so overlaps between steps are authored as plain numbers instead
// of being derived from the previous step's end.
package timeline

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Track animates a single float field.
type Track struct {
	Target *float64
	// From, when set, is applied as soon as the timeline is played. When
	// nil the start value is read from Target when the step begins.
	From *float64
	To   float64
	Ease ease.TweenFunc
}

// Step is a group of tracks sharing an offset and a duration.
type Step struct {
	Name     string
	Offset   time.Duration
	Duration time.Duration
	Tracks   []Track
}

// End returns the time at which the step finishes.
func (s Step) End() time.Duration {
	return s.Offset + s.Duration
}

type trackState struct {
	Track
	tween *gween.Tween
}

type stepState struct {
	Step
	tracks  []trackState
	local   time.Duration // step-local time already fed to the tweens
	started bool
	done    bool
}

// Timeline is a played-once sequence of steps. The zero value is empty and
// immediately done.
type Timeline struct {
	steps    []*stepState
	clock    time.Duration
	duration time.Duration
	playing  bool
}

// From returns a pointer to v for use as Track.From.
func From(v float64) *float64 {
	return &v
}

// New builds a timeline. Tracks without a target are dropped; a step whose
// tracks were all dropped still occupies its slot on the clock.
func New(steps ...Step) *Timeline {
	tl := &Timeline{}
	for _, s := range steps {
		st := &stepState{Step: s}
		for _, tr := range s.Tracks {
			if tr.Target == nil {
				continue
			}
			if tr.Ease == nil {
				tr.Ease = ease.Linear
			}
			st.tracks = append(st.tracks, trackState{Track: tr})
		}
		tl.steps = append(tl.steps, st)
		if end := s.End(); end > tl.duration {
			tl.duration = end
		}
	}
	return tl
}

// Play rewinds the clock and applies every explicit From value.
func (tl *Timeline) Play() {
	tl.clock = 0
	tl.playing = true
	for _, st := range tl.steps {
		st.started = false
		st.done = false
		for i := range st.tracks {
			tr := &st.tracks[i]
			tr.tween = nil
			if tr.From != nil {
				*tr.Target = *tr.From
			}
		}
	}
	tl.Update(0)
}

// Update advances the shared clock by dt and writes interpolated values.
func (tl *Timeline) Update(dt time.Duration) {
	if !tl.playing {
		return
	}
	tl.clock += dt

	allDone := true
	for _, st := range tl.steps {
		if st.done {
			continue
		}
		if tl.clock < st.Offset {
			allDone = false
			continue
		}
		if !st.started {
			st.begin()
		}

		local := tl.clock - st.Offset
		if local >= st.Duration {
			// Snap to the exact end value; gween works in float32.
			st.done = true
			for i := range st.tracks {
				*st.tracks[i].Target = st.tracks[i].To
			}
			continue
		}

		allDone = false
		step := float32((local - st.local).Seconds())
		st.local = local
		for i := range st.tracks {
			tr := &st.tracks[i]
			v, _ := tr.tween.Update(step)
			*tr.Target = float64(v)
		}
	}

	if allDone {
		tl.playing = false
	}
}

func (st *stepState) begin() {
	st.started = true
	st.local = 0
	d := float32(st.Duration.Seconds())
	for i := range st.tracks {
		tr := &st.tracks[i]
		from := *tr.Target
		if tr.From != nil {
			from = *tr.From
		}
		tr.tween = gween.New(float32(from), float32(tr.To), d, tr.Ease)
	}
}

// Playing reports whether the timeline has been played and not yet finished.
func (tl *Timeline) Playing() bool {
	return tl.playing
}

// Done reports whether every step has completed.
func (tl *Timeline) Done() bool {
	return !tl.playing && tl.clock >= tl.duration
}

// Elapsed returns the shared clock.
func (tl *Timeline) Elapsed() time.Duration {
	return tl.clock
}

// Duration returns the end of the last step.
func (tl *Timeline) Duration() time.Duration {
	return tl.duration
}

// Active returns the names of the steps running at the current clock.
func (tl *Timeline) Active() []string {
	var names []string
	for _, st := range tl.steps {
		if tl.clock >= st.Offset && tl.clock < st.End() {
			names = append(names, st.Name)
		}
	}
	return names
}
