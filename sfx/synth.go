// Package sfx synthesizes the page's few sound effects so no audio files
// need to ship with it.
package sfx

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"time"

	cfg "github.com/automoto/wishcake/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

type oscillator struct {
	freq     float64
	phase    float64
	position int
	length   int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator streams d worth of wave at freq. freq is ignored for noise.
func NewOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, length: rate.N(d), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveNoise:
			v = rand.Float64()*2 - 1
		}
		samples[i][0], samples[i][1] = v, v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope ramps s up over attack and down over the last release of d.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		samples[i][0] *= e.gain()
		samples[i][1] *= e.gain()
		e.position++
	}
	return n, ok
}

// gain at the current position, in [0, 1]
func (e *envelope) gain() float64 {
	g := 1.0
	if e.attack > 0 && e.position < e.attack {
		g = float64(e.position) / float64(e.attack)
	}
	if start := e.total - e.release; e.release > 0 && e.position >= start {
		g = math.Min(g, float64(e.total-e.position)/float64(e.release))
	}
	return math.Max(g, 0)
}

func (e *envelope) Err() error { return e.streamer.Err() }

// volume scales s linearly; zero or less silences it.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// Puff is a short breath of noise for the candle going out.
func Puff(rate beep.SampleRate) beep.Streamer {
	s := cfg.Sound
	noise := NewOscillator(0, s.PuffDuration, WaveNoise, rate)
	return NewEnvelope(noise, s.PuffDuration, s.PuffAttack, s.PuffRelease, rate)
}

// Chime is a rising sine arpeggio that lands with the confetti.
func Chime(rate beep.SampleRate) beep.Streamer {
	s := cfg.Sound
	voices := make([]beep.Streamer, 0, len(s.ChimeNotes))
	for i, freq := range s.ChimeNotes {
		note := NewOscillator(freq, s.ChimeDuration, WaveSine, rate)
		shaped := NewEnvelope(note, s.ChimeDuration, 5*time.Millisecond, s.ChimeRelease, rate)
		lead := s.ChimeDelay + time.Duration(i)*s.ChimeSpacing
		voices = append(voices, beep.Seq(beep.Silence(rate.N(lead)), volume(shaped, 1/float64(len(s.ChimeNotes)))))
	}
	return beep.Take(rate.N(ChimeLength()), beep.Mix(voices...))
}

// ChimeLength is the full duration of Chime including its lead-in.
func ChimeLength() time.Duration {
	s := cfg.Sound
	if len(s.ChimeNotes) == 0 {
		return 0
	}
	return s.ChimeDelay + time.Duration(len(s.ChimeNotes)-1)*s.ChimeSpacing + s.ChimeDuration
}

// Click is the tick played when the mood changes.
func Click(rate beep.SampleRate) beep.Streamer {
	s := cfg.Sound
	sq := NewOscillator(s.ClickFreq, s.ClickDuration, WaveSquare, rate)
	return NewEnvelope(sq, s.ClickDuration, 2*time.Millisecond, s.ClickDuration*3/4, rate)
}

// Effect returns the streamer for id at its configured volume, or nil.
func Effect(id cfg.SoundID, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch id {
	case cfg.SoundPuff:
		s = Puff(rate)
	case cfg.SoundChime:
		s = Chime(rate)
	case cfg.SoundClick:
		s = Click(rate)
	default:
		return nil
	}
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		s = volume(s, mult)
	}
	return s
}

// Render drains s into 16-bit little-endian stereo PCM.
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(v)))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// RenderAll renders every known effect at rate.
func RenderAll(rate int) map[cfg.SoundID][]byte {
	clips := make(map[cfg.SoundID][]byte)
	for _, id := range []cfg.SoundID{cfg.SoundPuff, cfg.SoundChime, cfg.SoundClick} {
		if s := Effect(id, beep.SampleRate(rate)); s != nil {
			clips[id] = Render(s)
		}
	}
	return clips
}
