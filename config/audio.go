package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Blow-out sounds
	SoundPuff
	SoundChime
	// UI sounds
	SoundClick
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	SFXVolume  float64 // 0.0 - 1.0
	Muted      bool
}

// SoundConfig shapes the synthesized effects
type SoundConfig struct {
	PuffDuration  time.Duration
	PuffAttack    time.Duration
	PuffRelease   time.Duration
	ChimeNotes    []float64 // Hz, played as a rising arpeggio
	ChimeSpacing  time.Duration
	ChimeDuration time.Duration
	ChimeRelease  time.Duration
	ChimeDelay    time.Duration // after the puff, so it lands with the confetti
	ClickFreq     float64
	ClickDuration time.Duration

	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		SFXVolume:  0.6,
	}

	Sound = SoundConfig{
		PuffDuration:  380 * time.Millisecond,
		PuffAttack:    15 * time.Millisecond,
		PuffRelease:   320 * time.Millisecond,
		ChimeNotes:    []float64{1046.50, 1318.51, 1567.98}, // C6 E6 G6
		ChimeSpacing:  90 * time.Millisecond,
		ChimeDuration: 420 * time.Millisecond,
		ChimeRelease:  360 * time.Millisecond,
		ChimeDelay:    120 * time.Millisecond,
		ClickFreq:     1200,
		ClickDuration: 30 * time.Millisecond,

		VolumeMultipliers: map[SoundID]float64{
			SoundPuff:  0.5,
			SoundChime: 0.45,
			SoundClick: 0.25,
		},
	}
}
