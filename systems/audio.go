package systems

import (
	"sync"

	"github.com/automoto/wishcake/components"
	cfg "github.com/automoto/wishcake/config"
	"github.com/automoto/wishcake/sfx"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state, created once on the first sound
var (
	globalAudioContext *audio.Context
	globalClips        map[cfg.SoundID][]byte
	audioInitOnce      sync.Once
)

// initGlobalAudio creates the audio context and renders every effect up front
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalClips = sfx.RenderAll(cfg.Audio.SampleRate)
	})
}

// PlaySound queues a sound effect for the next audio update
func PlaySound(e *ecs.ECS, id cfg.SoundID) {
	audioData := getOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, id)
}

// UpdateAudio plays the sounds queued this tick. Queued sounds are dropped
// while muted.
func UpdateAudio(e *ecs.ECS) {
	audioData := getOrCreateAudio(e)
	if len(audioData.PendingSFX) == 0 {
		return
	}
	pending := audioData.PendingSFX
	audioData.PendingSFX = audioData.PendingSFX[:0]
	if cfg.Audio.Muted || cfg.Audio.SFXVolume <= 0 {
		return
	}

	initGlobalAudio()
	for _, id := range pending {
		playSFX(id)
	}
}

func playSFX(id cfg.SoundID) {
	clip, ok := globalClips[id]
	if !ok {
		return
	}
	player := globalAudioContext.NewPlayerFromBytes(clip)
	player.SetVolume(cfg.Audio.SFXVolume)
	player.Play()
}

func getOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
	}
	return components.Audio.Get(entry)
}
