package components

import (
	cfg "github.com/automoto/wishcake/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised during a tick (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
