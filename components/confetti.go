package components

import (
	"github.com/automoto/wishcake/confetti"
	"github.com/automoto/wishcake/frame"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ConfettiData owns the full-viewport confetti canvas and its frame loop
type ConfettiData struct {
	System *confetti.System
	Frames *frame.Loop
	Clock  frame.Clock
	Canvas *ebiten.Image
}

var Confetti = donburi.NewComponentType[ConfettiData]()
