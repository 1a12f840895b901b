package components

import (
	cfg "github.com/automoto/wishcake/config"
	"github.com/yohamta/donburi"
)

// CardData tracks a wish card's hover transform. Current values lerp toward
// their targets each tick.
type CardData struct {
	Index   int
	Wish    cfg.Wish
	Hovered bool

	Lift, Scale, TiltX, TiltY float64 // current
	TargetLift, TargetScale   float64
	TargetTiltX, TargetTiltY  float64
	LerpSpeed                 float64
	Shadow, TargetShadow      float64
}

var Card = donburi.NewComponentType[CardData]()
