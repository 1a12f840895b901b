package components

import (
	"github.com/automoto/wishcake/layout"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FloatData is an idle decoration bobbing on a looping tween
type FloatData struct {
	Kind    string
	Delay   float32 // seconds before the loop starts
	Phase   float64 // 0..1 from the tween, mapped to the x/y offsets
	OffsetX float64
	OffsetY float64
}

var Float = donburi.NewComponentType[FloatData]()

// Tween drives looping motion
var Tween = donburi.NewComponentType[gween.Sequence]()

// ParallaxData is a background layer scrubbed by scroll progress
type ParallaxData struct {
	Layer   layout.ParallaxLayer
	Index   int // back to front
	OffsetY float64
}

var Parallax = donburi.NewComponentType[ParallaxData]()
