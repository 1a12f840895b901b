package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the page viewport. Position is the top-left of the visible
// area in page coordinates; Target is where smooth scrolling is heading.
type CameraData struct {
	Position math.Vec2
	Target   math.Vec2
	Width    float64 // viewport size in screen pixels
	Height   float64
}

var Camera = donburi.NewComponentType[CameraData]()

// ToPage converts a screen position to page coordinates
func (c *CameraData) ToPage(x, y float64) (float64, float64) {
	return x + c.Position.X, y + c.Position.Y
}
