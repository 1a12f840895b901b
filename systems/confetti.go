package systems

import (
	"github.com/automoto/wishcake/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateConfetti runs the pending frame callbacks once per tick
func UpdateConfetti(e *ecs.ECS) {
	entry, ok := components.Confetti.First(e.World)
	if !ok {
		return
	}
	data := components.Confetti.Get(entry)
	data.Frames.Tick(data.Clock.Now())
}

// ResizeConfetti matches the canvas to the viewport. The old canvas is
// released and the system picks up the new bounds immediately.
func ResizeConfetti(e *ecs.ECS, width, height int) {
	entry, ok := components.Confetti.First(e.World)
	if !ok || width <= 0 || height <= 0 {
		return
	}
	data := components.Confetti.Get(entry)
	if data.Canvas != nil {
		b := data.Canvas.Bounds()
		if b.Dx() == width && b.Dy() == height {
			return
		}
		data.Canvas.Deallocate()
	}
	data.Canvas = ebiten.NewImage(width, height)
	data.System.Resize(float64(width), float64(height))
}

// DrawConfetti composites the confetti canvas over the page
func DrawConfetti(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Confetti.First(e.World)
	if !ok {
		return
	}
	data := components.Confetti.Get(entry)
	if data.Canvas == nil || !data.System.Running() {
		return
	}
	screen.DrawImage(data.Canvas, nil)
}
