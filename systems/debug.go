package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/wishcake/components"
	"github.com/automoto/wishcake/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		viewX, viewY := camera.Position.X, camera.Position.Y
		viewW, viewH := camera.Width, camera.Height

		for _, obj := range space.Objects() {
			// Cull objects outside viewport
			if obj.X+obj.W < viewX || obj.X > viewX+viewW || obj.Y+obj.H < viewY || obj.Y > viewY+viewH {
				continue
			}

			x := obj.X - viewX
			y := obj.Y - viewY

			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvCandle) {
				c = color.RGBA{255, 160, 0, 255} // Orange
			} else if obj.HasTags(tags.ResolvCard) {
				c = color.RGBA{255, 0, 255, 255} // Magenta
			} else if obj.HasTags(tags.ResolvScrollButton) {
				c = color.RGBA{0, 255, 0, 255} // Green
			} else if obj.HasTags(tags.ResolvPointer) {
				c = color.RGBA{255, 0, 0, 255} // Red
			}

			// Draw outline
			vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
			vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
			vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
			vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
		}
	}

	ebitenutil.DebugPrintAt(screen, debugStats(ecs, camera), 8, 8)
}

func debugStats(ecs *ecs.ECS, camera *components.CameraData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS %.0f  TPS %.0f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	fmt.Fprintf(&b, "scroll %.0f -> %.0f  view %.0fx%.0f\n", camera.Position.Y, camera.Target.Y, camera.Width, camera.Height)

	if entry, ok := components.Confetti.First(ecs.World); ok {
		data := components.Confetti.Get(entry)
		w, h := data.System.Bounds()
		fmt.Fprintf(&b, "confetti running=%v n=%d t=%v bounds=%.0fx%.0f\n",
			data.System.Running(), data.System.Len(), data.System.Elapsed(), w, h)
	}
	if entry, ok := tags.Candle.First(ecs.World); ok {
		seq := components.Candle.Get(entry).Sequencer
		fmt.Fprintf(&b, "candle lit=%v t=%v steps=%v\n", seq.Lit(), seq.Elapsed(), seq.Active())
	}
	if switcher := themeSwitcher(ecs); switcher != nil {
		fmt.Fprintf(&b, "theme %v\n", switcher.Classes())
	}
	return b.String()
}
