package systems

import (
	"image"
	"math"

	"github.com/automoto/wishcake/components"
	cfg "github.com/automoto/wishcake/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// UpdateInput polls raw input, updates the InputComponent and publishes
// pointer activations. Must run BEFORE any system reading actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	_, wheelY := ebiten.Wheel()
	input.Wheel = wheelY

	updatePointer(ecs)
}

// updatePointer tracks the cursor and publishes clicks and touch ends
func updatePointer(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	pointerEntry, ok := components.Pointer.First(ecs.World)
	if !ok {
		return
	}
	pointer := components.Pointer.Get(pointerEntry)

	cx, cy := ebiten.CursorPosition()
	trackPointer(camera, pointer, float64(cx), float64(cy))

	if pointerEntry.HasComponent(components.Object) {
		hitBox := components.Object.Get(pointerEntry)
		hitBox.X, hitBox.Y = pointer.PageX, pointer.PageY
		hitBox.Update()
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		publishPointer(ecs, camera, pointer, components.PointerClick, pointer.ScreenX, pointer.ScreenY)
	}

	touchIDs = inpututil.AppendJustReleasedTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		publishPointer(ecs, camera, pointer, components.PointerTap, float64(tx), float64(ty))
	}
}

// trackPointer records the cursor at screen (sx, sy). A cursor over an
// overlay counts as outside the page.
func trackPointer(camera *components.CameraData, pointer *components.PointerData, sx, sy float64) {
	pointer.ScreenX, pointer.ScreenY = sx, sy
	pointer.Inside = sx >= 0 && sy >= 0 && sx < camera.Width && sy < camera.Height &&
		!overOverlay(pointer, sx, sy)
	pointer.PageX, pointer.PageY = camera.ToPage(sx, sy)
}

// publishPointer sends an activation at screen (sx, sy) to the page unless
// an overlay owns that point. It reports whether an event was published.
func publishPointer(ecs *ecs.ECS, camera *components.CameraData, pointer *components.PointerData, kind components.PointerKind, sx, sy float64) bool {
	if overOverlay(pointer, sx, sy) {
		return false
	}
	px, py := camera.ToPage(sx, sy)
	components.PointerEventType.Publish(ecs.World, components.PointerEvent{
		Kind: kind,
		X:    px,
		Y:    py,
	})
	return true
}

// SetOverlays replaces the screen areas covered by UI drawn over the page.
// The scene calls it every tick after laying out its widgets.
func SetOverlays(ecs *ecs.ECS, rects ...image.Rectangle) {
	entry, ok := components.Pointer.First(ecs.World)
	if !ok {
		return
	}
	pointer := components.Pointer.Get(entry)
	pointer.Overlays = append(pointer.Overlays[:0], rects...)
}

func overOverlay(pointer *components.PointerData, sx, sy float64) bool {
	pt := image.Pt(int(math.Floor(sx)), int(math.Floor(sy)))
	for _, r := range pointer.Overlays {
		if pt.In(r) {
			return true
		}
	}
	return false
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
