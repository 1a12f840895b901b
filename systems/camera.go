package systems

import (
	"math"

	"github.com/automoto/wishcake/components"
	"github.com/automoto/wishcake/config"
	"github.com/automoto/wishcake/layout"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera moves the page scroll target from keys and the wheel, then
// eases the viewport toward it.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	pageEntry, ok := components.Page.First(e.World)
	if !ok {
		return
	}
	page := components.Page.Get(pageEntry)
	if page.Layout == nil {
		return
	}

	input := getOrCreateInput(e)

	if GetAction(input, config.ActionScrollDown).Pressed {
		camera.Target.Y += config.Page.KeyStep
	}
	if GetAction(input, config.ActionScrollUp).Pressed {
		camera.Target.Y -= config.Page.KeyStep
	}
	if GetAction(input, config.ActionPageDown).JustPressed {
		camera.Target.Y += camera.Height * config.Page.PageStepRatio
	}
	if GetAction(input, config.ActionPageUp).JustPressed {
		camera.Target.Y -= camera.Height * config.Page.PageStepRatio
	}
	if GetAction(input, config.ActionScrollTop).JustPressed {
		camera.Target.Y = 0
	}
	if GetAction(input, config.ActionScrollWishes).JustPressed {
		scrollToSection(camera, page.Layout, layout.SectionWishes)
	}

	// Wheel up is positive, which scrolls toward the top
	camera.Target.Y -= input.Wheel * config.Page.WheelStep

	pageHeight := float64(page.Layout.Height)
	camera.Target.Y = clampScroll(camera.Target.Y, pageHeight, camera.Height)
	camera.Position.Y = approach(camera.Position.Y, camera.Target.Y, config.Page.ScrollSmoothing, config.Page.SnapDistance)

	// Center the page horizontally in wide windows
	camera.Position.X = centerOffset(float64(page.Layout.Width), camera.Width)
	camera.Target.X = camera.Position.X
}

// ScrollTo sets the smooth scroll target to page position y
func ScrollTo(e *ecs.ECS, y float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	components.Camera.Get(cameraEntry).Target.Y = y
}

func scrollToSection(camera *components.CameraData, page *layout.Page, name string) {
	section, ok := page.Section(name)
	if !ok {
		return
	}
	camera.Target.Y = section.Y
}

// clampScroll keeps the viewport inside the page
func clampScroll(y, pageHeight, viewHeight float64) float64 {
	maxY := math.Max(0, pageHeight-viewHeight)
	return math.Max(0, math.Min(maxY, y))
}

// approach lerps cur toward target and snaps once within snap
func approach(cur, target, smoothing, snap float64) float64 {
	cur += (target - cur) * smoothing
	if math.Abs(target-cur) < snap {
		return target
	}
	return cur
}

// centerOffset is the camera X that centers a page narrower than the viewport
func centerOffset(pageWidth, viewWidth float64) float64 {
	if viewWidth <= pageWidth {
		return 0
	}
	return -(viewWidth - pageWidth) / 2
}

// sectionProgress is how far a section has travelled through the viewport,
// from its top touching the viewport bottom (0) to its bottom leaving the
// viewport top (1).
func sectionProgress(section layout.Rect, scrollY, viewHeight float64) float64 {
	span := section.H + viewHeight
	if span <= 0 {
		return 0
	}
	p := (scrollY + viewHeight - section.Y) / span
	return math.Max(0, math.Min(1, p))
}
