package systems

import (
	"github.com/automoto/wishcake/components"
	cfg "github.com/automoto/wishcake/config"
	"github.com/automoto/wishcake/layout"
	"github.com/automoto/wishcake/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateReveals starts each entrance animation once its section has
// scrolled far enough into view, and advances the running ones
func UpdateReveals(e *ecs.ECS) {
	camera, page, ok := cameraAndPage(e)
	if !ok {
		return
	}
	dt := tickDuration()

	components.Reveal.Each(e.World, func(entry *donburi.Entry) {
		reveal := components.Reveal.Get(entry)
		if !reveal.Started {
			section, ok := page.Layout.Section(reveal.Section)
			if !ok || !revealTriggered(section, reveal.Trigger, camera.Position.Y, camera.Height) {
				return
			}
			reveal.Started = true
			reveal.Timeline.Play()
		}
		reveal.Timeline.Update(dt)
	})
}

// revealTriggered reports whether the section top has crossed trigger
// (a fraction of the viewport height from its top). Zero triggers on load.
func revealTriggered(section layout.Rect, trigger, scrollY, viewHeight float64) bool {
	if trigger <= 0 {
		return true
	}
	return section.Y <= scrollY+trigger*viewHeight
}

// UpdateFloats advances each decoration's looping bob
func UpdateFloats(e *ecs.ECS) {
	dt := float32(tickDuration().Seconds())

	tags.Float.Each(e.World, func(entry *donburi.Entry) {
		f := components.Float.Get(entry)
		if f.Delay > 0 {
			f.Delay -= dt
			return
		}

		seq := components.Tween.Get(entry)
		phase, _, done := seq.Update(dt)
		if done {
			seq.Reset()
		}
		f.Phase = float64(phase)
		f.OffsetX = f.Phase * cfg.Float.X
		f.OffsetY = f.Phase * cfg.Float.Y
	})
}

// UpdateParallax scrubs background layers with the cake section's progress
// through the viewport
func UpdateParallax(e *ecs.ECS) {
	camera, page, ok := cameraAndPage(e)
	if !ok {
		return
	}
	section, ok := page.Layout.Section(layout.SectionCake)
	if !ok {
		return
	}
	p := sectionProgress(section, camera.Position.Y, camera.Height)

	tags.Parallax.Each(e.World, func(entry *donburi.Entry) {
		layer := components.Parallax.Get(entry)
		layer.OffsetY = parallaxOffset(layer.Index, p)
	})
}

func parallaxOffset(index int, progress float64) float64 {
	return -float64(index+1) * cfg.Parallax.Step * progress
}
