package systems

import (
	"github.com/automoto/wishcake/components"
	"github.com/automoto/wishcake/layout"
	"github.com/automoto/wishcake/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SubscribePointer routes clicks and taps to the element under them. Call
// once when the scene is configured.
func SubscribePointer(e *ecs.ECS) {
	components.PointerEventType.Subscribe(e.World, func(w donburi.World, ev components.PointerEvent) {
		handlePointer(e, ev)
	})
}

// ProcessPointerEvents delivers the pointer events published this tick
func ProcessPointerEvents(e *ecs.ECS) {
	components.PointerEventType.ProcessEvents(e.World)
}

func handlePointer(e *ecs.ECS, ev components.PointerEvent) {
	hitBox := pointerHitBox(e)
	if hitBox == nil {
		return
	}

	hits := objectsAt(hitBox, ev.X, ev.Y, tags.ResolvCandle, tags.ResolvScrollButton)
	// Restore the hit box to the cursor for hover checks
	defer syncHitBox(e, hitBox)

	for _, obj := range hits {
		switch {
		case obj.HasTags(tags.ResolvCandle):
			ActivateCandle(e)
		case obj.HasTags(tags.ResolvScrollButton):
			scrollToWishes(e)
		}
	}
}

func scrollToWishes(e *ecs.ECS) {
	pageEntry, ok := components.Page.First(e.World)
	if !ok {
		return
	}
	page := components.Page.Get(pageEntry)
	if page.Layout == nil {
		return
	}
	if section, ok := page.Layout.Section(layout.SectionWishes); ok {
		ScrollTo(e, section.Y)
	}
}

func pointerHitBox(e *ecs.ECS) *resolv.Object {
	entry, ok := components.Pointer.First(e.World)
	if !ok || !entry.HasComponent(components.Object) {
		return nil
	}
	return components.Object.Get(entry).Object
}

func syncHitBox(e *ecs.ECS, hitBox *resolv.Object) {
	entry, ok := components.Pointer.First(e.World)
	if !ok {
		return
	}
	pointer := components.Pointer.Get(entry)
	hitBox.X, hitBox.Y = pointer.PageX, pointer.PageY
	hitBox.Update()
}

// objectsAt moves the hit box to (x, y) and returns the tagged objects that
// contain that point. The resolv check is cell based, so hits are narrowed
// with an exact bounds test.
func objectsAt(hitBox *resolv.Object, x, y float64, tags ...string) []*resolv.Object {
	hitBox.X, hitBox.Y = x, y
	hitBox.Update()

	check := hitBox.Check(0, 0, tags...)
	if check == nil {
		return nil
	}

	var hits []*resolv.Object
	for _, obj := range check.Objects {
		if x >= obj.X && x < obj.X+obj.W && y >= obj.Y && y < obj.Y+obj.H {
			hits = append(hits, obj)
		}
	}
	return hits
}
