package systems

import (
	"image"
	"testing"

	"github.com/automoto/wishcake/components"
	cfg "github.com/automoto/wishcake/config"
	"github.com/automoto/wishcake/systems/factory"
	"github.com/solarlune/resolv"
)

func TestObjectsAtExactBounds(t *testing.T) {
	space := resolv.NewSpace(256, 256, 16, 16)
	target := resolv.NewObject(100, 100, 16, 16, "target")
	other := resolv.NewObject(100, 100, 16, 16, "other")
	hitBox := resolv.NewObject(0, 0, 1, 1, "cursor")
	space.Add(target, other, hitBox)

	if hits := objectsAt(hitBox, 108, 108, "target"); len(hits) != 1 || hits[0] != target {
		t.Errorf("inside hit = %v, want the target only", hits)
	}
	// Same resolv cell, outside the object
	if hits := objectsAt(hitBox, 117, 108, "target"); len(hits) != 0 {
		t.Errorf("outside hit = %v, want none", hits)
	}
	if hits := objectsAt(hitBox, 5, 5, "target"); len(hits) != 0 {
		t.Errorf("far away hit = %v, want none", hits)
	}
}

func TestClickCandleBlowsItOut(t *testing.T) {
	w := newTestWorld()
	entry := factory.CreateCandle(w.ecs, w.space, w.page, nil)
	if entry == nil {
		t.Fatal("candle not created")
	}
	seq := components.Candle.Get(entry).Sequencer

	SubscribePointer(w.ecs)
	components.PointerEventType.Publish(w.ecs.World, components.PointerEvent{
		Kind: components.PointerClick, X: 400, Y: 1450,
	})
	ProcessPointerEvents(w.ecs)

	if seq.Lit() {
		t.Fatal("candle should be out after a click on it")
	}
	pending := getOrCreateAudio(w.ecs).PendingSFX
	if len(pending) != 2 || pending[0] != cfg.SoundPuff || pending[1] != cfg.SoundChime {
		t.Errorf("queued sounds = %v, want puff then chime", pending)
	}
}

func TestClickFlameBlowsCandleOut(t *testing.T) {
	w := newTestWorld()
	entry := factory.CreateCandle(w.ecs, w.space, w.page, nil)
	seq := components.Candle.Get(entry).Sequencer

	handlePointer(w.ecs, components.PointerEvent{Kind: components.PointerTap, X: 400, Y: 1400})
	if seq.Lit() {
		t.Error("a tap on the flame should blow the candle out")
	}
}

func TestActivateCandleOnce(t *testing.T) {
	w := newTestWorld()
	factory.CreateCandle(w.ecs, w.space, w.page, nil)

	if !ActivateCandle(w.ecs) {
		t.Fatal("first activation should succeed")
	}
	if ActivateCandle(w.ecs) {
		t.Error("second activation should do nothing")
	}
	if got := len(getOrCreateAudio(w.ecs).PendingSFX); got != 2 {
		t.Errorf("queued %d sounds, want 2", got)
	}
}

func TestClickScrollButton(t *testing.T) {
	w := newTestWorld()
	factory.CreateScrollButton(w.ecs, w.space, w.page)

	handlePointer(w.ecs, components.PointerEvent{Kind: components.PointerClick, X: 400, Y: 450})
	if got := w.camera().Target.Y; got != 600 {
		t.Errorf("target = %v, want the wishes section at 600", got)
	}
}

func TestClickElsewhere(t *testing.T) {
	w := newTestWorld()
	entry := factory.CreateCandle(w.ecs, w.space, w.page, nil)
	factory.CreateScrollButton(w.ecs, w.space, w.page)

	handlePointer(w.ecs, components.PointerEvent{Kind: components.PointerClick, X: 20, Y: 20})
	if !components.Candle.Get(entry).Sequencer.Lit() {
		t.Error("candle should still be lit")
	}
	if got := w.camera().Target.Y; got != 0 {
		t.Errorf("target = %v, want unchanged", got)
	}
}

func TestHandlePointerRestoresHitBox(t *testing.T) {
	w := newTestWorld()
	entry, _ := components.Pointer.First(w.ecs.World)
	pointer := components.Pointer.Get(entry)
	pointer.PageX, pointer.PageY = 50, 60

	handlePointer(w.ecs, components.PointerEvent{X: 400, Y: 1450})
	hitBox := pointerHitBox(w.ecs)
	if hitBox.X != 50 || hitBox.Y != 60 {
		t.Errorf("hit box at (%v, %v), want the cursor at (50, 60)", hitBox.X, hitBox.Y)
	}
}

// moodBarRect matches the default top-right mood bar in an 800px window
var moodBarRect = image.Rect(430, 0, 800, 42)

func TestClickOnOverlayDoesNotReachPage(t *testing.T) {
	w := newTestWorld()
	factory.CreateScrollButton(w.ecs, w.space, w.page)
	SubscribePointer(w.ecs)
	SetOverlays(w.ecs, moodBarRect)

	camera := w.camera()
	camera.Position.Y = 430
	camera.Target.Y = 430

	// Screen (450, 10) is page (450, 440), inside the scroll button
	if publishPointer(w.ecs, camera, w.pointer(), components.PointerClick, 450, 10) {
		t.Error("click on the overlay should not be published")
	}
	ProcessPointerEvents(w.ecs)
	if got := camera.Target.Y; got != 430 {
		t.Errorf("target = %v, want unchanged 430", got)
	}

	// Same button, outside the overlay
	if !publishPointer(w.ecs, camera, w.pointer(), components.PointerClick, 350, 20) {
		t.Fatal("click beside the overlay should be published")
	}
	ProcessPointerEvents(w.ecs)
	if got := camera.Target.Y; got != 600 {
		t.Errorf("target = %v, want the wishes section at 600", got)
	}
}

func TestTapOnOverlayKeepsCandleLit(t *testing.T) {
	w := newTestWorld()
	entry := factory.CreateCandle(w.ecs, w.space, w.page, nil)
	SubscribePointer(w.ecs)
	SetOverlays(w.ecs, image.Rect(300, 0, 500, 42))

	camera := w.camera()
	camera.Position.Y = 1420

	publishPointer(w.ecs, camera, w.pointer(), components.PointerTap, 400, 30)
	ProcessPointerEvents(w.ecs)
	if !components.Candle.Get(entry).Sequencer.Lit() {
		t.Error("a tap on the overlay should not blow the candle out")
	}
}

func TestPointerOverOverlayIsOutsidePage(t *testing.T) {
	w := newTestWorld()
	cards := factory.CreateCards(w.ecs, w.space, w.page, []cfg.Wish{{Title: "Joy"}, {Title: "Cake"}})
	SetOverlays(w.ecs, moodBarRect)

	camera := w.camera()
	camera.Position.Y = 700
	pointer := w.pointer()

	// Screen (500, 30) is page (500, 730), on the second card
	trackPointer(camera, pointer, 500, 30)
	if pointer.Inside {
		t.Fatal("pointer over the overlay should not be inside the page")
	}
	UpdateCards(w.ecs)
	if components.Card.Get(cards[1]).Hovered {
		t.Error("card under the overlay should not be hovered")
	}

	// Below the overlay the card is hovered
	trackPointer(camera, pointer, 500, 60)
	if !pointer.Inside {
		t.Fatal("pointer below the overlay should be inside the page")
	}
	UpdateCards(w.ecs)
	if !components.Card.Get(cards[1]).Hovered {
		t.Error("card below the overlay should be hovered")
	}
}

func TestSetOverlaysReplaces(t *testing.T) {
	w := newTestWorld()
	SetOverlays(w.ecs, moodBarRect, image.Rect(0, 0, 10, 10))
	SetOverlays(w.ecs, moodBarRect)
	if got := len(w.pointer().Overlays); got != 1 {
		t.Errorf("overlays = %d, want 1", got)
	}
	if !overOverlay(w.pointer(), 430, 0) || overOverlay(w.pointer(), 800, 10) || overOverlay(w.pointer(), 5, 5) {
		t.Error("overlay bounds are half-open rectangles")
	}
}
