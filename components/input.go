package components

import (
	"image"

	cfg "github.com/automoto/wishcake/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
	Wheel    float64               // Vertical wheel delta this frame, positive scrolls up
}

var Input = donburi.NewComponentType[InputData]()

// PointerData tracks the pointer position in screen and page coordinates
type PointerData struct {
	ScreenX, ScreenY float64
	PageX, PageY     float64
	Inside           bool // false when no cursor is over the page (touch-only, or over UI)

	// Overlays are screen areas owned by on-screen UI this tick. Pointer
	// input inside them never reaches the page.
	Overlays []image.Rectangle
}

var Pointer = donburi.NewComponentType[PointerData]()

// PointerKind distinguishes activation sources
type PointerKind int

const (
	PointerClick PointerKind = iota // mouse button release
	PointerTap                      // touch end
)

// PointerEvent is published once per click or tap, in page coordinates
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// PointerEventType carries activations to the candle, card and scroll systems
var PointerEventType = events.NewEventType[PointerEvent]()
