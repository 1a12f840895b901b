package candle

// Element is the animated visual state of one part of the candle scene.
// Position fields are offsets from the element's layout position.
type Element struct {
	X, Y           float64
	ScaleX, ScaleY float64
	Alpha          float64
}

// NewElement returns an element at rest with the given opacity.
func NewElement(alpha float64) *Element {
	return &Element{ScaleX: 1, ScaleY: 1, Alpha: alpha}
}

// Elements groups the targets of the blow-out sequence. Any of them may be
// nil, in which case its transitions are skipped.
type Elements struct {
	Flame  *Element
	Smoke  *Element
	Reveal *Element
}
