package components

import (
	"github.com/automoto/wishcake/timeline"
	"github.com/yohamta/donburi"
)

// Presence is the animated visibility of a revealed element. It lives on the
// heap so timeline tracks can target its fields.
type Presence struct {
	Alpha   float64
	OffsetX float64
	OffsetY float64
}

// RevealData is a one-shot entrance animation gated on scroll position
type RevealData struct {
	Section  string  // layout section whose top triggers the reveal
	Trigger  float64 // viewport fraction; 0 starts on load
	Started  bool
	Timeline *timeline.Timeline
	State    *Presence
}

var Reveal = donburi.NewComponentType[RevealData]()
