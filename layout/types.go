// Package layout parses the greeting page geometry from a TMX map.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
package layout

// Rect is an axis-aligned box in page coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the midpoint of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Section names
const (
	SectionHero    = "hero"
	SectionWishes  = "wishes"
	SectionCake    = "cake"
	SectionClosing = "closing"
)

// Element names
const (
	ElementHeroContent    = "heroContent"
	ElementScrollButton   = "scrollButton"
	ElementCandle         = "candle"
	ElementFlame          = "flame"
	ElementSmoke          = "smoke"
	ElementCake           = "cake"
	ElementReveal         = "reveal"
	ElementCakeText       = "cakeText"
	ElementClosingContent = "closingContent"
)

// Card is a wish card slot; Index selects the wish text.
type Card struct {
	Rect
	Index int
}

// Float is an idle floating decoration in the hero section.
type Float struct {
	Rect
	Kind string // "heart", "star", "balloon"
}

// ParallaxLayer is a background shape moved by scroll progress.
type ParallaxLayer struct {
	Rect
	Depth int
}

// Page holds everything parsed from the layout map.
type Page struct {
	Width    int
	Height   int
	Sections map[string]Rect
	Elements map[string]Rect
	Cards    []Card
	Floats   []Float
	Parallax []ParallaxLayer
}

// Section returns the named section box.
func (p *Page) Section(name string) (Rect, bool) {
	r, ok := p.Sections[name]
	return r, ok
}

// Element returns the named element box.
func (p *Page) Element(name string) (Rect, bool) {
	r, ok := p.Elements[name]
	return r, ok
}
