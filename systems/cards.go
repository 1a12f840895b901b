package systems

import (
	"math"

	"github.com/automoto/wishcake/components"
	cfg "github.com/automoto/wishcake/config"
	"github.com/automoto/wishcake/fonts"
	"github.com/automoto/wishcake/layout"
	"github.com/automoto/wishcake/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Initial tilt on enter, before the pointer has moved
const (
	enterTiltX = -6.0
	enterTiltY = 6.0
)

// UpdateCards lifts and tilts the wish card under the pointer and settles
// the others back to rest
func UpdateCards(e *ecs.ECS) {
	pointerEntry, ok := components.Pointer.First(e.World)
	if !ok {
		return
	}
	pointer := components.Pointer.Get(pointerEntry)

	hovered := map[*donburi.Entry]bool{}
	if hitBox := pointerHitBox(e); hitBox != nil && pointer.Inside {
		for _, obj := range objectsAt(hitBox, pointer.PageX, pointer.PageY, tags.ResolvCard) {
			if entry, ok := obj.Data.(*donburi.Entry); ok {
				hovered[entry] = true
			}
		}
	}

	tags.Card.Each(e.World, func(entry *donburi.Entry) {
		card := components.Card.Get(entry)
		obj := components.Object.Get(entry)
		rect := layout.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
		updateCardHover(card, rect, hovered[entry], pointer.PageX, pointer.PageY)
		stepCard(card)
	})
}

// updateCardHover sets hover targets for one card
func updateCardHover(card *components.CardData, rect layout.Rect, over bool, px, py float64) {
	switch {
	case over && !card.Hovered:
		card.Hovered = true
		card.TargetLift = cfg.Card.HoverLift
		card.TargetScale = cfg.Card.HoverScale
		card.TargetTiltX, card.TargetTiltY = enterTiltX, enterTiltY
		card.TargetShadow = cfg.Card.ShadowHover
		card.LerpSpeed = cfg.Card.EnterLerp
	case over:
		card.TargetTiltX, card.TargetTiltY = cardTilt(rect, px, py, cfg.Card.MaxTilt)
		card.LerpSpeed = cfg.Card.MoveLerp
	case card.Hovered:
		card.Hovered = false
		card.TargetLift = 0
		card.TargetScale = 1
		card.TargetTiltX, card.TargetTiltY = 0, 0
		card.TargetShadow = cfg.Card.ShadowRest
		card.LerpSpeed = cfg.Card.LeaveLerp
	}
}

// stepCard lerps current values toward their targets
func stepCard(card *components.CardData) {
	k := card.LerpSpeed
	card.Lift += (card.TargetLift - card.Lift) * k
	card.Scale += (card.TargetScale - card.Scale) * k
	card.TiltX += (card.TargetTiltX - card.TiltX) * k
	card.TiltY += (card.TargetTiltY - card.TiltY) * k
	card.Shadow += (card.TargetShadow - card.Shadow) * k
}

// cardTilt returns the rotation about the X and Y axes, in degrees, for a
// pointer at (px, py) over rect. Each is ±maxTilt at the edges and 0 at the
// center; the top edge tilts toward the viewer.
func cardTilt(rect layout.Rect, px, py, maxTilt float64) (tiltX, tiltY float64) {
	if rect.W <= 0 || rect.H <= 0 {
		return 0, 0
	}
	relX := (px - rect.X) / rect.W
	relY := (py - rect.Y) / rect.H
	tiltY = (relX - 0.5) * 2 * maxTilt
	tiltX = (relY - 0.5) * -2 * maxTilt
	return tiltX, tiltY
}

// Offscreen card images, rebuilt on size change
var cardImages = map[int]*ebiten.Image{}

func cardImage(index, w, h int) *ebiten.Image {
	img, ok := cardImages[index]
	if ok && img.Bounds().Dx() == w && img.Bounds().Dy() == h {
		img.Clear()
		return img
	}
	if ok {
		img.Deallocate()
	}
	img = ebiten.NewImage(w, h)
	cardImages[index] = img
	return img
}

// DrawCards renders each wish card offscreen, then places it with its
// reveal offset, hover lift, scale and a shear approximating the tilt
func DrawCards(e *ecs.ECS, screen *ebiten.Image) {
	camera, _, ok := cameraAndPage(e)
	if !ok {
		return
	}
	palette := currentPalette(e)
	titleFace := fonts.Bold.Get()
	bodyFace := fonts.Small.Get()

	tags.Card.Each(e.World, func(entry *donburi.Entry) {
		card := components.Card.Get(entry)
		obj := components.Object.Get(entry)
		reveal := components.Reveal.Get(entry).State
		if reveal.Alpha <= 0 {
			return
		}

		w, h := int(obj.W), int(obj.H)
		img := cardImage(card.Index, w, h)
		vector.FillRect(img, 0, 0, float32(w), float32(h), palette.Card, true)
		vector.FillRect(img, 0, 0, float32(w), 6, palette.Accent, true)
		vector.FillCircle(img, 34, 44, 16, palette.Accent, true)
		drawText(img, iconGlyph(card.Wish.Icon), titleFace, 34, 34, palette.Card, 1, true)
		drawText(img, card.Wish.Title, titleFace, 62, 32, palette.Text, 1, false)
		y := 84.0
		for _, line := range wrapText(card.Wish.Text, bodyFace, obj.W-40) {
			drawText(img, line, bodyFace, 20, y, palette.MutedText, 1, false)
			y += 18
		}

		cx := obj.X + obj.W/2 - camera.Position.X + reveal.OffsetX
		cy := obj.Y + obj.H/2 - camera.Position.Y + reveal.OffsetY + card.Lift

		// Shadow
		sw, sh := float32(obj.W*card.Scale), float32(obj.H*card.Scale)
		vector.FillRect(screen, float32(cx)-sw/2+4, float32(cy)-sh/2+float32(card.Shadow), sw-8, sh, fade(cfg.Shadow, reveal.Alpha*0.5), true)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-obj.W/2, -obj.H/2)
		op.GeoM.Scale(card.Scale, card.Scale)
		op.GeoM.Skew(shear(card.TiltY), shear(card.TiltX))
		op.GeoM.Translate(cx, cy)
		op.ColorScale.ScaleAlpha(float32(reveal.Alpha))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	})
}

// shear maps a tilt in degrees to a skew angle in radians
func shear(deg float64) float64 {
	return deg * math.Pi / 180 * 0.35
}

func iconGlyph(icon string) string {
	switch icon {
	case "heart":
		return "<3"
	case "star":
		return "*"
	case "balloon":
		return "o"
	}
	return "+"
}
