package systems

import (
	"image/color"
	"time"

	"github.com/automoto/wishcake/candle"
	"github.com/automoto/wishcake/components"
	cfg "github.com/automoto/wishcake/config"
	"github.com/automoto/wishcake/fonts"
	"github.com/automoto/wishcake/layout"
	"github.com/automoto/wishcake/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// tickDuration is the simulated time of one update
func tickDuration() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}

// UpdateCandle runs the flame pulse or the blow-out timeline
func UpdateCandle(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionBlowCandle).JustPressed {
		ActivateCandle(e)
	}

	entry, ok := tags.Candle.First(e.World)
	if !ok {
		return
	}
	components.Candle.Get(entry).Sequencer.Update(tickDuration())
}

// ActivateCandle blows the candle out. Later calls do nothing.
func ActivateCandle(e *ecs.ECS) bool {
	entry, ok := tags.Candle.First(e.World)
	if !ok {
		return false
	}
	if !components.Candle.Get(entry).Sequencer.Activate() {
		return false
	}
	debugf(e, "candle blown out")
	PlaySound(e, cfg.SoundPuff)
	PlaySound(e, cfg.SoundChime)
	return true
}

// DrawCandle draws the cake, the candle, its flame and smoke, and the
// revealed message, all faded in with the cake.
func DrawCandle(e *ecs.ECS, screen *ebiten.Image) {
	camera, page, ok := cameraAndPage(e)
	if !ok {
		return
	}
	entry, ok := tags.Candle.First(e.World)
	if !ok {
		return
	}
	seq := components.Candle.Get(entry).Sequencer
	el := seq.Elements()
	palette := currentPalette(e)

	presence := presenceOf(e, tags.Cake)
	dx, dy := presence.OffsetX-camera.Position.X, presence.OffsetY-camera.Position.Y

	if cake, ok := page.Layout.Element(layout.ElementCake); ok {
		drawCake(screen, cake, dx, dy, presence.Alpha, palette)
	}

	body, _ := page.Layout.Element(layout.ElementCandle)
	bx, by := float32(body.X+dx), float32(body.Y+dy)
	vector.FillRect(screen, bx, by, float32(body.W), float32(body.H), fade(cfg.Candle.BodyColor, presence.Alpha), true)
	for i := 0; i < 3; i++ {
		stripY := by + float32(body.H)*(0.2+0.3*float32(i))
		vector.FillRect(screen, bx, stripY, float32(body.W), 6, fade(cfg.Candle.StripColor, presence.Alpha), true)
	}
	wickX := bx + float32(body.W)/2 - 1
	vector.FillRect(screen, wickX, by-float32(cfg.Candle.WickHeight), 2, float32(cfg.Candle.WickHeight), fade(color.RGBA{60, 40, 30, 255}, presence.Alpha), true)

	if flame, ok := page.Layout.Element(layout.ElementFlame); ok && el.Flame != nil {
		drawFlame(screen, flame, el.Flame, dx, dy, presence.Alpha)
	}
	if smoke, ok := page.Layout.Element(layout.ElementSmoke); ok && el.Smoke != nil {
		rise := cfg.Candle.SmokeRise * progress(seq.Elapsed(), 2050*time.Millisecond)
		drawSmoke(screen, smoke, el.Smoke, dx, dy-rise)
	}
	if reveal, ok := page.Layout.Element(layout.ElementReveal); ok && el.Reveal != nil && el.Reveal.Alpha > 0 {
		cx, _ := reveal.Center()
		drawText(screen, pageContent(e).Reveal, fonts.Bold.Get(), cx+dx, reveal.Y+el.Reveal.Y+dy, palette.Accent, el.Reveal.Alpha, true)
	}
}

func drawCake(screen *ebiten.Image, cake layout.Rect, dx, dy, alpha float64, palette cfg.Palette) {
	x, y := float32(cake.X+dx), float32(cake.Y+dy)
	w, h := float32(cake.W), float32(cake.H)

	// Plate, two tiers, frosting drips
	vector.FillRect(screen, x-20, y+h-8, w+40, 8, fade(cfg.White, alpha*0.8), true)
	vector.FillRect(screen, x, y+h*0.45, w, h*0.55-8, fade(palette.Accent, alpha), true)
	vector.FillRect(screen, x+w*0.1, y, w*0.8, h*0.45, fade(cfg.Cream, alpha), true)
	for i := 0; i < 6; i++ {
		cx := x + w*0.1 + w*0.8*(float32(i)+0.5)/6
		vector.FillCircle(screen, cx, y+h*0.45, 8, fade(cfg.Cream, alpha), true)
	}
}

// drawFlame draws a teardrop of stacked circles scaled by the element
func drawFlame(screen *ebiten.Image, rect layout.Rect, el *candle.Element, dx, dy, alpha float64) {
	a := el.Alpha * alpha
	if a <= 0 || el.ScaleY <= 0 {
		return
	}
	cx := float32(rect.X + rect.W/2 + el.X + dx)
	base := float32(rect.Y + rect.H + el.Y + dy)
	w := float32(rect.W * el.ScaleX)
	h := float32(rect.H * el.ScaleY)

	const steps = 6
	for i := 0; i < steps; i++ {
		t := float32(i) / steps
		r := w / 2 * (1 - t*0.8)
		clr := cfg.Candle.FlameColor
		if i >= steps/2 {
			clr = cfg.Candle.CoreColor
		}
		vector.FillCircle(screen, cx, base-r-t*(h-w), r, fade(clr, a), true)
	}
}

func drawSmoke(screen *ebiten.Image, rect layout.Rect, el *candle.Element, dx, dy float64) {
	if el.Alpha <= 0 {
		return
	}
	cx, cy := rect.Center()
	r := float32(cfg.Candle.SmokeRadius)
	x, y := float32(cx+dx), float32(cy+dy)
	vector.FillCircle(screen, x, y, r, fade(cfg.Candle.SmokeColor, el.Alpha*0.6), true)
	vector.FillCircle(screen, x+r*0.6, y-r, r*0.7, fade(cfg.Candle.SmokeColor, el.Alpha*0.4), true)
	vector.FillCircle(screen, x-r*0.4, y-r*1.8, r*0.5, fade(cfg.Candle.SmokeColor, el.Alpha*0.3), true)
}

func progress(elapsed, total time.Duration) float64 {
	if total <= 0 || elapsed >= total {
		return 1
	}
	return float64(elapsed) / float64(total)
}
