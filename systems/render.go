package systems

import (
	"image/color"
	"strings"

	"github.com/automoto/wishcake/assets"
	"github.com/automoto/wishcake/components"
	cfg "github.com/automoto/wishcake/config"
	"github.com/automoto/wishcake/fonts"
	"github.com/automoto/wishcake/layout"
	"github.com/automoto/wishcake/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawBackground paints the themed gradient across the whole page height
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	palette := currentPalette(e)
	camera, page, ok := cameraAndPage(e)
	if !ok || assets.GradientShader == nil {
		screen.Fill(palette.BackgroundTop)
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"Top":    colorVec(palette.BackgroundTop),
		"Bottom": colorVec(palette.BackgroundBottom),
		"Height": float32(page.Layout.Height),
		"Offset": float32(camera.Position.Y),
	}
	screen.DrawRectShader(w, h, assets.GradientShader, op)
}

// DrawParallax draws the soft background shapes of the cake section
func DrawParallax(e *ecs.ECS, screen *ebiten.Image) {
	camera, _, ok := cameraAndPage(e)
	if !ok {
		return
	}
	palette := currentPalette(e)

	tags.Parallax.Each(e.World, func(entry *donburi.Entry) {
		layer := components.Parallax.Get(entry)
		cx, cy := layer.Layer.Center()
		x := float32(cx - camera.Position.X)
		y := float32(cy + layer.OffsetY - camera.Position.Y)
		r := float32(layer.Layer.W / 2)
		vector.FillCircle(screen, x, y, r, fade(palette.Accent, 0.12+0.05*float64(layer.Index)), true)
	})
}

// DrawFloats draws the bobbing hero decorations
func DrawFloats(e *ecs.ECS, screen *ebiten.Image) {
	camera, _, ok := cameraAndPage(e)
	if !ok {
		return
	}
	palette := currentPalette(e)

	tags.Float.Each(e.World, func(entry *donburi.Entry) {
		f := components.Float.Get(entry)
		obj := components.Object.Get(entry)
		reveal := components.Reveal.Get(entry).State
		if reveal.Alpha <= 0 {
			return
		}
		x := float32(obj.X + obj.W/2 + f.OffsetX + reveal.OffsetX - camera.Position.X)
		y := float32(obj.Y + obj.H/2 + f.OffsetY + reveal.OffsetY - camera.Position.Y)
		r := float32(obj.W / 2)
		clr := fade(palette.Float, reveal.Alpha)

		switch f.Kind {
		case "star":
			vector.FillCircle(screen, x, y, r*0.6, clr, true)
			vector.StrokeLine(screen, x-r, y, x+r, y, 2, clr, true)
			vector.StrokeLine(screen, x, y-r, x, y+r, 2, clr, true)
		case "balloon":
			vector.FillCircle(screen, x, y-r*0.3, r, clr, true)
			vector.StrokeLine(screen, x, y+r*0.7, x, y+r*2.2, 1, clr, true)
		default:
			vector.FillCircle(screen, x-r*0.45, y-r*0.2, r*0.55, clr, true)
			vector.FillCircle(screen, x+r*0.45, y-r*0.2, r*0.55, clr, true)
			vector.FillCircle(screen, x, y+r*0.35, r*0.5, clr, true)
		}
	})
}

// DrawSections draws the page text: hero, section titles, cake text and
// the closing message
func DrawSections(e *ecs.ECS, screen *ebiten.Image) {
	camera, page, ok := cameraAndPage(e)
	if !ok {
		return
	}
	content := pageContent(e)
	if content == nil {
		return
	}
	palette := currentPalette(e)
	ox, oy := camera.Position.X, camera.Position.Y

	// Hero
	if hero, ok := page.Layout.Element(layout.ElementHeroContent); ok {
		p := presenceOf(e, tags.Hero)
		cx, _ := hero.Center()
		x, y := cx+p.OffsetX-ox, hero.Y+p.OffsetY-oy
		drawText(screen, content.Title, fonts.Title.Get(), x, y, palette.Text, p.Alpha, true)
		drawText(screen, content.Subtitle, fonts.Body.Get(), x, y+60, palette.MutedText, p.Alpha, true)

		if btn, ok := page.Layout.Element(layout.ElementScrollButton); ok && p.Alpha > 0 {
			bx, by := float32(btn.X+p.OffsetX-ox), float32(btn.Y+p.OffsetY-oy)
			vector.FillRect(screen, bx, by, float32(btn.W), float32(btn.H), fade(palette.Accent, p.Alpha), true)
			bcx, _ := btn.Center()
			drawText(screen, content.ScrollHint, fonts.Bold.Get(), bcx+p.OffsetX-ox, btn.Y+12+p.OffsetY-oy, cfg.White, p.Alpha, true)
		}
	}

	// Wishes title
	if wishes, ok := page.Layout.Section(layout.SectionWishes); ok {
		cx, _ := wishes.Center()
		drawText(screen, content.WishesTitle, fonts.Title.Get(), cx-ox, wishes.Y+40-oy, palette.Text, 1, true)
	}

	// Cake section title, text and hint
	if cake, ok := page.Layout.Section(layout.SectionCake); ok {
		cx, _ := cake.Center()
		drawText(screen, content.CakeTitle, fonts.Title.Get(), cx-ox, cake.Y+20-oy, palette.Text, 1, true)
	}
	if rect, ok := page.Layout.Element(layout.ElementCakeText); ok {
		p := presenceOf(e, tags.CakeText)
		cx, _ := rect.Center()
		y := rect.Y + p.OffsetY - oy
		for _, line := range content.CakeText {
			drawText(screen, line, fonts.Body.Get(), cx+p.OffsetX-ox, y, palette.Text, p.Alpha, true)
			y += 24
		}
		if c, ok := tags.Candle.First(e.World); ok && components.Candle.Get(c).Sequencer.Lit() {
			drawText(screen, content.CandleHint, fonts.Small.Get(), cx+p.OffsetX-ox, y+8, palette.MutedText, p.Alpha, true)
		}
	}

	// Closing
	if rect, ok := page.Layout.Element(layout.ElementClosingContent); ok {
		p := presenceOf(e, tags.Closing)
		cx, _ := rect.Center()
		x, y := cx+p.OffsetX-ox, rect.Y+p.OffsetY-oy
		for _, line := range wrapText(content.Closing, fonts.Title.Get(), rect.W) {
			drawText(screen, line, fonts.Title.Get(), x, y, palette.Text, p.Alpha, true)
			y += 44
		}
		drawText(screen, content.Signature, fonts.Body.Get(), x, y+20, palette.Accent, p.Alpha, true)
	}
}

// cameraAndPage returns the viewport and page layout, or false before the
// page is built
func cameraAndPage(e *ecs.ECS) (*components.CameraData, *components.PageData, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return nil, nil, false
	}
	pageEntry, ok := components.Page.First(e.World)
	if !ok {
		return nil, nil, false
	}
	page := components.Page.Get(pageEntry)
	if page.Layout == nil {
		return nil, nil, false
	}
	return components.Camera.Get(cameraEntry), page, true
}

func pageContent(e *ecs.ECS) *cfg.Content {
	entry, ok := components.Page.First(e.World)
	if !ok {
		return nil
	}
	return components.Page.Get(entry).Content
}

// presenceOf returns the reveal state of the tagged block, fully visible
// when there is none
func presenceOf(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) components.Presence {
	entry, ok := tag.First(e.World)
	if !ok || !entry.HasComponent(components.Reveal) {
		return components.Presence{Alpha: 1}
	}
	state := components.Reveal.Get(entry).State
	if state == nil {
		return components.Presence{Alpha: 1}
	}
	return *state
}

// fade scales a straight-alpha color by alpha, premultiplied for drawing
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return color.RGBA{}
	}
	a := float64(c.A) / 255 * alpha
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}

func colorVec(c color.RGBA) []float32 {
	return []float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

// drawText draws s with its top at y, centered on x when centered is set
func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.RGBA, alpha float64, centered bool) {
	if s == "" || alpha <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	if centered {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(dst, s, face, op)
}

// wrapText splits s into lines no wider than maxWidth, breaking on spaces.
// A single word wider than maxWidth gets a line of its own.
func wrapText(s string, face text.Face, maxWidth float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if text.Advance(candidate, face) > maxWidth {
			lines = append(lines, line)
			line = w
			continue
		}
		line = candidate
	}
	return append(lines, line)
}
