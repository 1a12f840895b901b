package systems

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/automoto/wishcake/components"
	cfg "github.com/automoto/wishcake/config"
	"github.com/automoto/wishcake/layout"
	"github.com/automoto/wishcake/systems/factory"
	"github.com/automoto/wishcake/tags"
)

func ticks(d time.Duration) int {
	return int(d/tickDuration()) + 2
}

func TestRevealTriggered(t *testing.T) {
	section := layout.Rect{Y: 1300, H: 640}
	tests := []struct {
		name    string
		trigger float64
		scrollY float64
		want    bool
	}{
		{"on load", 0, 0, true},
		{"far above", 0.8, 0, false},
		{"just short", 0.8, 819, false},
		{"crossed", 0.8, 820, true},
		{"scrolled past", 0.8, 2000, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := revealTriggered(section, tt.trigger, tt.scrollY, 600); got != tt.want {
				t.Errorf("revealTriggered = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParallaxOffset(t *testing.T) {
	if got := parallaxOffset(0, 1); got != -cfg.Parallax.Step {
		t.Errorf("first layer full progress = %v, want %v", got, -cfg.Parallax.Step)
	}
	if got := parallaxOffset(2, 0.5); !near(got, -1.5*cfg.Parallax.Step) {
		t.Errorf("third layer half progress = %v, want %v", got, -1.5*cfg.Parallax.Step)
	}
	if got := parallaxOffset(3, 0); got != 0 {
		t.Errorf("zero progress = %v, want 0", got)
	}
}

func TestNewRevealStartsHidden(t *testing.T) {
	rc := cfg.RevealConfig{
		Delay:    100 * time.Millisecond,
		Stagger:  50 * time.Millisecond,
		Duration: 400 * time.Millisecond,
		OffsetX:  -40,
		OffsetY:  20,
		Ease:     cfg.Reveal.Hero.Ease,
	}
	reveal := factory.NewReveal(layout.SectionCake, rc, 2)

	if reveal.State.Alpha != 0 || reveal.State.OffsetX != -40 || reveal.State.OffsetY != 20 {
		t.Errorf("initial presence = %+v", *reveal.State)
	}
	if reveal.Section != layout.SectionCake {
		t.Errorf("section = %q", reveal.Section)
	}
	if got, want := reveal.Timeline.Duration(), 600*time.Millisecond; got != want {
		t.Errorf("duration = %v, want delay + 2 staggers + duration = %v", got, want)
	}
}

func TestUpdateRevealsOnLoad(t *testing.T) {
	w := newTestWorld()
	entry := factory.CreateReveal(w.ecs, w.space, w.page, layout.ElementHeroContent, layout.SectionHero, cfg.Reveal.Hero, tags.Hero)
	reveal := components.Reveal.Get(entry)

	UpdateReveals(w.ecs)
	if !reveal.Started {
		t.Fatal("hero reveal should start on load")
	}

	for i := 0; i < ticks(cfg.Reveal.Hero.Duration); i++ {
		UpdateReveals(w.ecs)
	}
	if !near(reveal.State.Alpha, 1) || !near(reveal.State.OffsetY, 0) {
		t.Errorf("finished presence = %+v, want fully shown", *reveal.State)
	}
	if got := presenceOf(w.ecs, tags.Hero); !near(got.Alpha, 1) {
		t.Errorf("presenceOf hero = %+v", got)
	}
}

func TestUpdateRevealsWaitsForScroll(t *testing.T) {
	w := newTestWorld()
	entry := factory.CreateReveal(w.ecs, w.space, w.page, layout.ElementCake, layout.SectionCake, cfg.Reveal.Cake, tags.Cake)
	reveal := components.Reveal.Get(entry)

	UpdateReveals(w.ecs)
	if reveal.Started || reveal.State.Alpha != 0 {
		t.Fatal("cake reveal should wait until the section is in view")
	}
	if got := presenceOf(w.ecs, tags.Cake); got.Alpha != 0 {
		t.Errorf("hidden cake presence = %v", got.Alpha)
	}

	w.camera().Position.Y = 1000
	UpdateReveals(w.ecs)
	if !reveal.Started {
		t.Error("cake reveal should start once scrolled into view")
	}

	// Scrolling back does not hide it again
	w.camera().Position.Y = 0
	for i := 0; i < ticks(cfg.Reveal.Cake.Duration); i++ {
		UpdateReveals(w.ecs)
	}
	if !near(reveal.State.Alpha, 1) {
		t.Errorf("alpha = %v, want 1", reveal.State.Alpha)
	}
}

func TestPresenceOfMissingBlock(t *testing.T) {
	w := newTestWorld()
	if got := presenceOf(w.ecs, tags.Closing); got.Alpha != 1 || got.OffsetX != 0 || got.OffsetY != 0 {
		t.Errorf("missing block presence = %+v, want fully visible", got)
	}
}

func TestUpdateFloatsHonorsDelay(t *testing.T) {
	w := newTestWorld()
	w.page.Floats = []layout.Float{
		{Rect: layout.Rect{X: 100, Y: 100, W: 20, H: 20}, Kind: "heart"},
		{Rect: layout.Rect{X: 600, Y: 200, W: 20, H: 20}, Kind: "star"},
	}
	floats := factory.CreateFloats(w.ecs, w.space, w.page, rand.New(rand.NewPCG(1, 2)))

	UpdateFloats(w.ecs)

	var moving, waiting int
	for _, entry := range floats {
		f := components.Float.Get(entry)
		switch {
		case f.Delay > 0:
			waiting++
			if f.OffsetY != 0 {
				t.Errorf("delayed float moved: %+v", f)
			}
		default:
			moving++
			if f.Phase <= 0 || f.Phase > 1 {
				t.Errorf("phase = %v, want in (0, 1]", f.Phase)
			}
			if !near(f.OffsetY, f.Phase*cfg.Float.Y) || !near(f.OffsetX, f.Phase*cfg.Float.X) {
				t.Errorf("offsets %v,%v do not follow phase %v", f.OffsetX, f.OffsetY, f.Phase)
			}
		}
	}
	if moving != 1 || waiting != 1 {
		t.Errorf("moving=%d waiting=%d, want one of each", moving, waiting)
	}
}

func TestUpdateFloatsLoops(t *testing.T) {
	w := newTestWorld()
	w.page.Floats = []layout.Float{{Rect: layout.Rect{X: 100, Y: 100, W: 20, H: 20}, Kind: "balloon"}}
	entry := factory.CreateFloats(w.ecs, w.space, w.page, rand.New(rand.NewPCG(1, 2)))[0]
	f := components.Float.Get(entry)

	peak := 0.0
	for i := 0; i < ticks(3*cfg.Float.Duration); i++ {
		UpdateFloats(w.ecs)
		peak = max(peak, f.Phase)
	}
	if peak < 0.99 {
		t.Errorf("peak phase = %v, want the float to reach its far point", peak)
	}
	if f.Phase < 0 || f.Phase > 1 {
		t.Errorf("phase %v escaped [0, 1] after looping", f.Phase)
	}
}

func TestUpdateParallax(t *testing.T) {
	w := newTestWorld()
	w.page.Parallax = []layout.ParallaxLayer{
		{Rect: layout.Rect{Y: 1300, W: 800, H: 640}, Depth: 1},
		{Rect: layout.Rect{Y: 1300, W: 800, H: 640}, Depth: 2},
	}
	layers := factory.CreateParallax(w.ecs, w.page)
	w.camera().Position.Y = 1320

	UpdateParallax(w.ecs)

	for i, entry := range layers {
		want := parallaxOffset(i, 0.5)
		if got := components.Parallax.Get(entry).OffsetY; !near(got, want) {
			t.Errorf("layer %d offset = %v, want %v", i, got, want)
		}
	}
}
