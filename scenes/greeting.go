package scenes

import (
	"image/color"
	"log"
	"math/rand/v2"
	"sync"

	"github.com/automoto/wishcake/assets"
	"github.com/automoto/wishcake/components"
	cfg "github.com/automoto/wishcake/config"
	"github.com/automoto/wishcake/fonts"
	"github.com/automoto/wishcake/layout"
	"github.com/automoto/wishcake/systems"
	"github.com/automoto/wishcake/systems/factory"
	"github.com/automoto/wishcake/tags"
	"github.com/automoto/wishcake/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GreetingScene is the single scrolling birthday page
type GreetingScene struct {
	ecs     *ecs.ECS
	moodBar *ui.MoodBar
	page    *layout.Page
	content *cfg.Content
	width   int
	height  int
	once    sync.Once
}

// NewGreetingScene creates the page scene. The world is built on the first
// update, once the viewport size is known.
func NewGreetingScene(page *layout.Page, content *cfg.Content, width, height int) *GreetingScene {
	return &GreetingScene{
		page:    page,
		content: content,
		width:   width,
		height:  height,
	}
}

func (gs *GreetingScene) Update() {
	gs.once.Do(gs.configure)
	gs.moodBar.Update()
	systems.SetOverlays(gs.ecs, gs.moodBar.Bounds())
	gs.ecs.Update()
}

func (gs *GreetingScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
	gs.moodBar.Draw(screen)
}

// Resize tracks the window size; the viewport and confetti canvas follow it
func (gs *GreetingScene) Resize(width, height int) {
	if width == gs.width && height == gs.height {
		return
	}
	gs.width, gs.height = width, height
	if gs.ecs == nil {
		return
	}
	if entry, ok := components.Camera.First(gs.ecs.World); ok {
		camera := components.Camera.Get(entry)
		camera.Width, camera.Height = float64(width), float64(height)
	}
	systems.ResizeConfetti(gs.ecs, width, height)
}

// QuitRequested reports whether the quit action was pressed
func (gs *GreetingScene) QuitRequested() bool {
	if gs.ecs == nil {
		return false
	}
	return systems.GetOrCreateSettings(gs.ecs).Quit
}

func (gs *GreetingScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not load shaders, using a flat background: %v", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first, then the pointer events it published
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.ProcessPointerEvents)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateTheme)
	ecs.AddSystem(systems.UpdateCamera)

	// Animation
	ecs.AddSystem(systems.UpdateReveals)
	ecs.AddSystem(systems.UpdateFloats)
	ecs.AddSystem(systems.UpdateParallax)
	ecs.AddSystem(systems.UpdateCards)
	ecs.AddSystem(systems.UpdateCandle)
	ecs.AddSystem(systems.UpdateConfetti)
	ecs.AddSystem(systems.UpdateAudio)

	// Renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawParallax)
	ecs.AddRenderer(cfg.Default, systems.DrawFloats)
	ecs.AddRenderer(cfg.Default, systems.DrawSections)
	ecs.AddRenderer(cfg.Default, systems.DrawCards)
	ecs.AddRenderer(cfg.Default, systems.DrawCandle)
	ecs.AddRenderer(cfg.Overlay, systems.DrawConfetti)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	gs.ecs = ecs
	systems.SubscribePointer(gs.ecs)

	spaceEntry := factory.CreateSpace(gs.ecs, gs.page.Width, gs.page.Height, 16, 16)
	space := components.Space.Get(spaceEntry)

	factory.CreatePage(gs.ecs, gs.page, gs.content, cfg.Debug.Enabled)
	factory.CreateCamera(gs.ecs, gs.width, gs.height)
	factory.CreatePointer(gs.ecs, space)
	themeEntry := factory.CreateTheme(gs.ecs)

	confettiEntry := factory.CreateConfetti(gs.ecs, gs.width, gs.height, nil)
	confetti := components.Confetti.Get(confettiEntry).System
	if factory.CreateCandle(gs.ecs, space, gs.page, confetti) == nil {
		log.Printf("Warning: layout has no candle element")
	}

	factory.CreateScrollButton(gs.ecs, space, gs.page)
	factory.CreateCards(gs.ecs, space, gs.page, gs.content.Wishes)
	factory.CreateFloats(gs.ecs, space, gs.page, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	factory.CreateParallax(gs.ecs, gs.page)

	factory.CreateReveal(gs.ecs, space, gs.page, layout.ElementHeroContent, layout.SectionHero, cfg.Reveal.Hero, tags.Hero)
	factory.CreateReveal(gs.ecs, space, gs.page, layout.ElementCake, layout.SectionCake, cfg.Reveal.Cake, tags.Cake)
	factory.CreateReveal(gs.ecs, space, gs.page, layout.ElementCakeText, layout.SectionCake, cfg.Reveal.CakeText, tags.CakeText)
	factory.CreateReveal(gs.ecs, space, gs.page, layout.ElementClosingContent, layout.SectionClosing, cfg.Reveal.Closing, tags.Closing)

	switcher := components.Theme.Get(themeEntry).Switcher
	gs.moodBar = ui.NewMoodBar(switcher, fonts.Button.Get(), func(name string) {
		systems.SetTheme(gs.ecs, name)
		systems.PlaySound(gs.ecs, cfg.SoundClick)
	})
	if cfg.InitialTheme != "" {
		systems.SetTheme(gs.ecs, cfg.InitialTheme)
	}
}
