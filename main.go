package main

import (
	"flag"
	"log"

	"github.com/automoto/wishcake/assets"
	"github.com/automoto/wishcake/config"
	"github.com/automoto/wishcake/fonts"
	"github.com/automoto/wishcake/layout"
	"github.com/automoto/wishcake/scenes"
	"github.com/automoto/wishcake/theme"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Resize(width, height int)
	QuitRequested() bool
}

type Game struct {
	scene Scene
}

func NewGame(page *layout.Page, content *config.Content) *Game {
	if err := fonts.LoadDefaults(config.Font.Title, config.Font.Body, config.Font.Small, config.MoodBar.FontSize); err != nil {
		panic(err)
	}

	return &Game{
		scene: scenes.NewGreetingScene(page, content, config.C.Width, config.C.Height),
	}
}

func (g *Game) Update() error {
	if g.scene.QuitRequested() {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window so the page viewport and the confetti canvas
// always cover it
func (g *Game) Layout(width, height int) (int, int) {
	g.scene.Resize(width, height)
	return width, height
}

// loadContent returns the greeting texts, preferring path when set
func loadContent(path string) *config.Content {
	if path != "" {
		content, err := config.LoadContentFile(path)
		if err == nil {
			return content
		}
		log.Printf("Warning: Could not load content, using the built-in greeting: %v", err)
	}
	content, err := config.LoadContent(assets.FS(), config.DefaultContentPath)
	if err != nil {
		panic(err)
	}
	return content
}

func main() {
	themeFlag := flag.String("theme", "", "initial mood theme (kitty, romantic, dreamy, party)")
	contentFlag := flag.String("content", "", "greeting content YAML file")
	debugFlag := flag.Bool("debug", config.Debug.Enabled, "draw hit boxes and stats, log lifecycle events")
	widthFlag := flag.Int("width", config.C.Width, "window width")
	heightFlag := flag.Int("height", config.C.Height, "window height")
	muteFlag := flag.Bool("mute", config.Audio.Muted, "start with sound effects off")
	volumeFlag := flag.Float64("volume", config.Audio.SFXVolume, "sound effect volume, 0 to 1")
	flag.Parse()

	config.C.Width = *widthFlag
	config.C.Height = *heightFlag
	config.Debug.Enabled = *debugFlag
	config.Audio.Muted = *muteFlag
	config.Audio.SFXVolume = max(0, min(1, *volumeFlag))
	if *themeFlag != "" {
		if _, ok := theme.Parse(*themeFlag); !ok {
			log.Printf("Warning: Unknown theme %q, starting without one", *themeFlag)
		}
		config.InitialTheme = *themeFlag
	}

	page, err := layout.Load(assets.FS(), assets.LayoutPath)
	if err != nil {
		panic(err)
	}
	content := loadContent(*contentFlag)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(page, content)); err != nil {
		log.Fatal(err)
	}
}
