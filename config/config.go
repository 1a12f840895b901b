package config

import (
	"image/color"
	"time"

	"github.com/automoto/wishcake/candle"
	"github.com/automoto/wishcake/confetti"
	"github.com/tanema/gween/ease"
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// CandleConfig contains candle drawing and flicker values
type CandleConfig struct {
	Pulse candle.PulseConfig

	// Dimensions (pixels, relative to the candle object's top-left)
	BodyWidth   float64
	BodyHeight  float64
	WickHeight  float64
	FlameWidth  float64
	FlameHeight float64
	SmokeRadius float64
	SmokeRise   float64 // how far the smoke drifts up while fading

	// Colors
	BodyColor  color.RGBA
	StripColor color.RGBA
	FlameColor color.RGBA
	CoreColor  color.RGBA
	SmokeColor color.RGBA
}

// PageConfig contains page scrolling values
type PageConfig struct {
	Width           float64 // layout width, the page is centered in wider windows
	WheelStep       float64 // pixels per wheel notch
	KeyStep         float64 // pixels per tick while an arrow key is held
	PageStepRatio   float64 // fraction of the viewport per PageUp/PageDown
	ScrollSmoothing float64 // lerp factor toward the scroll target (0.0-1.0)
	SnapDistance    float64 // below this the scroll snaps to its target
}

// RevealConfig describes one entrance animation
type RevealConfig struct {
	Trigger  float64 // fraction of the viewport height the section top must cross; 0 = on load
	Delay    time.Duration
	Stagger  time.Duration // extra delay per item in a group
	Duration time.Duration
	OffsetX  float64
	OffsetY  float64
	Ease     ease.TweenFunc
}

// RevealsConfig groups the page's entrance animations
type RevealsConfig struct {
	Hero     RevealConfig
	Floats   RevealConfig
	Cards    RevealConfig
	Cake     RevealConfig
	CakeText RevealConfig
	Closing  RevealConfig
}

// CardConfig contains wish card hover values
type CardConfig struct {
	HoverLift    float64 // pixels, negative is up
	HoverScale   float64
	MaxTilt      float64 // degrees at the card edge
	EnterLerp    float64 // lerp factor per tick while entering
	MoveLerp     float64 // lerp factor per tick while following the pointer
	LeaveLerp    float64 // lerp factor per tick while settling
	ShadowRest   float64 // shadow offset at rest
	ShadowHover  float64 // shadow offset while hovered
	CornerRadius float64
}

// FloatConfig contains the idle floating motion of hero decorations
type FloatConfig struct {
	X        float64
	Y        float64
	Duration time.Duration
	Stagger  time.Duration // start offsets are random multiples of this
	Radius   float64
}

// ParallaxConfig contains background layer movement
type ParallaxConfig struct {
	Step float64 // layer i travels (i+1)*Step across the cake section
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled bool // draw hit boxes and stats, log lifecycle events
}

// MoodBarConfig contains mood button bar layout
type MoodBarConfig struct {
	ButtonWidth  int
	ButtonHeight int
	Spacing      int
	Padding      int
	FontSize     float64
	Labels       map[string]string
}

// FontConfig contains font sizes
type FontConfig struct {
	Title float64
	Body  float64
	Small float64
}

// Global configuration instances
var C *Config
var Confetti confetti.Config
var Candle CandleConfig
var Page PageConfig
var Reveal RevealsConfig
var Card CardConfig
var Float FloatConfig
var Parallax ParallaxConfig
var Debug DebugConfig
var MoodBar MoodBarConfig
var Font FontConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Cream        = color.RGBA{R: 255, G: 244, B: 230, A: 255}
	Wax          = color.RGBA{R: 255, G: 214, B: 224, A: 255}
	WaxStrip     = color.RGBA{R: 255, G: 111, B: 145, A: 255}
	FlameOrange  = color.RGBA{R: 255, G: 170, B: 60, A: 255}
	FlameYellow  = color.RGBA{R: 255, G: 240, B: 150, A: 255}
	SmokeGrey    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Shadow       = color.RGBA{R: 0, G: 0, B: 0, A: 100}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		Title:  "Happy Birthday",
	}

	// Confetti burst
	Confetti = confetti.Config{
		PoolSize:      220,
		Duration:      5500 * time.Millisecond,
		SpawnY:        -20,
		RecycleMargin: 30,
		Size:          confetti.Range{Min: 6, Max: 12},
		TiltIncrement: confetti.Range{Min: 0.02, Max: 0.10},
		FallSpeed:     confetti.Range{Min: 2, Max: 5},
		SwayStep:      1.2,
		SwayDraw:      12,
		StreakLength:  1.5,
		Palette:       confetti.DefaultPalette,
	}

	// Candle
	Candle = CandleConfig{
		Pulse: candle.PulseConfig{
			HalfCycle: 700 * time.Millisecond,
			ScaleX:    0.98,
			ScaleY:    1.08,
			Y:         -2,
		},
		BodyWidth:   26,
		BodyHeight:  90,
		WickHeight:  8,
		FlameWidth:  16,
		FlameHeight: 30,
		SmokeRadius: 10,
		SmokeRise:   24,
		BodyColor:   Wax,
		StripColor:  WaxStrip,
		FlameColor:  FlameOrange,
		CoreColor:   FlameYellow,
		SmokeColor:  SmokeGrey,
	}

	Page = PageConfig{
		Width:           800,
		WheelStep:       60,
		KeyStep:         12,
		PageStepRatio:   0.85,
		ScrollSmoothing: 0.12,
		SnapDistance:    0.5,
	}

	Reveal = RevealsConfig{
		Hero: RevealConfig{
			Duration: 1400 * time.Millisecond,
			OffsetY:  40,
			Ease:     ease.OutQuart,
		},
		Floats: RevealConfig{
			Stagger:  250 * time.Millisecond,
			Duration: 1400 * time.Millisecond,
			OffsetY:  60,
			Ease:     ease.OutQuart,
		},
		Cards: RevealConfig{
			Trigger:  0.75,
			Stagger:  200 * time.Millisecond,
			Duration: 900 * time.Millisecond,
			OffsetY:  40,
			Ease:     ease.OutQuart,
		},
		Cake: RevealConfig{
			Trigger:  0.80,
			Duration: 1300 * time.Millisecond,
			OffsetY:  60,
			Ease:     ease.OutBack,
		},
		CakeText: RevealConfig{
			Trigger:  0.80,
			Duration: 1000 * time.Millisecond,
			OffsetX:  -40,
			Ease:     ease.OutQuart,
		},
		Closing: RevealConfig{
			Trigger:  0.85,
			Duration: 1100 * time.Millisecond,
			OffsetY:  40,
			Ease:     ease.OutQuart,
		},
	}

	Card = CardConfig{
		HoverLift:    -14,
		HoverScale:   1.03,
		MaxTilt:      8,
		EnterLerp:    0.25,
		MoveLerp:     0.35,
		LeaveLerp:    0.18,
		ShadowRest:   8,
		ShadowHover:  18,
		CornerRadius: 14,
	}

	Float = FloatConfig{
		X:        8,
		Y:        -18,
		Duration: 3200 * time.Millisecond,
		Stagger:  300 * time.Millisecond,
		Radius:   9,
	}

	Parallax = ParallaxConfig{
		Step: 18,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Enabled: false,
	}

	MoodBar = MoodBarConfig{
		ButtonWidth:  84,
		ButtonHeight: 26,
		Spacing:      6,
		Padding:      8,
		FontSize:     13,
		Labels: map[string]string{
			"kitty":    "Kitty",
			"romantic": "Romantic",
			"dreamy":   "Dreamy",
			"party":    "Party",
		},
	}

	Font = FontConfig{
		Title: 34,
		Body:  16,
		Small: 12,
	}
}
