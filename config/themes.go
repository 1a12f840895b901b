package config

import (
	"image/color"

	"github.com/automoto/wishcake/theme"
)

// Palette is the set of colors the page renders with
type Palette struct {
	BackgroundTop    color.RGBA
	BackgroundBottom color.RGBA
	Accent           color.RGBA
	Card             color.RGBA
	Text             color.RGBA
	MutedText        color.RGBA
	Float            color.RGBA
}

// DefaultPalette is used while no theme is applied
var DefaultPalette Palette

// Palettes maps each mood theme to its colors
var Palettes map[theme.Name]Palette

// InitialTheme is applied once the page is built; empty means none
var InitialTheme string

// PaletteFor returns the palette of the current theme, or the default palette
func PaletteFor(name theme.Name, ok bool) Palette {
	if !ok {
		return DefaultPalette
	}
	if p, found := Palettes[name]; found {
		return p
	}
	return DefaultPalette
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func init() {
	DefaultPalette = Palette{
		BackgroundTop:    rgb(0xff, 0xe4, 0xec),
		BackgroundBottom: rgb(0xff, 0xf6, 0xe9),
		Accent:           rgb(0xff, 0x6f, 0x91),
		Card:             rgb(0xff, 0xff, 0xff),
		Text:             rgb(0x4a, 0x2c, 0x3a),
		MutedText:        rgb(0x8a, 0x6c, 0x7a),
		Float:            rgb(0xff, 0x9a, 0xb3),
	}

	Palettes = map[theme.Name]Palette{
		theme.Kitty: {
			BackgroundTop:    rgb(0xff, 0xf0, 0xf5),
			BackgroundBottom: rgb(0xff, 0xe0, 0xea),
			Accent:           rgb(0xff, 0x85, 0xa2),
			Card:             rgb(0xff, 0xfa, 0xfc),
			Text:             rgb(0x5c, 0x3b, 0x48),
			MutedText:        rgb(0x9c, 0x7b, 0x88),
			Float:            rgb(0xff, 0xb6, 0xc9),
		},
		theme.Romantic: {
			BackgroundTop:    rgb(0x7a, 0x1f, 0x3d),
			BackgroundBottom: rgb(0x2d, 0x0a, 0x1c),
			Accent:           rgb(0xff, 0x4d, 0x6d),
			Card:             rgb(0x4a, 0x14, 0x2a),
			Text:             rgb(0xff, 0xe6, 0xee),
			MutedText:        rgb(0xd9, 0xa5, 0xb5),
			Float:            rgb(0xff, 0x4d, 0x6d),
		},
		theme.Dreamy: {
			BackgroundTop:    rgb(0xc9, 0xd6, 0xff),
			BackgroundBottom: rgb(0xe2, 0xc9, 0xff),
			Accent:           rgb(0x84, 0x5e, 0xc2),
			Card:             rgb(0xf7, 0xf3, 0xff),
			Text:             rgb(0x35, 0x2a, 0x5c),
			MutedText:        rgb(0x6f, 0x63, 0x9a),
			Float:            rgb(0xb3, 0x9d, 0xff),
		},
		theme.Party: {
			BackgroundTop:    rgb(0x1b, 0x10, 0x3d),
			BackgroundBottom: rgb(0x0b, 0x2e, 0x4a),
			Accent:           rgb(0xff, 0xc7, 0x5f),
			Card:             rgb(0x2a, 0x1f, 0x5a),
			Text:             rgb(0xf9, 0xf8, 0x71),
			MutedText:        rgb(0x00, 0xc9, 0xa7),
			Float:            rgb(0xff, 0x96, 0x71),
		},
	}
}
