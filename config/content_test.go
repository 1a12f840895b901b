package config

import (
	"errors"
	"testing"
	"testing/fstest"
)

const sampleContent = `
title: Happy Birthday
subtitle: A little page made for you
wishes:
  - icon: star
    title: Joy
    text: May every day shine.
  - title: Love
    text: Always surrounded by it.
cake_text:
  - Make a wish
candle_hint: Tap the candle
reveal: Your wish is on its way
closing: See you soon
`

func TestParseContent(t *testing.T) {
	c, err := ParseContent([]byte(sampleContent))
	if err != nil {
		t.Fatalf("ParseContent() error = %v", err)
	}
	if c.Title != "Happy Birthday" {
		t.Errorf("Title = %q, want %q", c.Title, "Happy Birthday")
	}
	if len(c.Wishes) != 2 {
		t.Fatalf("len(Wishes) = %d, want 2", len(c.Wishes))
	}
	if c.Wishes[0].Icon != "star" || c.Wishes[1].Title != "Love" {
		t.Errorf("Wishes = %+v", c.Wishes)
	}
	if len(c.CakeText) != 1 || c.CakeText[0] != "Make a wish" {
		t.Errorf("CakeText = %v, want [Make a wish]", c.CakeText)
	}
	if c.CandleHint != "Tap the candle" {
		t.Errorf("CandleHint = %q", c.CandleHint)
	}
}

func TestParseContentValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing title", "wishes:\n  - title: a\nreveal: r\n"},
		{"no wishes", "title: t\nreveal: r\n"},
		{"blank wish title", "title: t\nwishes:\n  - text: x\nreveal: r\n"},
		{"missing reveal", "title: t\nwishes:\n  - title: a\n"},
		{"malformed", "title: [unterminated\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseContent([]byte(tt.yaml)); err == nil {
				t.Errorf("ParseContent() error = nil, want error")
			}
		})
	}
}

func TestParseContentNoWishes(t *testing.T) {
	_, err := ParseContent([]byte("title: t\nreveal: r\n"))
	if !errors.Is(err, ErrNoWishes) {
		t.Errorf("error = %v, want ErrNoWishes", err)
	}
}

func TestLoadContent(t *testing.T) {
	fsys := fstest.MapFS{
		"content/greeting.yaml": {Data: []byte(sampleContent)},
	}
	c, err := LoadContent(fsys, DefaultContentPath)
	if err != nil {
		t.Fatalf("LoadContent() error = %v", err)
	}
	if c.Closing != "See you soon" {
		t.Errorf("Closing = %q, want %q", c.Closing, "See you soon")
	}

	if _, err := LoadContent(fsys, "content/missing.yaml"); err == nil {
		t.Error("LoadContent(missing) error = nil, want error")
	}
}

func TestPaletteFor(t *testing.T) {
	if got := PaletteFor("", false); got != DefaultPalette {
		t.Errorf("PaletteFor(none) = %+v, want default", got)
	}
	for name, want := range Palettes {
		if got := PaletteFor(name, true); got != want {
			t.Errorf("PaletteFor(%s) = %+v, want %+v", name, got, want)
		}
	}
	if got := PaletteFor("neon", true); got != DefaultPalette {
		t.Errorf("PaletteFor(unknown) = %+v, want default", got)
	}
}
