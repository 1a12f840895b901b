package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Body   FontName = "body"
	Bold   FontName = "bold"
	Title  FontName = "title"
	Small  FontName = "small"
	Button FontName = "button"
)

func (f FontName) Get() text.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]text.Face{}
)

// LoadFontWithSize parses ttf and registers it under name at size points
func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = text.NewGoXFace(truetype.NewFace(fontData, &truetype.Options{Size: size}))
	return nil
}

// LoadDefaults registers every face the page uses from the Go fonts
func LoadDefaults(titleSize, bodySize, smallSize, buttonSize float64) error {
	faces := []struct {
		name FontName
		ttf  []byte
		size float64
	}{
		{Title, gobold.TTF, titleSize},
		{Bold, gobold.TTF, bodySize},
		{Body, goregular.TTF, bodySize},
		{Small, goregular.TTF, smallSize},
		{Button, goregular.TTF, buttonSize},
	}
	for _, f := range faces {
		if err := LoadFontWithSize(f.name, f.ttf, f.size); err != nil {
			return err
		}
	}
	return nil
}

func getFont(name FontName) text.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
