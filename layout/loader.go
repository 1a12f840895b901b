package layout

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

// Object group names in the TMX map
const (
	groupSections = "Sections"
	groupElements = "Elements"
	groupCards    = "Cards"
	groupFloats   = "Floats"
	groupParallax = "Parallax"
)

// ErrNoSections is returned for a map without a Sections object group.
var ErrNoSections = errors.New("layout has no sections")

// Load parses a TMX file into page geometry. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Page, error) {
	pageMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	page := &Page{
		Width:    pageMap.Width * pageMap.TileWidth,
		Height:   pageMap.Height * pageMap.TileHeight,
		Sections: make(map[string]Rect),
		Elements: make(map[string]Rect),
	}

	for _, og := range pageMap.ObjectGroups {
		switch og.Name {
		case groupSections:
			for _, o := range og.Objects {
				page.Sections[o.Name] = rectOf(o)
			}
		case groupElements:
			for _, o := range og.Objects {
				page.Elements[o.Name] = rectOf(o)
			}
		case groupCards:
			for _, o := range og.Objects {
				page.Cards = append(page.Cards, Card{
					Rect:  rectOf(o),
					Index: o.Properties.GetInt("index"),
				})
			}
		case groupFloats:
			for _, o := range og.Objects {
				kind := o.Name
				if kind == "" {
					kind = "heart"
				}
				page.Floats = append(page.Floats, Float{
					Rect: rectOf(o),
					Kind: kind,
				})
			}
		case groupParallax:
			for _, o := range og.Objects {
				page.Parallax = append(page.Parallax, ParallaxLayer{
					Rect:  rectOf(o),
					Depth: o.Properties.GetInt("depth"),
				})
			}
		}
	}

	if len(page.Sections) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSections)
	}

	// Cards in wish order, parallax layers back to front
	sort.SliceStable(page.Cards, func(i, j int) bool {
		return page.Cards[i].Index < page.Cards[j].Index
	})
	sort.SliceStable(page.Parallax, func(i, j int) bool {
		return page.Parallax[i].Depth < page.Parallax[j].Depth
	})

	return page, nil
}

func rectOf(o *tiled.Object) Rect {
	return Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}
