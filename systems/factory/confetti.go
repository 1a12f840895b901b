package factory

import (
	"image/color"
	"math/rand/v2"

	"github.com/automoto/wishcake/archetypes"
	"github.com/automoto/wishcake/components"
	"github.com/automoto/wishcake/confetti"
	cfg "github.com/automoto/wishcake/config"
	"github.com/automoto/wishcake/frame"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// canvasSurface draws confetti onto the entry's current canvas image, which
// is replaced on resize.
type canvasSurface struct {
	entry *donburi.Entry
}

func (s canvasSurface) canvas() *ebiten.Image {
	if !s.entry.Valid() {
		return nil
	}
	return components.Confetti.Get(s.entry).Canvas
}

func (s canvasSurface) Clear() {
	if c := s.canvas(); c != nil {
		c.Clear()
	}
}

func (s canvasSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.RGBA) {
	c := s.canvas()
	if c == nil {
		return
	}
	vector.StrokeLine(c, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

// CreateConfetti spawns the full-viewport confetti canvas with its own frame
// loop on the wall clock.
func CreateConfetti(ecs *ecs.ECS, width, height int, rng *rand.Rand) *donburi.Entry {
	entry := archetypes.Confetti.Spawn(ecs)
	frames := frame.NewLoop()

	opts := []confetti.Option{
		confetti.WithConfig(cfg.Confetti),
		confetti.WithBounds(float64(width), float64(height)),
	}
	if rng != nil {
		opts = append(opts, confetti.WithRand(rng))
	}

	components.Confetti.SetValue(entry, components.ConfettiData{
		System: confetti.New(canvasSurface{entry: entry}, frames, opts...),
		Frames: frames,
		Clock:  frame.NewClock(),
		Canvas: ebiten.NewImage(width, height),
	})
	return entry
}
