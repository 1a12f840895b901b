package factory

import (
	"math"

	"github.com/automoto/wishcake/archetypes"
	"github.com/automoto/wishcake/candle"
	"github.com/automoto/wishcake/components"
	cfg "github.com/automoto/wishcake/config"
	"github.com/automoto/wishcake/layout"
	"github.com/automoto/wishcake/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCandle spawns the lit candle. Missing flame, smoke or reveal
// elements in the layout leave the matching element nil. confetti may be nil.
func CreateCandle(ecs *ecs.ECS, space *resolv.Space, page *layout.Page, confetti candle.Starter) *donburi.Entry {
	body, ok := page.Element(layout.ElementCandle)
	if !ok {
		return nil
	}

	var el candle.Elements
	hit := body
	if flame, ok := page.Element(layout.ElementFlame); ok {
		el.Flame = candle.NewElement(1)
		hit = union(hit, flame)
	}
	if _, ok := page.Element(layout.ElementSmoke); ok {
		el.Smoke = candle.NewElement(0)
	}
	if _, ok := page.Element(layout.ElementReveal); ok {
		el.Reveal = candle.NewElement(0)
	}

	entry := archetypes.Candle.Spawn(ecs)
	addObject(space, entry, hit.X, hit.Y, hit.W, hit.H, tags.ResolvCandle)
	components.Candle.SetValue(entry, components.CandleData{
		Sequencer: candle.NewSequencer(el, cfg.Candle.Pulse, confetti),
	})
	return entry
}

func union(a, b layout.Rect) layout.Rect {
	x0 := math.Min(a.X, b.X)
	y0 := math.Min(a.Y, b.Y)
	x1 := math.Max(a.X+a.W, b.X+b.W)
	y1 := math.Max(a.Y+a.H, b.Y+b.H)
	return layout.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
