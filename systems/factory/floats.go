package factory

import (
	"math/rand/v2"

	"github.com/automoto/wishcake/archetypes"
	"github.com/automoto/wishcake/components"
	cfg "github.com/automoto/wishcake/config"
	"github.com/automoto/wishcake/layout"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFloats spawns the hero decorations. Each one bobs on a yoyo
// sequence; start offsets are a random permutation of stagger steps.
func CreateFloats(ecs *ecs.ECS, space *resolv.Space, page *layout.Page, rng *rand.Rand) []*donburi.Entry {
	order := rng.Perm(len(page.Floats))
	stagger := float32(cfg.Float.Stagger.Seconds())
	half := float32(cfg.Float.Duration.Seconds())

	var floats []*donburi.Entry
	for i, f := range page.Floats {
		entry := archetypes.Float.Spawn(ecs)
		addObject(space, entry, f.X, f.Y, f.W, f.H, f.Kind)

		components.Float.SetValue(entry, components.FloatData{
			Kind:  f.Kind,
			Delay: float32(order[i]) * stagger,
		})

		// The decoration moves out and back, then the sequence is reset.
		tw := gween.NewSequence()
		tw.Add(
			gween.New(0, 1, half, ease.InOutSine),
			gween.New(1, 0, half, ease.InOutSine),
		)
		components.Tween.Set(entry, tw)

		components.Reveal.SetValue(entry, NewReveal(layout.SectionHero, cfg.Reveal.Floats, i))
		floats = append(floats, entry)
	}
	return floats
}

func CreateParallax(ecs *ecs.ECS, page *layout.Page) []*donburi.Entry {
	var layers []*donburi.Entry
	for i, l := range page.Parallax {
		entry := archetypes.Parallax.Spawn(ecs)
		components.Parallax.SetValue(entry, components.ParallaxData{Layer: l, Index: i})
		layers = append(layers, entry)
	}
	return layers
}
