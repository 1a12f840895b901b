package archetypes

import (
	"github.com/automoto/wishcake/components"
	cfg "github.com/automoto/wishcake/config"
	"github.com/automoto/wishcake/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Page = newArchetype(
		components.Page,
		components.Settings,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Pointer = newArchetype(
		components.Pointer,
		components.Object,
	)
	Theme = newArchetype(
		components.Theme,
	)
	Confetti = newArchetype(
		components.Confetti,
	)
	Candle = newArchetype(
		tags.Candle,
		components.Candle,
		components.Object,
	)
	ScrollButton = newArchetype(
		tags.ScrollButton,
		components.Object,
	)
	Card = newArchetype(
		tags.Card,
		components.Card,
		components.Object,
		components.Reveal,
	)
	Float = newArchetype(
		tags.Float,
		components.Float,
		components.Object,
		components.Tween,
		components.Reveal,
	)
	Parallax = newArchetype(
		tags.Parallax,
		components.Parallax,
	)
	// Reveal is a section block that only fades in (hero, cake, closing)
	Reveal = newArchetype(
		components.Reveal,
		components.Object,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
