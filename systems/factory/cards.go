package factory

import (
	"github.com/automoto/wishcake/archetypes"
	"github.com/automoto/wishcake/components"
	cfg "github.com/automoto/wishcake/config"
	"github.com/automoto/wishcake/layout"
	"github.com/automoto/wishcake/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCards spawns one card per layout slot that has a wish to show
func CreateCards(ecs *ecs.ECS, space *resolv.Space, page *layout.Page, wishes []cfg.Wish) []*donburi.Entry {
	var cards []*donburi.Entry
	for _, slot := range page.Cards {
		if slot.Index < 0 || slot.Index >= len(wishes) {
			continue
		}
		card := archetypes.Card.Spawn(ecs)
		addObject(space, card, slot.X, slot.Y, slot.W, slot.H, tags.ResolvCard)
		components.Card.SetValue(card, components.CardData{
			Index:        slot.Index,
			Wish:         wishes[slot.Index],
			Scale:        1,
			TargetScale:  1,
			LerpSpeed:    cfg.Card.LeaveLerp,
			Shadow:       cfg.Card.ShadowRest,
			TargetShadow: cfg.Card.ShadowRest,
		})
		components.Reveal.SetValue(card, NewReveal(layout.SectionWishes, cfg.Reveal.Cards, len(cards)))
		cards = append(cards, card)
	}
	return cards
}
