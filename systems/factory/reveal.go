package factory

import (
	"time"

	"github.com/automoto/wishcake/archetypes"
	"github.com/automoto/wishcake/components"
	cfg "github.com/automoto/wishcake/config"
	"github.com/automoto/wishcake/layout"
	"github.com/automoto/wishcake/timeline"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewReveal builds a hidden presence and the timeline that brings it in.
// index staggers items of the same group.
func NewReveal(section string, rc cfg.RevealConfig, index int) components.RevealData {
	state := &components.Presence{
		Alpha:   0,
		OffsetX: rc.OffsetX,
		OffsetY: rc.OffsetY,
	}
	offset := rc.Delay + time.Duration(index)*rc.Stagger
	tl := timeline.New(timeline.Step{
		Name:     section,
		Offset:   offset,
		Duration: rc.Duration,
		Tracks: []timeline.Track{
			{Target: &state.Alpha, From: timeline.From(0), To: 1, Ease: rc.Ease},
			{Target: &state.OffsetX, From: timeline.From(rc.OffsetX), To: 0, Ease: rc.Ease},
			{Target: &state.OffsetY, From: timeline.From(rc.OffsetY), To: 0, Ease: rc.Ease},
		},
	})
	return components.RevealData{
		Section:  section,
		Trigger:  rc.Trigger,
		Timeline: tl,
		State:    state,
	}
}

// CreateReveal spawns a section block that fades in when its section scrolls
// into view. Returns nil when the layout has no such element.
func CreateReveal(ecs *ecs.ECS, space *resolv.Space, page *layout.Page, element, section string, rc cfg.RevealConfig, tag donburi.IComponentType) *donburi.Entry {
	rect, ok := page.Element(element)
	if !ok {
		return nil
	}
	entry := archetypes.Reveal.Spawn(ecs, tag)
	addObject(space, entry, rect.X, rect.Y, rect.W, rect.H, element)
	components.Reveal.SetValue(entry, NewReveal(section, rc, 0))
	return entry
}
