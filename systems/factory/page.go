package factory

import (
	"github.com/automoto/wishcake/archetypes"
	"github.com/automoto/wishcake/components"
	cfg "github.com/automoto/wishcake/config"
	"github.com/automoto/wishcake/layout"
	"github.com/automoto/wishcake/tags"
	"github.com/automoto/wishcake/theme"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePage(ecs *ecs.ECS, page *layout.Page, content *cfg.Content, debug bool) *donburi.Entry {
	entry := archetypes.Page.Spawn(ecs)
	components.Page.SetValue(entry, components.PageData{
		Layout:  page,
		Content: content,
	})
	components.Settings.SetValue(entry, components.SettingsData{Debug: debug})
	return entry
}

// CreatePointer spawns the 1x1 hit box used for hit testing
func CreatePointer(ecs *ecs.ECS, space *resolv.Space) *donburi.Entry {
	pointer := archetypes.Pointer.Spawn(ecs)
	addObject(space, pointer, -1, -1, 1, 1, tags.ResolvPointer)
	return pointer
}

func CreateScrollButton(ecs *ecs.ECS, space *resolv.Space, page *layout.Page) *donburi.Entry {
	rect, ok := page.Element(layout.ElementScrollButton)
	if !ok {
		return nil
	}
	button := archetypes.ScrollButton.Spawn(ecs)
	addObject(space, button, rect.X, rect.Y, rect.W, rect.H, tags.ResolvScrollButton)
	return button
}

func CreateTheme(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Theme.Spawn(ecs)
	ids := make([]string, len(theme.All))
	for i, name := range theme.All {
		ids[i] = string(name)
	}
	components.Theme.SetValue(entry, components.ThemeData{
		Switcher: theme.NewSwitcher(ids...),
	})
	return entry
}
