package systems

import (
	"github.com/automoto/wishcake/components"
	cfg "github.com/automoto/wishcake/config"
	"github.com/automoto/wishcake/theme"
	"github.com/yohamta/donburi/ecs"
)

// themeActions in key order; the last key pressed in a tick wins
var themeActions = []struct {
	action cfg.ActionID
	name   theme.Name
}{
	{cfg.ActionThemeKitty, theme.Kitty},
	{cfg.ActionThemeRomantic, theme.Romantic},
	{cfg.ActionThemeDreamy, theme.Dreamy},
	{cfg.ActionThemeParty, theme.Party},
}

// UpdateTheme switches mood from the number keys. Several keys pressed in
// one tick apply once, choosing the highest-numbered one.
func UpdateTheme(e *ecs.ECS) {
	input := getOrCreateInput(e)
	var picked theme.Name
	for _, ta := range themeActions {
		if GetAction(input, ta.action).JustPressed {
			picked = ta.name
		}
	}
	if picked == "" {
		return
	}
	SetTheme(e, string(picked))
	PlaySound(e, cfg.SoundClick)
}

// SetTheme applies a mood theme by name. Unknown names clear the theme.
func SetTheme(e *ecs.ECS, name string) {
	switcher := themeSwitcher(e)
	if switcher == nil {
		return
	}
	switcher.SetTheme(name)
	debugf(e, "theme: %q -> %v", name, switcher.Classes())
}

func themeSwitcher(e *ecs.ECS) *theme.Switcher {
	entry, ok := components.Theme.First(e.World)
	if !ok {
		return nil
	}
	return components.Theme.Get(entry).Switcher
}

// currentPalette is the palette of the applied theme, or the default
func currentPalette(e *ecs.ECS) cfg.Palette {
	switcher := themeSwitcher(e)
	if switcher == nil {
		return cfg.DefaultPalette
	}
	return cfg.PaletteFor(switcher.Current())
}
