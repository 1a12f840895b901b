package systems

import (
	"log"

	"github.com/automoto/wishcake/components"
	cfg "github.com/automoto/wishcake/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the page settings, creating them from the
// global debug config if the page has none yet
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{Debug: cfg.Debug.Enabled})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings handles the debug toggle and quit request
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		log.Printf("debug overlay: %v", settings.Debug)
	}
	if GetAction(input, cfg.ActionToggleMute).JustPressed {
		cfg.Audio.Muted = !cfg.Audio.Muted
		debugf(e, "muted: %v", cfg.Audio.Muted)
	}
	if GetAction(input, cfg.ActionQuit).JustPressed {
		settings.Quit = true
	}
}

// debugf logs a lifecycle note when debugging is on
func debugf(e *ecs.ECS, format string, args ...any) {
	if GetOrCreateSettings(e).Debug {
		log.Printf(format, args...)
	}
}
