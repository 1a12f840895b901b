package components

import (
	cfg "github.com/automoto/wishcake/config"
	"github.com/automoto/wishcake/layout"
	"github.com/yohamta/donburi"
)

type PageData struct {
	Layout  *layout.Page
	Content *cfg.Content
}

var Page = donburi.NewComponentType[PageData]()

// SettingsData holds runtime toggles
type SettingsData struct {
	Debug bool
	Quit  bool // set once quit is requested, read by the game loop
}

var Settings = donburi.NewComponentType[SettingsData]()
