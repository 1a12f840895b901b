package components

import (
	"github.com/automoto/wishcake/theme"
	"github.com/yohamta/donburi"
)

type ThemeData struct {
	Switcher *theme.Switcher
}

var Theme = donburi.NewComponentType[ThemeData]()
