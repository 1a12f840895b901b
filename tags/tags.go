package tags

import "github.com/yohamta/donburi"

var (
	Candle       = donburi.NewTag().SetName("Candle")
	Card         = donburi.NewTag().SetName("Card")
	ScrollButton = donburi.NewTag().SetName("ScrollButton")
	Float        = donburi.NewTag().SetName("Float")
	Parallax     = donburi.NewTag().SetName("Parallax")
	Hero         = donburi.NewTag().SetName("Hero")
	Cake         = donburi.NewTag().SetName("Cake")
	CakeText     = donburi.NewTag().SetName("CakeText")
	Closing      = donburi.NewTag().SetName("Closing")
)

// Resolv tags for pointer hit testing
const (
	ResolvCandle       = "candle"
	ResolvCard         = "card"
	ResolvScrollButton = "scrollButton"
	ResolvPointer      = "pointer"
)
