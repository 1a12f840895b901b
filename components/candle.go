package components

import (
	"github.com/automoto/wishcake/candle"
	"github.com/yohamta/donburi"
)

type CandleData struct {
	Sequencer *candle.Sequencer
}

var Candle = donburi.NewComponentType[CandleData]()
