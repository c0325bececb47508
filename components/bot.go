package components

import (
	cfg "github.com/automoto/dragonboat-race/config"
	"github.com/yohamta/donburi"
)

// BotData is the steering state of a CPU-controlled boat.
type BotData struct {
	Difficulty    cfg.BotDifficulty
	DecisionTimer int     // frames until the next steering decision
	TargetX       float64 // lane-space x the bot is steering toward
	HasTarget     bool
}

var Bot = donburi.NewComponentType[BotData]()
