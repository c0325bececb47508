package components

import (
	cfg "github.com/automoto/dragonboat-race/config"
	"github.com/yohamta/donburi"
)

// BoatData is the race state of a boat. Health, effects and movement live in
// their own components.
type BoatData struct {
	Type     cfg.BoatTypeID
	Stats    cfg.BoatTypeConfig
	Lane     *donburi.Entry
	Distance float64 // px travelled downstream

	// Seconds deducted from the recorded race time (LessTime pickups).
	TimeCredit float64

	Eliminated bool
	Finished   bool
	FinishTime float64 // race clock when the finish line was crossed

	Hits    int // harmful obstacles struck
	Pickups int // power-ups collected
}

// Active reports whether the boat still takes part in the simulation.
func (b *BoatData) Active() bool {
	return !b.Eliminated && !b.Finished
}

var Boat = donburi.NewComponentType[BoatData]()
