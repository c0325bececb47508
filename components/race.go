package components

import (
	cfg "github.com/automoto/dragonboat-race/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// RaceData stores the race state. This is a singleton component - only one
// race exists per world.
type RaceData struct {
	ID             string
	State          cfg.RaceStateID
	Lanes          []*donburi.Entry // lane order
	FinishDistance float64

	Elapsed float64 // seconds of racing, countdown excluded
	Frame   int     // racing frames simulated

	Winner      *donburi.Entry // nil until a boat finishes
	WinnerFrame int

	Countdown      *gween.Tween
	CountdownValue int // number to show (3, 2, 1); 0 once racing
}

// BoatResult is the end-of-race summary for one lane.
type BoatResult struct {
	Lane       int
	BoatType   cfg.BoatTypeID
	Player     bool
	Distance   float64
	Health     float64
	Time       float64 // recorded time after time credits
	Finished   bool
	Eliminated bool
	Winner     bool
	Hits       int
	Pickups    int
}

var Race = donburi.NewComponentType[RaceData]()
