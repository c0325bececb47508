package systems

import (
	"math"

	"github.com/automoto/dragonboat-race/components"
	cfg "github.com/automoto/dragonboat-race/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCountdown advances the pre-race countdown and starts the race when it
// runs out.
func UpdateCountdown(e *ecs.ECS) {
	race := GetRace(e)
	if race == nil || race.State != cfg.RaceStateCountdown {
		return
	}

	if race.Countdown == nil {
		startRace(race)
		return
	}

	current, finished := race.Countdown.Update(float32(Delta(e)))
	if finished {
		startRace(race)
		return
	}
	race.CountdownValue = int(math.Ceil(float64(current)))
}

func startRace(race *components.RaceData) {
	race.State = cfg.RaceStateRacing
	race.CountdownValue = 0
}

// UpdateRace advances the race clock, records finishers and eliminations and
// moves the race into a terminal state.
func UpdateRace(e *ecs.ECS) {
	race := GetRace(e)
	if race == nil || race.State != cfg.RaceStateRacing {
		return
	}

	race.Elapsed += Delta(e)
	race.Frame++

	eliminated := 0
	// Lane order breaks ties between boats finishing on the same frame.
	for _, laneEntry := range race.Lanes {
		boatEntry := components.Lane.Get(laneEntry).Boat
		boat := components.Boat.Get(boatEntry)

		if !boat.Eliminated && components.Health.Get(boatEntry).Current <= 0 {
			boat.Eliminated = true
		}
		if boat.Eliminated {
			eliminated++
			continue
		}

		if !boat.Finished && boat.Distance >= race.FinishDistance {
			boat.Finished = true
			boat.FinishTime = race.Elapsed
			if race.Winner == nil {
				race.Winner = boatEntry
				race.WinnerFrame = race.Frame
			}
		}
	}

	switch {
	case race.Winner != nil:
		race.State = cfg.RaceStateWinnerDeclared
	case eliminated == len(race.Lanes):
		race.State = cfg.RaceStateAllEliminated
	}
}

// CheckWinner returns the winning boat once one has been declared. The winner
// never changes after it is set.
func CheckWinner(e *ecs.ECS) (*donburi.Entry, bool) {
	race := GetRace(e)
	if race == nil || race.Winner == nil {
		return nil, false
	}
	return race.Winner, true
}

// RecordedTime returns the boat's race time after LessTime credits.
func RecordedTime(race *components.RaceData, boat *components.BoatData) float64 {
	t := race.Elapsed
	if boat.Finished {
		t = boat.FinishTime
	}
	return math.Max(0, t-boat.TimeCredit)
}

// Results summarises every lane in lane order.
func Results(e *ecs.ECS) []components.BoatResult {
	race := GetRace(e)
	if race == nil {
		return nil
	}

	results := make([]components.BoatResult, 0, len(race.Lanes))
	for _, laneEntry := range race.Lanes {
		lane := components.Lane.Get(laneEntry)
		boat := components.Boat.Get(lane.Boat)
		results = append(results, components.BoatResult{
			Lane:       lane.Index,
			BoatType:   boat.Type,
			Player:     lane.Player,
			Distance:   boat.Distance,
			Health:     components.Health.Get(lane.Boat).Current,
			Time:       RecordedTime(race, boat),
			Finished:   boat.Finished,
			Eliminated: boat.Eliminated,
			Winner:     race.Winner == lane.Boat,
			Hits:       boat.Hits,
			Pickups:    boat.Pickups,
		})
	}
	return results
}
