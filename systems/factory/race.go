package factory

import (
	"fmt"
	"math/rand"

	"github.com/automoto/dragonboat-race/archetypes"
	"github.com/automoto/dragonboat-race/components"
	cfg "github.com/automoto/dragonboat-race/config"
	"github.com/segmentio/ksuid"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRace validates rc and builds the race singleton with one lane and boat
// per LaneSetup. Every lane gets its own random source drawn from rng.
func CreateRace(ecs *ecs.ECS, rc cfg.RaceConfig, rng *rand.Rand) (*donburi.Entry, error) {
	rc = rc.WithDefaults()
	if err := rc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid race config: %w", err)
	}

	race := archetypes.Race.Spawn(ecs)

	state := cfg.RaceStateRacing
	var countdown *gween.Tween
	countdownValue := 0
	if rc.CountdownSeconds > 0 {
		state = cfg.RaceStateCountdown
		secs := float32(rc.CountdownSeconds)
		countdown = gween.New(secs, 0, secs, ease.Linear)
		countdownValue = int(rc.CountdownSeconds + 0.999)
	}

	data := components.RaceData{
		ID:             ksuid.New().String(),
		State:          state,
		FinishDistance: rc.FinishDistance,
		Countdown:      countdown,
		CountdownValue: countdownValue,
	}

	for i, setup := range rc.Lanes {
		laneRng := rand.New(rand.NewSource(rng.Int63()))
		lane := CreateLane(ecs, i, setup, rc, laneRng)
		data.Lanes = append(data.Lanes, lane)
	}

	components.Race.SetValue(race, data)
	components.Clock.SetValue(race, components.ClockData{})

	return race, nil
}
