package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/dragonboat-race/components"
	cfg "github.com/automoto/dragonboat-race/config"
	"github.com/automoto/dragonboat-race/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// quietRace is a race without a countdown whose lanes never spawn on their own.
func quietRace(lanes int) cfg.RaceConfig {
	return cfg.RaceConfig{
		Lanes:          cfg.UniformLanes(lanes, 320, cfg.BoatNormal),
		FinishDistance: 1000,
		SpawnInterval:  1e9,
	}
}

func newTestRace(t *testing.T, rc cfg.RaceConfig) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	if _, err := factory.CreateRace(e, rc, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("CreateRace: %v", err)
	}
	return e
}

// step runs one frame with the same system order as the race scene.
func step(e *ecs.ECS, dt float64) {
	clock, _ := components.Clock.First(e.World)
	components.Clock.Get(clock).Delta = dt

	UpdateCountdown(e)
	WithRaceChecks(UpdateBots)(e)
	WithRaceChecks(UpdateBoats)(e)
	WithRaceChecks(UpdateLanes)(e)
	WithRaceChecks(UpdateRace)(e)
}

func laneEntry(e *ecs.ECS, i int) *donburi.Entry {
	return GetRace(e).Lanes[i]
}

func boatEntry(e *ecs.ECS, i int) *donburi.Entry {
	return components.Lane.Get(laneEntry(e, i)).Boat
}

// placeAt moves an entity and its hitbox to (x, y).
func placeAt(entry *donburi.Entry, x, y float64) {
	tr := components.Transform.Get(entry)
	tr.Position.X = x
	tr.Position.Y = y
	syncObject(entry)
}

// driveManually turns a bot boat into one that only follows its input.
func driveManually(boat *donburi.Entry) {
	if boat.HasComponent(components.Bot) {
		boat.RemoveComponent(components.Bot)
	}
}
