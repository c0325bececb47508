package factory

import (
	"math/rand"

	"github.com/automoto/dragonboat-race/archetypes"
	"github.com/automoto/dragonboat-race/components"
	cfg "github.com/automoto/dragonboat-race/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLane creates a lane entity, its collision space and its boat.
// rc must already carry spawn defaults.
func CreateLane(ecs *ecs.ECS, index int, setup cfg.LaneSetup, rc cfg.RaceConfig, rng *rand.Rand) *donburi.Entry {
	lane := archetypes.Lane.Spawn(ecs)

	components.Lane.SetValue(lane, components.LaneData{
		Index:         index,
		LeftX:         setup.LeftX,
		Width:         setup.Width,
		Player:        setup.Player,
		SpawnInterval: rc.SpawnInterval,
		SpawnJitter:   rc.SpawnJitter,
		MaxObstacles:  rc.MaxObstacles,
		Rng:           rng,
		Space:         CreateLaneSpace(setup),
	})

	laneData := components.Lane.Get(lane)
	laneData.NextSpawn = NextSpawnDelay(laneData)

	boat := CreateBoat(ecs, lane, setup)
	components.Lane.Get(lane).Boat = boat

	return lane
}

// NextSpawnDelay returns the seconds until the lane's next obstacle.
func NextSpawnDelay(lane *components.LaneData) float64 {
	if lane.SpawnJitter <= 0 {
		return lane.SpawnInterval
	}
	return lane.SpawnInterval + lane.Rng.Float64()*lane.SpawnJitter
}
