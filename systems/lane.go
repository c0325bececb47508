package systems

import (
	"github.com/automoto/dragonboat-race/components"
	cfg "github.com/automoto/dragonboat-race/config"
	"github.com/automoto/dragonboat-race/gamemath"
	"github.com/automoto/dragonboat-race/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLanes runs the per-lane pipeline: spawn, move, collide, cull.
// Lanes whose boat is out of the race are frozen.
func UpdateLanes(e *ecs.ECS) {
	race := GetRace(e)
	if race == nil {
		return
	}
	dt := Delta(e)
	if dt <= 0 {
		return
	}

	for _, laneEntry := range race.Lanes {
		lane := components.Lane.Get(laneEntry)
		if !components.Boat.Get(lane.Boat).Active() {
			continue
		}
		updateLane(e, laneEntry, lane, dt)
	}
}

func updateLane(e *ecs.ECS, laneEntry *donburi.Entry, lane *components.LaneData, dt float64) {
	// Spawn
	lane.SpawnTimer += dt
	if lane.SpawnTimer >= lane.NextSpawn {
		lane.SpawnTimer = 0
		lane.NextSpawn = factory.NextSpawnDelay(lane)
		if len(lane.Obstacles) < lane.MaxObstacles {
			factory.CreateObstacle(e, laneEntry, cfg.PickObstacleType(lane.Rng))
		}
	}

	// Move relative to the boat
	boatSpeed := components.Transform.Get(lane.Boat).Velocity.Y
	for _, obstacle := range lane.Obstacles {
		MoveObstacle(obstacle, dt, boatSpeed)
	}

	// Collisions come before off-screen culling, so an obstacle that hits the
	// boat on the frame it leaves the screen still applies its effect.
	collideLane(lane)

	cullObstacles(e, lane)
}

// MoveObstacle drifts an obstacle toward the bottom of the screen by the
// boat's forward speed plus its own speed.
func MoveObstacle(obstacle *donburi.Entry, dt, boatVelocityY float64) {
	tr := components.Transform.Get(obstacle)
	od := components.Obstacle.Get(obstacle)
	drift := gamemath.Vector{Y: -(boatVelocityY + od.Speed)}
	tr.Position = tr.Position.Add(drift.Scale(dt))
	syncObject(obstacle)
}

// OffScreen reports whether the obstacle has fully left the visible area.
func OffScreen(obstacle *donburi.Entry) bool {
	return components.Object.Get(obstacle).Hitbox().Top() < 0
}

// cullObstacles removes hit and off-screen obstacles, keeping spawn order.
func cullObstacles(e *ecs.ECS, lane *components.LaneData) {
	kept := lane.Obstacles[:0]
	for _, obstacle := range lane.Obstacles {
		if components.Obstacle.Get(obstacle).Hit || OffScreen(obstacle) {
			lane.Space.Remove(components.Object.Get(obstacle).Object)
			e.World.Remove(obstacle.Entity())
			continue
		}
		kept = append(kept, obstacle)
	}
	for i := len(kept); i < len(lane.Obstacles); i++ {
		lane.Obstacles[i] = nil
	}
	lane.Obstacles = kept
}
