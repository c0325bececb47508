package factory

import (
	"math/rand"

	"github.com/automoto/dragonboat-race/archetypes"
	"github.com/automoto/dragonboat-race/components"
	cfg "github.com/automoto/dragonboat-race/config"
	"github.com/automoto/dragonboat-race/gamemath"
	"github.com/automoto/dragonboat-race/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnPosition picks where a new obstacle enters the lane: x uniform in
// [left, left+width-obstacleWidth) so the obstacle fits the lane, y just above
// the visible area.
func SpawnPosition(rng *rand.Rand, typ cfg.ObstacleTypeConfig, left, width float64) gamemath.Vector {
	span := width - typ.Width
	if span < 0 {
		span = 0
	}
	return gamemath.Vector{
		X: left + rng.Float64()*span,
		Y: float64(cfg.C.Height),
	}
}

// CreateObstacle spawns an obstacle of the given type into a lane using the
// lane's random source. The new obstacle is appended to the lane's stream.
func CreateObstacle(ecs *ecs.ECS, lane *donburi.Entry, typeID cfg.ObstacleTypeID) *donburi.Entry {
	laneData := components.Lane.Get(lane)
	typ := cfg.Obstacles.Types[typeID]

	obstacle := archetypes.Obstacle.Spawn(ecs)
	pos := SpawnPosition(laneData.Rng, typ, laneData.LeftX, laneData.Width)

	resolvTags := []string{tags.ResolvObstacle}
	if typ.Powerup {
		resolvTags = append(resolvTags, tags.ResolvPowerup)
	}
	obj := resolv.NewObject(pos.X, pos.Y, typ.Width, typ.Height, resolvTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, typ.Width, typ.Height))
	obj.Data = obstacle
	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})
	laneData.Space.Add(obj)

	components.Transform.SetValue(obstacle, components.TransformData{Position: pos})
	components.Sprite.SetValue(obstacle, components.SpriteData{Texture: typ.Texture})
	components.Obstacle.SetValue(obstacle, components.ObstacleData{
		Type:   typeID,
		Speed:  typ.Speed,
		Effect: components.EffectFromDef(typ.Effect),
		Lane:   lane,
	})

	laneData.Obstacles = append(laneData.Obstacles, obstacle)
	laneData.Spawned++

	return obstacle
}
