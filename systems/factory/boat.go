package factory

import (
	"github.com/automoto/dragonboat-race/archetypes"
	"github.com/automoto/dragonboat-race/components"
	cfg "github.com/automoto/dragonboat-race/config"
	"github.com/automoto/dragonboat-race/gamemath"
	"github.com/automoto/dragonboat-race/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBoat spawns the boat of a lane, centered horizontally at the anchor y.
// Player boats get the Player tag; every other boat is bot-driven.
func CreateBoat(ecs *ecs.ECS, lane *donburi.Entry, setup cfg.LaneSetup) *donburi.Entry {
	var boat *donburi.Entry
	if setup.Player {
		boat = archetypes.Boat.Spawn(ecs, tags.Player)
	} else {
		boat = archetypes.Boat.Spawn(ecs, components.Bot)
		components.Bot.SetValue(boat, components.BotData{
			Difficulty: setup.Bot,
		})
	}

	stats := cfg.Boats.Types[setup.BoatType]
	pos := gamemath.Vector{
		X: setup.LeftX + (setup.Width-stats.Width)/2,
		Y: cfg.Boats.AnchorY,
	}

	obj := resolv.NewObject(pos.X, pos.Y, stats.Width, stats.Height, tags.ResolvBoat)
	obj.SetShape(resolv.NewRectangle(0, 0, stats.Width, stats.Height))
	obj.Data = boat
	components.Object.SetValue(boat, components.ObjectData{Object: obj})
	components.Lane.Get(lane).Space.Add(obj)

	components.Transform.SetValue(boat, components.TransformData{Position: pos})
	components.Sprite.SetValue(boat, components.SpriteData{Texture: stats.Texture})
	components.Health.SetValue(boat, components.HealthData{
		Current: stats.MaxHealth,
		Max:     stats.MaxHealth,
	})
	components.ActiveEffects.SetValue(boat, components.ActiveEffectsData{})
	components.Boat.SetValue(boat, components.BoatData{
		Type:  setup.BoatType,
		Stats: stats,
		Lane:  lane,
	})

	return boat
}
