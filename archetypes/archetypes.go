package archetypes

import (
	"github.com/automoto/dragonboat-race/components"
	cfg "github.com/automoto/dragonboat-race/config"
	"github.com/automoto/dragonboat-race/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Race = newArchetype(
		components.Race,
		components.Clock,
	)
	Lane = newArchetype(
		tags.Lane,
		components.Lane,
	)
	Boat = newArchetype(
		tags.Boat,
		components.Boat,
		components.Transform,
		components.Object,
		components.Sprite,
		components.Health,
		components.ActiveEffects,
		components.BoatInput,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
		components.Transform,
		components.Object,
		components.Sprite,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
