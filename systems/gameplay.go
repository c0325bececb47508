package systems

import (
	"github.com/automoto/dragonboat-race/components"
	cfg "github.com/automoto/dragonboat-race/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetRace returns the race singleton, or nil if no race was created.
func GetRace(e *ecs.ECS) *components.RaceData {
	entry, ok := components.Race.First(e.World)
	if !ok {
		return nil
	}
	return components.Race.Get(entry)
}

// Delta returns the current frame's delta time in seconds.
func Delta(e *ecs.ECS) float64 {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Delta
}

// IsRacing returns true while boats are being simulated.
func IsRacing(e *ecs.ECS) bool {
	race := GetRace(e)
	return race != nil && race.State == cfg.RaceStateRacing
}

// IsRaceOver returns true once the race reached a terminal state.
func IsRaceOver(e *ecs.ECS) bool {
	race := GetRace(e)
	return race != nil && race.State.Terminal()
}

// WithRaceChecks wraps a system to skip execution outside the racing state,
// so nothing mutates during the countdown or after the race has ended.
func WithRaceChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsRacing(e) {
			return
		}
		system(e)
	}
}

// syncObject moves the entity's hitbox onto its transform position.
func syncObject(entry *donburi.Entry) {
	tr := components.Transform.Get(entry)
	obj := components.Object.Get(entry)
	box := obj.Hitbox()
	box.Move(tr.Position.X, tr.Position.Y)
	obj.X, obj.Y = box.X, box.Y
	obj.Update()
}
