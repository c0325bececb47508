package systems

import (
	"github.com/automoto/dragonboat-race/components"
	"github.com/automoto/dragonboat-race/gamemath"
	"github.com/automoto/dragonboat-race/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBoats applies input, integrates movement and ticks effects for every
// boat still racing.
func UpdateBoats(e *ecs.ECS) {
	dt := Delta(e)
	if dt <= 0 {
		return
	}

	tags.Boat.Each(e.World, func(entry *donburi.Entry) {
		boat := components.Boat.Get(entry)
		if !boat.Active() {
			return
		}
		updateBoat(entry, dt)
	})
}

func updateBoat(entry *donburi.Entry, dt float64) {
	boat := components.Boat.Get(entry)
	input := components.BoatInput.Get(entry)
	tr := components.Transform.Get(entry)
	active := components.ActiveEffects.Get(entry)
	health := components.Health.Get(entry)
	lane := components.Lane.Get(boat.Lane)
	stats := boat.Stats

	// Forward speed
	throttle := gamemath.Clamp(input.Throttle, -1, 1)
	switch {
	case throttle > 0:
		tr.Velocity.Y += stats.Acceleration * throttle * dt
	case throttle < 0:
		tr.Velocity.Y = gamemath.ApplyFriction(tr.Velocity.Y, stats.Acceleration*-throttle*dt)
	}
	tr.Velocity.Y = gamemath.Clamp(tr.Velocity.Y, 0, stats.MaxSpeed*active.SpeedMultiplier())

	// Steering
	tr.Velocity.X = gamemath.Clamp(input.Steer, -1, 1) * stats.Maneuverability

	// The boat stays anchored vertically; the river scrolls past it.
	tr.Position.X += tr.Velocity.X * dt
	tr.Position.X = gamemath.Clamp(tr.Position.X, lane.LeftX, lane.RightX()-stats.Width)
	boat.Distance += tr.Velocity.Y * dt

	tickEffects(entry, dt)

	health.Clamp()
	if health.Current <= 0 {
		boat.Eliminated = true
	}

	syncObject(entry)
}
