package scenes

import (
	"math/rand"

	"github.com/automoto/dragonboat-race/components"
	cfg "github.com/automoto/dragonboat-race/config"
	"github.com/automoto/dragonboat-race/gamemath"
	"github.com/automoto/dragonboat-race/systems"
	"github.com/automoto/dragonboat-race/systems/factory"
	"github.com/automoto/dragonboat-race/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RaceScene runs the race simulation. The presentation layer calls Update once
// per frame and reads lanes, boats and obstacles back for drawing.
type RaceScene struct {
	ecs  *ecs.ECS
	race *donburi.Entry
}

// NewRaceScene builds a race from rc. rng seeds every lane's spawn stream, so
// the same seed yields the same obstacles.
func NewRaceScene(rc cfg.RaceConfig, rng *rand.Rand) (*RaceScene, error) {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateCountdown)

	// Gameplay systems only run while racing
	e.AddSystem(systems.WithRaceChecks(systems.UpdateBots)) // Must run before UpdateBoats
	e.AddSystem(systems.WithRaceChecks(systems.UpdateBoats))
	e.AddSystem(systems.WithRaceChecks(systems.UpdateLanes))
	e.AddSystem(systems.WithRaceChecks(systems.UpdateRace))

	race, err := factory.CreateRace(e, rc, rng)
	if err != nil {
		return nil, err
	}

	return &RaceScene{ecs: e, race: race}, nil
}

// Update advances the simulation by dt seconds. Non-positive deltas and
// terminal races are no-ops.
func (rs *RaceScene) Update(dt float64) {
	if dt <= 0 || systems.IsRaceOver(rs.ecs) {
		return
	}
	components.Clock.Get(rs.race).Delta = dt
	rs.ecs.Update()
}

// ECS exposes the underlying world for renderers.
func (rs *RaceScene) ECS() *ecs.ECS {
	return rs.ecs
}

// ID returns the race's unique identifier.
func (rs *RaceScene) ID() string {
	return components.Race.Get(rs.race).ID
}

// State returns the race state.
func (rs *RaceScene) State() cfg.RaceStateID {
	return components.Race.Get(rs.race).State
}

// CountdownValue returns the countdown number to display, 0 once racing.
func (rs *RaceScene) CountdownValue() int {
	return components.Race.Get(rs.race).CountdownValue
}

// Elapsed returns the seconds raced so far.
func (rs *RaceScene) Elapsed() float64 {
	return components.Race.Get(rs.race).Elapsed
}

// FinishDistance returns the distance a boat must travel to win.
func (rs *RaceScene) FinishDistance() float64 {
	return components.Race.Get(rs.race).FinishDistance
}

// CheckWinner returns the winning boat once a boat has finished.
func (rs *RaceScene) CheckWinner() (BoatView, bool) {
	winner, ok := systems.CheckWinner(rs.ecs)
	if !ok {
		return BoatView{}, false
	}
	return BoatView{entry: winner}, true
}

// Results summarises every lane.
func (rs *RaceScene) Results() []components.BoatResult {
	return systems.Results(rs.ecs)
}

// Record captures the race for the results store.
func (rs *RaceScene) Record() systems.RaceRecord {
	return systems.NewRaceRecord(rs.ecs)
}

// Lanes returns a view of every lane in lane order.
func (rs *RaceScene) Lanes() []LaneView {
	lanes := components.Race.Get(rs.race).Lanes
	views := make([]LaneView, len(lanes))
	for i, l := range lanes {
		views[i] = LaneView{entry: l}
	}
	return views
}

// Lane returns the i-th lane.
func (rs *RaceScene) Lane(i int) LaneView {
	return LaneView{entry: components.Race.Get(rs.race).Lanes[i]}
}

// PlayerBoat returns the player-controlled boat, if the race has one.
func (rs *RaceScene) PlayerBoat() (BoatView, bool) {
	entry, ok := tags.Player.First(rs.ecs.World)
	if !ok {
		return BoatView{}, false
	}
	return BoatView{entry: entry}, true
}

// SetPlayerInput sets the player boat's steering and throttle for the next
// Update. Values are clamped to [-1, 1].
func (rs *RaceScene) SetPlayerInput(steer, throttle float64) {
	boat, ok := rs.PlayerBoat()
	if !ok {
		return
	}
	input := components.BoatInput.Get(boat.entry)
	input.Steer = gamemath.Clamp(steer, -1, 1)
	input.Throttle = gamemath.Clamp(throttle, -1, 1)
}

// LaneView is a read-only handle on a lane.
type LaneView struct {
	entry *donburi.Entry
}

// Index returns the lane's position in the race.
func (lv LaneView) Index() int {
	return components.Lane.Get(lv.entry).Index
}

// Bounds returns the lane's left edge and width.
func (lv LaneView) Bounds() (left, width float64) {
	l := components.Lane.Get(lv.entry)
	return l.LeftX, l.Width
}

// Boat returns the lane's boat.
func (lv LaneView) Boat() BoatView {
	return BoatView{entry: components.Lane.Get(lv.entry).Boat}
}

// Spawned returns how many obstacles the lane has produced so far.
func (lv LaneView) Spawned() int {
	return components.Lane.Get(lv.entry).Spawned
}

// Obstacles returns the live obstacles in spawn order.
func (lv LaneView) Obstacles() []ObstacleView {
	obstacles := components.Lane.Get(lv.entry).Obstacles
	views := make([]ObstacleView, len(obstacles))
	for i, o := range obstacles {
		views[i] = ObstacleView{entry: o}
	}
	return views
}

// BoatView is a read-only handle on a boat.
type BoatView struct {
	entry *donburi.Entry
}

// Entry exposes the underlying entity.
func (bv BoatView) Entry() *donburi.Entry {
	return bv.entry
}

func (bv BoatView) Health() float64 {
	return components.Health.Get(bv.entry).Current
}

func (bv BoatView) MaxHealth() float64 {
	return components.Health.Get(bv.entry).Max
}

func (bv BoatView) Position() gamemath.Vector {
	return components.Transform.Get(bv.entry).Position
}

func (bv BoatView) Velocity() gamemath.Vector {
	return components.Transform.Get(bv.entry).Velocity
}

// Speed returns the magnitude of the boat's velocity.
func (bv BoatView) Speed() float64 {
	return components.Transform.Get(bv.entry).Velocity.Len()
}

func (bv BoatView) Hitbox() gamemath.Hitbox {
	return components.Object.Get(bv.entry).Hitbox()
}

func (bv BoatView) Texture() string {
	return components.Sprite.Get(bv.entry).Texture
}

func (bv BoatView) Distance() float64 {
	return components.Boat.Get(bv.entry).Distance
}

func (bv BoatView) Type() cfg.BoatTypeID {
	return components.Boat.Get(bv.entry).Type
}

func (bv BoatView) Eliminated() bool {
	return components.Boat.Get(bv.entry).Eliminated
}

func (bv BoatView) Finished() bool {
	return components.Boat.Get(bv.entry).Finished
}

// Effects returns the remaining seconds of every active timed effect.
func (bv BoatView) Effects() map[cfg.EffectKind]float64 {
	active := components.ActiveEffects.Get(bv.entry)
	out := make(map[cfg.EffectKind]float64, len(active.Timed))
	for kind, te := range active.Timed {
		out[kind] = te.Remaining
	}
	return out
}

// ObstacleView is a read-only handle on an obstacle.
type ObstacleView struct {
	entry *donburi.Entry
}

func (ov ObstacleView) Type() cfg.ObstacleTypeID {
	return components.Obstacle.Get(ov.entry).Type
}

func (ov ObstacleView) IsPowerup() bool {
	return components.Obstacle.Get(ov.entry).IsPowerup()
}

func (ov ObstacleView) Position() gamemath.Vector {
	return components.Transform.Get(ov.entry).Position
}

func (ov ObstacleView) Hitbox() gamemath.Hitbox {
	return components.Object.Get(ov.entry).Hitbox()
}

func (ov ObstacleView) Texture() string {
	return components.Sprite.Get(ov.entry).Texture
}
