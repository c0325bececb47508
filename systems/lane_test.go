package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/dragonboat-race/components"
	cfg "github.com/automoto/dragonboat-race/config"
	"github.com/automoto/dragonboat-race/systems/factory"
)

func TestCollisionAppliesOncePerObstacle(t *testing.T) {
	e := newTestRace(t, quietRace(1))
	lane := laneEntry(e, 0)
	laneData := components.Lane.Get(lane)
	boat := laneData.Boat

	rock := factory.CreateObstacle(e, lane, cfg.ObstacleRock)
	pos := components.Transform.Get(boat).Position
	placeAt(rock, pos.X, pos.Y+10)

	collideLane(laneData)
	collideLane(laneData)

	health := components.Health.Get(boat)
	if want := health.Max - cfg.Obstacles.Types[cfg.ObstacleRock].Effect.Amount; health.Current != want {
		t.Fatalf("health = %v, want %v", health.Current, want)
	}
	if hits := components.Boat.Get(boat).Hits; hits != 1 {
		t.Fatalf("hits = %d, want 1", hits)
	}

	cullObstacles(e, laneData)
	if len(laneData.Obstacles) != 0 {
		t.Fatalf("%d obstacles left after cull", len(laneData.Obstacles))
	}
	if e.World.Valid(rock.Entity()) {
		t.Fatal("hit obstacle still in world")
	}
}

func TestTouchingEdgesDoNotCollide(t *testing.T) {
	e := newTestRace(t, quietRace(1))
	lane := laneEntry(e, 0)
	laneData := components.Lane.Get(lane)
	boatBox := components.Object.Get(laneData.Boat).Hitbox()

	rock := factory.CreateObstacle(e, lane, cfg.ObstacleRock)
	placeAt(rock, boatBox.X, boatBox.Top())

	collideLane(laneData)
	if components.Obstacle.Get(rock).Hit {
		t.Fatal("obstacle resting on the bow counted as a hit")
	}
}

func TestCollisionBeatsOffScreenCull(t *testing.T) {
	e := newTestRace(t, quietRace(1))
	lane := laneEntry(e, 0)
	laneData := components.Lane.Get(lane)
	boat := laneData.Boat
	boatPos := components.Transform.Get(boat).Position
	placeAt(boat, boatPos.X, -50)

	log := factory.CreateObstacle(e, lane, cfg.ObstacleLog)
	placeAt(log, boatPos.X, -40)
	if !OffScreen(log) {
		t.Fatal("log should be off-screen")
	}

	updateLane(e, lane, laneData, 0.01)

	health := components.Health.Get(boat)
	if want := health.Max - cfg.Obstacles.Types[cfg.ObstacleLog].Effect.Amount; health.Current != want {
		t.Fatalf("health = %v, want %v", health.Current, want)
	}
	if len(laneData.Obstacles) != 0 {
		t.Fatal("off-screen obstacle not removed")
	}
}

func TestOffScreenObstaclesAreCulled(t *testing.T) {
	e := newTestRace(t, quietRace(1))
	lane := laneEntry(e, 0)
	laneData := components.Lane.Get(lane)
	boatBox := components.Object.Get(laneData.Boat).Hitbox()

	gone := factory.CreateObstacle(e, lane, cfg.ObstacleHeal)
	placeAt(gone, boatBox.Right()+50, -33)
	kept := factory.CreateObstacle(e, lane, cfg.ObstacleHeal)
	placeAt(kept, boatBox.Right()+50, 400)

	cullObstacles(e, laneData)
	if len(laneData.Obstacles) != 1 || laneData.Obstacles[0] != kept {
		t.Fatalf("obstacles after cull = %v", laneData.Obstacles)
	}
}

func TestObstaclesMoveWithBoatSpeed(t *testing.T) {
	e := newTestRace(t, quietRace(1))
	lane := laneEntry(e, 0)
	rock := factory.CreateObstacle(e, lane, cfg.ObstacleRock)
	placeAt(rock, 10, 500)

	MoveObstacle(rock, 0.5, 100)

	speed := cfg.Obstacles.Types[cfg.ObstacleRock].Speed
	want := 500 - (100+speed)*0.5
	if got := components.Transform.Get(rock).Position.Y; got != want {
		t.Fatalf("y = %v, want %v", got, want)
	}
	if got := components.Object.Get(rock).Y; got != want {
		t.Fatalf("hitbox y = %v, want %v", got, want)
	}
}

func TestSpawnPositionStaysInLane(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	typ := cfg.ObstacleTypeConfig{Width: 20, Height: 20}

	for i := 0; i < 1000; i++ {
		pos := factory.SpawnPosition(rng, typ, 0, 100)
		if pos.X < 0 || pos.X > 80 {
			t.Fatalf("spawn %d at x=%v, outside [0, 80]", i, pos.X)
		}
		if pos.Y != float64(cfg.C.Height) {
			t.Fatalf("spawn %d at y=%v, want %d", i, pos.Y, cfg.C.Height)
		}
	}
}

func TestSpawnTimerRespectsCap(t *testing.T) {
	rc := quietRace(1)
	rc.SpawnInterval = 0.5
	rc.MaxObstacles = 3
	e := newTestRace(t, rc)
	laneData := components.Lane.Get(laneEntry(e, 0))

	// The boat stays still so nothing scrolls off screen.
	for i := 0; i < 20; i++ {
		step(e, 0.25)
	}
	if len(laneData.Obstacles) > 3 {
		t.Fatalf("%d obstacles, cap is 3", len(laneData.Obstacles))
	}
	if laneData.Spawned == 0 {
		t.Fatal("nothing spawned")
	}
}

func TestSameSeedSameObstacles(t *testing.T) {
	rc := quietRace(2)
	rc.SpawnInterval = 0.3

	run := func() []cfg.ObstacleTypeID {
		e := newTestRace(t, rc)
		for i := 0; i < 30; i++ {
			step(e, 0.1)
		}
		var types []cfg.ObstacleTypeID
		for _, o := range components.Lane.Get(laneEntry(e, 1)).Obstacles {
			types = append(types, components.Obstacle.Get(o).Type)
		}
		return types
	}

	a, b := run(), run()
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("runs differ: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs diverge at %d: %v vs %v", i, a, b)
		}
	}
}

func TestCollisionInLaneLeftOfOrigin(t *testing.T) {
	rc := quietRace(1)
	rc.Lanes[0].LeftX = -400
	e := newTestRace(t, rc)
	lane := laneEntry(e, 0)
	laneData := components.Lane.Get(lane)
	boat := laneData.Boat
	health := components.Health.Get(boat)
	bd := components.Boat.Get(boat)
	boatW := bd.Stats.Width

	rng := rand.New(rand.NewSource(5))
	overlaps := 0
	for i := 0; i < 2000; i++ {
		health.Current = health.Max
		bd.Eliminated = false

		bx := laneData.LeftX + rng.Float64()*(laneData.Width-boatW)
		by := rng.Float64()*300 - 100
		placeAt(boat, bx, by)

		rock := factory.CreateObstacle(e, lane, cfg.ObstacleRock)
		placeAt(rock, bx+rng.Float64()*160-80, by+rng.Float64()*200-100)

		want := components.Object.Get(boat).Hitbox().Intersects(components.Object.Get(rock).Hitbox())
		if want {
			overlaps++
		}
		collideLane(laneData)
		if got := components.Obstacle.Get(rock).Hit; got != want {
			t.Fatalf("trial %d: hit = %v, overlap = %v (boat at %v,%v)", i, got, want, bx, by)
		}

		components.Obstacle.Get(rock).Hit = true
		cullObstacles(e, laneData)
	}
	if overlaps == 0 {
		t.Fatal("no overlapping placements generated")
	}
}
