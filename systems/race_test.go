package systems

import (
	"testing"

	"github.com/automoto/dragonboat-race/components"
	cfg "github.com/automoto/dragonboat-race/config"
)

func TestWinnerIsFirstToFinish(t *testing.T) {
	e := newTestRace(t, quietRace(2))
	a, b := boatEntry(e, 0), boatEntry(e, 1)
	driveManually(b)
	components.Transform.Get(a).Velocity.Y = 20
	components.Transform.Get(b).Velocity.Y = 16.8

	for i := 0; i < 49; i++ {
		step(e, 1)
	}
	if _, ok := CheckWinner(e); ok {
		t.Fatal("winner declared before anyone finished")
	}

	step(e, 1)
	winner, ok := CheckWinner(e)
	if !ok || winner != a {
		t.Fatalf("winner = %v, want lane 0", winner)
	}
	race := GetRace(e)
	if race.WinnerFrame != 50 {
		t.Fatalf("winner frame = %d, want 50", race.WinnerFrame)
	}
	if race.State != cfg.RaceStateWinnerDeclared {
		t.Fatalf("state = %v", race.State)
	}

	for i := 0; i < 20; i++ {
		step(e, 1)
	}
	if winner, _ := CheckWinner(e); winner != a {
		t.Fatal("winner changed")
	}
	if d := components.Boat.Get(b).Distance; d >= race.FinishDistance {
		t.Fatalf("race kept running after it ended, lane 1 at %v", d)
	}
}

func TestSameFrameFinishGoesToLowerLane(t *testing.T) {
	e := newTestRace(t, quietRace(3))
	for i := 0; i < 3; i++ {
		driveManually(boatEntry(e, i))
	}
	components.Transform.Get(boatEntry(e, 0)).Velocity.Y = 10
	components.Transform.Get(boatEntry(e, 1)).Velocity.Y = 100
	components.Transform.Get(boatEntry(e, 2)).Velocity.Y = 100

	for i := 0; i < 10; i++ {
		step(e, 1)
	}
	winner, ok := CheckWinner(e)
	if !ok || winner != boatEntry(e, 1) {
		t.Fatal("lane 1 should win the tie")
	}

	results := Results(e)
	if !results[1].Winner || results[2].Winner || !results[2].Finished {
		t.Fatalf("results = %+v", results)
	}
}

func TestAllEliminatedEndsRace(t *testing.T) {
	e := newTestRace(t, quietRace(2))
	for i := 0; i < 2; i++ {
		InvokeEffect(boatEntry(e, i), components.Effect{Kind: cfg.EffectDamage, Amount: 1000})
	}

	step(e, 0.1)

	if state := GetRace(e).State; state != cfg.RaceStateAllEliminated {
		t.Fatalf("state = %v, want AllEliminated", state)
	}
	if _, ok := CheckWinner(e); ok {
		t.Fatal("no winner expected")
	}
	if !IsRaceOver(e) {
		t.Fatal("race should be over")
	}
}

func TestEliminatedLaneFreezes(t *testing.T) {
	rc := quietRace(2)
	rc.SpawnInterval = 0.1
	e := newTestRace(t, rc)
	InvokeEffect(boatEntry(e, 1), components.Effect{Kind: cfg.EffectDamage, Amount: 1000})

	lane := components.Lane.Get(laneEntry(e, 1))
	for i := 0; i < 20; i++ {
		step(e, 0.1)
	}
	if lane.Spawned != 0 || components.Boat.Get(boatEntry(e, 1)).Distance != 0 {
		t.Fatalf("eliminated lane kept simulating: spawned %d", lane.Spawned)
	}
	if components.Lane.Get(laneEntry(e, 0)).Spawned == 0 {
		t.Fatal("live lane stopped spawning")
	}
}

func TestCountdownGatesRace(t *testing.T) {
	rc := quietRace(1)
	rc.CountdownSeconds = 3
	e := newTestRace(t, rc)
	boat := boatEntry(e, 0)
	components.BoatInput.Get(boat).Throttle = 1

	race := GetRace(e)
	if race.State != cfg.RaceStateCountdown || race.CountdownValue != 3 {
		t.Fatalf("state %v countdown %d", race.State, race.CountdownValue)
	}

	step(e, 1)
	if race.CountdownValue != 2 {
		t.Fatalf("countdown = %d, want 2", race.CountdownValue)
	}
	step(e, 1.5)
	if race.State != cfg.RaceStateCountdown {
		t.Fatal("race started early")
	}
	if components.Boat.Get(boat).Distance != 0 || race.Elapsed != 0 {
		t.Fatal("boat moved during countdown")
	}

	step(e, 1)
	if race.State != cfg.RaceStateRacing {
		t.Fatalf("state = %v, want Racing", race.State)
	}
	if race.CountdownValue != 0 {
		t.Fatalf("countdown = %d after start", race.CountdownValue)
	}
}

func TestBoatStaysInLane(t *testing.T) {
	e := newTestRace(t, quietRace(2))
	boat := boatEntry(e, 1)
	driveManually(boat)
	components.BoatInput.Get(boat).Steer = -1

	for i := 0; i < 60; i++ {
		step(e, 0.1)
	}
	lane := components.Lane.Get(laneEntry(e, 1))
	if x := components.Transform.Get(boat).Position.X; x != lane.LeftX {
		t.Fatalf("x = %v, want lane edge %v", x, lane.LeftX)
	}

	components.BoatInput.Get(boat).Steer = 1
	for i := 0; i < 60; i++ {
		step(e, 0.1)
	}
	box := components.Object.Get(boat).Hitbox()
	if box.Right() != lane.RightX() {
		t.Fatalf("right edge = %v, want %v", box.Right(), lane.RightX())
	}
}

func TestThrottleRespectsMaxSpeed(t *testing.T) {
	e := newTestRace(t, quietRace(1))
	boat := boatEntry(e, 0)
	components.BoatInput.Get(boat).Throttle = 1

	for i := 0; i < 100; i++ {
		step(e, 0.1)
	}
	stats := components.Boat.Get(boat).Stats
	if v := components.Transform.Get(boat).Velocity.Y; v != stats.MaxSpeed {
		t.Fatalf("velocity = %v, want max %v", v, stats.MaxSpeed)
	}
}
