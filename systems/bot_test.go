package systems

import (
	"testing"

	"github.com/automoto/dragonboat-race/components"
	cfg "github.com/automoto/dragonboat-race/config"
	"github.com/automoto/dragonboat-race/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

func botRace(t *testing.T, difficulty cfg.BotDifficulty) *ecs.ECS {
	t.Helper()
	rc := quietRace(1)
	rc.Lanes[0].Player = false
	rc.Lanes[0].Bot = difficulty
	return newTestRace(t, rc)
}

func TestBotDodgesRockAhead(t *testing.T) {
	e := botRace(t, cfg.BotDifficultyHard)
	lane := laneEntry(e, 0)
	boat := boatEntry(e, 0)
	boatBox := components.Object.Get(boat).Hitbox()

	rock := factory.CreateObstacle(e, lane, cfg.ObstacleRock)
	placeAt(rock, boatBox.X, boatBox.Top()+96)

	step(e, 0.05)
	bot := components.Bot.Get(boat)
	clearance := cfg.Bot.Difficulties[cfg.BotDifficultyHard].DodgeClearance
	if !bot.HasTarget || bot.TargetX != boatBox.X-clearance-boatBox.W {
		t.Fatalf("target = %v (has %v), want left of the rock", bot.TargetX, bot.HasTarget)
	}
	if components.BoatInput.Get(boat).Steer >= 0 {
		t.Fatal("bot should steer left")
	}

	for i := 0; i < 40; i++ {
		step(e, 0.05)
	}
	if hits := components.Boat.Get(boat).Hits; hits != 0 {
		t.Fatalf("bot hit %d obstacles", hits)
	}
}

func TestBotSeeksPowerups(t *testing.T) {
	tests := []struct {
		difficulty cfg.BotDifficulty
		wantTarget bool
	}{
		{cfg.BotDifficultyEasy, false},
		{cfg.BotDifficultyNormal, true},
	}
	for _, tt := range tests {
		e := botRace(t, tt.difficulty)
		boat := boatEntry(e, 0)
		boatBox := components.Object.Get(boat).Hitbox()

		heal := factory.CreateObstacle(e, laneEntry(e, 0), cfg.ObstacleHeal)
		placeAt(heal, 250, boatBox.Top()+100)

		step(e, 0.05)
		bot := components.Bot.Get(boat)
		if bot.HasTarget != tt.wantTarget {
			t.Fatalf("difficulty %d: has target %v, want %v", tt.difficulty, bot.HasTarget, tt.wantTarget)
		}
		if tt.wantTarget && bot.TargetX != 250+16-boatBox.W/2 {
			t.Fatalf("target = %v, want power-up center", bot.TargetX)
		}
	}
}

func TestBotHoldsThrottle(t *testing.T) {
	e := botRace(t, cfg.BotDifficultyEasy)
	step(e, 0.1)

	want := cfg.Bot.Difficulties[cfg.BotDifficultyEasy].Throttle
	if got := components.BoatInput.Get(boatEntry(e, 0)).Throttle; got != want {
		t.Fatalf("throttle = %v, want %v", got, want)
	}
	if components.Boat.Get(boatEntry(e, 0)).Distance <= 0 {
		t.Fatal("bot boat did not move")
	}
}
