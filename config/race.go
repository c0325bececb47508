package config

import (
	"errors"
	"fmt"
)

var (
	ErrNoLanes               = errors.New("race has no lanes")
	ErrInvalidLaneWidth      = errors.New("lane width must be positive")
	ErrObstacleTooWide       = errors.New("obstacle wider than lane")
	ErrBoatTooWide           = errors.New("boat wider than lane")
	ErrInvalidFinishDistance = errors.New("finish distance must be positive")
	ErrUnknownBoatType       = errors.New("unknown boat type")
	ErrLanesOverlap          = errors.New("lanes overlap")
	ErrTooManyPlayers        = errors.New("more than one player-controlled lane")
	ErrInvalidSpawnInterval  = errors.New("spawn interval must be positive")
)

// LaneSetup describes one participant's lane.
type LaneSetup struct {
	LeftX    float64
	Width    float64
	BoatType BoatTypeID
	Player   bool // controlled by the presentation layer instead of a bot
	Bot      BotDifficulty
}

// RaceConfig is everything the core needs to build a race.
// A zero SpawnInterval or MaxObstacles and a negative SpawnJitter fall back to
// the package-level Lanes defaults; a zero SpawnJitter means no jitter.
type RaceConfig struct {
	Lanes            []LaneSetup
	FinishDistance   float64
	CountdownSeconds float64

	SpawnInterval float64
	SpawnJitter   float64
	MaxObstacles  int
}

// UniformLanes lays out count lanes of equal width side by side from x = 0.
// The first lane is player-controlled.
func UniformLanes(count int, width float64, boat BoatTypeID) []LaneSetup {
	if count <= 0 {
		return nil
	}
	lanes := make([]LaneSetup, count)
	for i := range lanes {
		lanes[i] = LaneSetup{
			LeftX:    float64(i) * width,
			Width:    width,
			BoatType: boat,
			Player:   i == 0,
			Bot:      BotDifficultyNormal,
		}
	}
	return lanes
}

// DefaultRace returns a four-lane race across the configured screen width.
func DefaultRace() RaceConfig {
	return RaceConfig{
		Lanes:            UniformLanes(4, float64(C.Width)/4, BoatNormal),
		FinishDistance:   20000,
		CountdownSeconds: 3,
		SpawnJitter:      Lanes.SpawnJitter,
	}
}

// WithDefaults fills unset spawn tuning from the package-level Lanes config.
func (rc RaceConfig) WithDefaults() RaceConfig {
	if rc.SpawnInterval == 0 {
		rc.SpawnInterval = Lanes.SpawnInterval
	}
	if rc.SpawnJitter < 0 {
		rc.SpawnJitter = Lanes.SpawnJitter
	}
	if rc.MaxObstacles == 0 {
		rc.MaxObstacles = Lanes.MaxObstacles
	}
	return rc
}

// Validate reports every configuration problem found. A race must not be
// built from a config that fails validation.
func (rc RaceConfig) Validate() error {
	var errs []error

	if len(rc.Lanes) == 0 {
		errs = append(errs, ErrNoLanes)
	}
	if rc.FinishDistance <= 0 {
		errs = append(errs, fmt.Errorf("finish distance %v: %w", rc.FinishDistance, ErrInvalidFinishDistance))
	}
	if rc.SpawnInterval < 0 || rc.SpawnJitter < 0 {
		errs = append(errs, fmt.Errorf("interval %v jitter %v: %w", rc.SpawnInterval, rc.SpawnJitter, ErrInvalidSpawnInterval))
	}

	obstacleW := MaxObstacleWidth()
	players := 0
	for i, lane := range rc.Lanes {
		if lane.Player {
			players++
		}
		if lane.Width <= 0 {
			errs = append(errs, fmt.Errorf("lane %d width %v: %w", i, lane.Width, ErrInvalidLaneWidth))
			continue
		}
		if obstacleW >= lane.Width {
			errs = append(errs, fmt.Errorf("lane %d width %v, obstacle width %v: %w", i, lane.Width, obstacleW, ErrObstacleTooWide))
		}
		boat, ok := Boats.Types[lane.BoatType]
		if !ok {
			errs = append(errs, fmt.Errorf("lane %d boat type %d: %w", i, lane.BoatType, ErrUnknownBoatType))
		} else if boat.Width > lane.Width {
			errs = append(errs, fmt.Errorf("lane %d width %v, boat width %v: %w", i, lane.Width, boat.Width, ErrBoatTooWide))
		}
		for j := 0; j < i; j++ {
			other := rc.Lanes[j]
			if lane.LeftX < other.LeftX+other.Width && other.LeftX < lane.LeftX+lane.Width {
				errs = append(errs, fmt.Errorf("lanes %d and %d: %w", j, i, ErrLanesOverlap))
			}
		}
	}
	if players > 1 {
		errs = append(errs, fmt.Errorf("%d player lanes: %w", players, ErrTooManyPlayers))
	}

	return errors.Join(errs...)
}
