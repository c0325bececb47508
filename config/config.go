package config

import "math/rand"

// BoatTypeConfig contains the fixed stats of a boat class
type BoatTypeConfig struct {
	Name string

	// Movement
	MaxSpeed        float64 // px/s forward
	Acceleration    float64 // px/s² while throttling
	Maneuverability float64 // px/s sideways at full steer

	// Combat
	MaxHealth float64

	// Dimensions
	Width  float64
	Height float64

	// Visual
	Texture string
}

// BoatConfig holds the boat class catalogue
type BoatConfig struct {
	Types map[BoatTypeID]BoatTypeConfig

	// Screen-space y of every boat's bottom edge.
	AnchorY float64
}

// EffectDef describes the effect an obstacle carries.
// Amount is the heal/damage amount, the speed multiplier, the damage scale or
// the time credit in seconds depending on Kind. Duration is only read for
// timed kinds.
type EffectDef struct {
	Kind     EffectKind
	Amount   float64
	Duration float64
}

// ObstacleTypeConfig contains configuration for one obstacle variant
type ObstacleTypeConfig struct {
	Speed       float64 // own downstream drift, px/s
	Width       float64
	Height      float64
	Texture     string
	Effect      EffectDef
	Powerup     bool // beneficial on collision
	SpawnWeight int  // relative spawn frequency
}

// ObstacleConfig holds the obstacle catalogue
type ObstacleConfig struct {
	Types map[ObstacleTypeID]ObstacleTypeConfig
}

// LaneConfig holds default lane tuning used when a RaceConfig leaves it unset
type LaneConfig struct {
	SpawnInterval float64 // seconds between spawns
	SpawnJitter   float64 // extra random seconds added per spawn
	MaxObstacles  int     // cap on live obstacles per lane
	CellSize      int     // resolv cell size for the lane's collision space
}

// Config holds general screen configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Boats BoatConfig
var Obstacles ObstacleConfig
var Lanes LaneConfig

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Boats = BoatConfig{
		Types: map[BoatTypeID]BoatTypeConfig{
			BoatFast: {
				Name:            "Fast",
				MaxSpeed:        420,
				Acceleration:    140,
				Maneuverability: 260,
				MaxHealth:       60,
				Width:           40,
				Height:          80,
				Texture:         "boat_fast.png",
			},
			BoatNormal: {
				Name:            "Normal",
				MaxSpeed:        340,
				Acceleration:    120,
				Maneuverability: 220,
				MaxHealth:       100,
				Width:           44,
				Height:          84,
				Texture:         "boat_normal.png",
			},
			BoatHeavy: {
				Name:            "Heavy",
				MaxSpeed:        280,
				Acceleration:    90,
				Maneuverability: 180,
				MaxHealth:       150,
				Width:           52,
				Height:          92,
				Texture:         "boat_heavy.png",
			},
		},
		AnchorY: 20,
	}

	Obstacles = ObstacleConfig{
		Types: map[ObstacleTypeID]ObstacleTypeConfig{
			ObstacleRock: {
				Speed:       60,
				Width:       48,
				Height:      48,
				Texture:     "rock.png",
				Effect:      EffectDef{Kind: EffectDamage, Amount: 25},
				SpawnWeight: 30,
			},
			ObstacleLog: {
				Speed:       90,
				Width:       80,
				Height:      24,
				Texture:     "log.png",
				Effect:      EffectDef{Kind: EffectDamage, Amount: 15},
				SpawnWeight: 30,
			},
			ObstacleHeal: {
				Speed:       40,
				Width:       32,
				Height:      32,
				Texture:     "heal.png",
				Effect:      EffectDef{Kind: EffectHeal, Amount: 30},
				Powerup:     true,
				SpawnWeight: 8,
			},
			ObstacleSpeedUp: {
				Speed:       40,
				Width:       32,
				Height:      32,
				Texture:     "speedup.png",
				Effect:      EffectDef{Kind: EffectSpeedUp, Amount: 1.5, Duration: 3},
				Powerup:     true,
				SpawnWeight: 8,
			},
			ObstacleInvuln: {
				Speed:       40,
				Width:       32,
				Height:      32,
				Texture:     "invuln.png",
				Effect:      EffectDef{Kind: EffectInvulnerable, Duration: 5},
				Powerup:     true,
				SpawnWeight: 6,
			},
			ObstacleLessDamage: {
				Speed:       40,
				Width:       32,
				Height:      32,
				Texture:     "lessdamage.png",
				Effect:      EffectDef{Kind: EffectLessDamage, Amount: 0.5, Duration: 6},
				Powerup:     true,
				SpawnWeight: 8,
			},
			ObstacleLessTime: {
				Speed:       40,
				Width:       32,
				Height:      32,
				Texture:     "lesstime.png",
				Effect:      EffectDef{Kind: EffectLessTime, Amount: 5},
				Powerup:     true,
				SpawnWeight: 6,
			},
		},
	}

	Lanes = LaneConfig{
		SpawnInterval: 1.2,
		SpawnJitter:   0.8,
		MaxObstacles:  12,
		CellSize:      32,
	}
}

// MaxObstacleWidth returns the widest obstacle in the catalogue.
func MaxObstacleWidth() float64 {
	w := 0.0
	for _, t := range Obstacles.Types {
		if t.Width > w {
			w = t.Width
		}
	}
	return w
}

// MaxObstacleHeight returns the tallest obstacle in the catalogue.
func MaxObstacleHeight() float64 {
	h := 0.0
	for _, t := range Obstacles.Types {
		if t.Height > h {
			h = t.Height
		}
	}
	return h
}

// PickObstacleType chooses an obstacle variant weighted by SpawnWeight.
// Iteration runs in ID order so a seeded rng always yields the same sequence.
func PickObstacleType(rng *rand.Rand) ObstacleTypeID {
	total := 0
	for id := ObstacleTypeID(0); id < ObstacleTypeCount; id++ {
		total += Obstacles.Types[id].SpawnWeight
	}
	if total <= 0 {
		return ObstacleRock
	}

	roll := rng.Intn(total)
	for id := ObstacleTypeID(0); id < ObstacleTypeCount; id++ {
		roll -= Obstacles.Types[id].SpawnWeight
		if roll < 0 {
			return id
		}
	}
	return ObstacleRock
}
