package config

// BotDifficulty affects reaction time and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// ParseBotDifficulty maps a difficulty name to its ID.
func ParseBotDifficulty(name string) (BotDifficulty, bool) {
	switch name {
	case "easy":
		return BotDifficultyEasy, true
	case "normal", "":
		return BotDifficultyNormal, true
	case "hard":
		return BotDifficultyHard, true
	}
	return 0, false
}

// BotDifficultyConfig holds tuning values for bot steering at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay  int     // Frames between steering decisions
	LookAhead      float64 // Pixels above the boat that are scanned for obstacles
	Throttle       float64 // Throttle held while racing (0..1)
	SeekPowerups   bool    // Steer toward beneficial pickups
	DodgeClearance float64 // Extra horizontal margin kept around hazards
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
	// Horizontal distance under which the bot stops steering toward a target.
	SteerDeadzone float64
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay:  30, // 0.5 second reaction time
				LookAhead:      180,
				Throttle:       0.8,
				SeekPowerups:   false,
				DodgeClearance: 4,
			},
			BotDifficultyNormal: {
				ReactionDelay:  15, // 0.25 second reaction time
				LookAhead:      260,
				Throttle:       0.9,
				SeekPowerups:   true,
				DodgeClearance: 8,
			},
			BotDifficultyHard: {
				ReactionDelay:  5, // Near-instant reaction
				LookAhead:      360,
				Throttle:       1.0,
				SeekPowerups:   true,
				DodgeClearance: 12,
			},
		},
		SteerDeadzone: 4,
	}
}
