package config

// RaceStateID represents the current state of a race.
type RaceStateID int

const (
	RaceStateCountdown     RaceStateID = iota // Pre-race countdown (3, 2, 1)
	RaceStateRacing                           // Active simulation
	RaceStateWinnerDeclared                   // A boat reached the finish line
	RaceStateAllEliminated                    // Every boat was destroyed
)

// Terminal reports whether no further simulation happens in this state.
func (s RaceStateID) Terminal() bool {
	return s == RaceStateWinnerDeclared || s == RaceStateAllEliminated
}

func (s RaceStateID) String() string {
	switch s {
	case RaceStateCountdown:
		return "countdown"
	case RaceStateRacing:
		return "racing"
	case RaceStateWinnerDeclared:
		return "winner"
	case RaceStateAllEliminated:
		return "all-eliminated"
	}
	return "unknown"
}

// BoatTypeID identifies a boat class.
type BoatTypeID int

const (
	BoatFast BoatTypeID = iota
	BoatNormal
	BoatHeavy
)

func (b BoatTypeID) String() string {
	switch b {
	case BoatFast:
		return "fast"
	case BoatNormal:
		return "normal"
	case BoatHeavy:
		return "heavy"
	}
	return "unknown"
}

// ParseBoatType maps a boat class name back to its ID.
func ParseBoatType(name string) (BoatTypeID, bool) {
	switch name {
	case "fast", "FAST":
		return BoatFast, true
	case "normal", "NORMAL", "":
		return BoatNormal, true
	case "heavy", "HEAVY":
		return BoatHeavy, true
	}
	return 0, false
}

// ObstacleTypeID identifies an obstacle or power-up variant.
type ObstacleTypeID int

const (
	ObstacleRock ObstacleTypeID = iota
	ObstacleLog
	ObstacleHeal
	ObstacleSpeedUp
	ObstacleInvuln
	ObstacleLessDamage
	ObstacleLessTime

	ObstacleTypeCount // must stay last
)

func (o ObstacleTypeID) String() string {
	switch o {
	case ObstacleRock:
		return "rock"
	case ObstacleLog:
		return "log"
	case ObstacleHeal:
		return "heal"
	case ObstacleSpeedUp:
		return "speedup"
	case ObstacleInvuln:
		return "invuln"
	case ObstacleLessDamage:
		return "lessdamage"
	case ObstacleLessTime:
		return "lesstime"
	}
	return "unknown"
}

// EffectKind identifies what an effect does to a boat.
type EffectKind int

const (
	EffectHeal EffectKind = iota
	EffectDamage
	EffectInvulnerable
	EffectSpeedUp
	EffectLessDamage
	EffectLessTime
)

// Timed reports whether effects of this kind stay active for a duration.
func (k EffectKind) Timed() bool {
	switch k {
	case EffectInvulnerable, EffectSpeedUp, EffectLessDamage:
		return true
	}
	return false
}

func (k EffectKind) String() string {
	switch k {
	case EffectHeal:
		return "heal"
	case EffectDamage:
		return "damage"
	case EffectInvulnerable:
		return "invulnerable"
	case EffectSpeedUp:
		return "speedup"
	case EffectLessDamage:
		return "lessdamage"
	case EffectLessTime:
		return "lesstime"
	}
	return "unknown"
}
