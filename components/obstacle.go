package components

import (
	cfg "github.com/automoto/dragonboat-race/config"
	"github.com/yohamta/donburi"
)

type ObstacleData struct {
	Type   cfg.ObstacleTypeID
	Speed  float64 // own drift toward the bottom of the screen, px/s
	Effect Effect
	Lane   *donburi.Entry
	Hit    bool // effect already invoked; pending removal
}

// IsPowerup reports whether colliding with the obstacle is beneficial.
func (o *ObstacleData) IsPowerup() bool {
	switch o.Type {
	case cfg.ObstacleRock, cfg.ObstacleLog:
		return false
	case cfg.ObstacleHeal, cfg.ObstacleSpeedUp, cfg.ObstacleInvuln,
		cfg.ObstacleLessDamage, cfg.ObstacleLessTime:
		return true
	}
	return false
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
