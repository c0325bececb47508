package tags

import "github.com/yohamta/donburi"

var (
	Boat     = donburi.NewTag().SetName("Boat")
	Player   = donburi.NewTag().SetName("Player")
	Obstacle = donburi.NewTag().SetName("Obstacle")
	Lane     = donburi.NewTag().SetName("Lane")
)

// Resolv tags for lane collision spaces
const (
	ResolvBoat     = "boat"
	ResolvObstacle = "obstacle"
	ResolvPowerup  = "powerup"
)
