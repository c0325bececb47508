package components

import (
	"github.com/automoto/dragonboat-race/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData is the position/velocity state shared by boats and obstacles.
// Obstacles keep a zero velocity; they move relative to their lane's boat.
type TransformData struct {
	Position gamemath.Vector
	Velocity gamemath.Vector
}

var Transform = donburi.NewComponentType[TransformData]()
