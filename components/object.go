package components

import (
	"github.com/automoto/dragonboat-race/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Hitbox returns the collision rectangle of the object.
func (o ObjectData) Hitbox() gamemath.Hitbox {
	return gamemath.NewHitbox(o.X, o.Y, o.W, o.H)
}

var Object = donburi.NewComponentType[ObjectData]()
