package components

import (
	"math/rand"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// LaneData owns one boat and the obstacles spawned for it.
type LaneData struct {
	Index  int
	LeftX  float64
	Width  float64
	Player bool

	Boat      *donburi.Entry
	Obstacles []*donburi.Entry // spawn order

	SpawnTimer    float64 // seconds since last spawn
	NextSpawn     float64 // seconds at which the next spawn happens
	SpawnInterval float64
	SpawnJitter   float64
	MaxObstacles  int
	Spawned       int // obstacles spawned over the race

	Rng   *rand.Rand
	Space *resolv.Space
}

// RightX returns the right edge of the lane.
func (l *LaneData) RightX() float64 {
	return l.LeftX + l.Width
}

var Lane = donburi.NewComponentType[LaneData]()
