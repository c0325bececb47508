package factory

import (
	"math"

	cfg "github.com/automoto/dragonboat-race/config"
	"github.com/solarlune/resolv"
)

// CreateLaneSpace builds the collision space for one lane. It covers the lane
// horizontally and the screen vertically plus the spawn band above it. The
// space starts at the origin; the parts of a lane left of x = 0 have no cells.
func CreateLaneSpace(lane cfg.LaneSetup) *resolv.Space {
	cell := cfg.Lanes.CellSize
	width := int(math.Ceil(math.Max(lane.LeftX+lane.Width, 0))) + cell
	height := cfg.C.Height + int(math.Ceil(cfg.MaxObstacleHeight())) + cell
	return resolv.NewSpace(width, height, cell, cell)
}
