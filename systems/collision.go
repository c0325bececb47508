package systems

import (
	"github.com/automoto/dragonboat-race/components"
	"github.com/automoto/dragonboat-race/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CollideBoat resolves a single boat/obstacle pair. If the hitboxes overlap
// and the obstacle has not been hit yet, its effect is invoked on the boat and
// the obstacle is flagged for removal. Returns true on a hit.
func CollideBoat(boat, obstacle *donburi.Entry) bool {
	od := components.Obstacle.Get(obstacle)
	if od.Hit {
		return false
	}

	boatBox := components.Object.Get(boat).Hitbox()
	obstacleBox := components.Object.Get(obstacle).Hitbox()
	if !boatBox.Intersects(obstacleBox) {
		return false
	}

	od.Hit = true
	InvokeEffect(boat, od.Effect)

	bd := components.Boat.Get(boat)
	if od.IsPowerup() {
		bd.Pickups++
	} else {
		bd.Hits++
	}
	return true
}

// broadPhaseProbes shift the cell query one pixel each way; resolv maps the
// far edge to cells at W-1, which alone can miss sub-pixel overlaps.
var broadPhaseProbes = [2][2]float64{{-1, -1}, {1, 1}}

// collideLane checks the lane's boat against its obstacles in spawn order.
// The lane's resolv space narrows the candidates to obstacles sharing a cell
// with the boat.
func collideLane(lane *components.LaneData) {
	boatObj := components.Object.Get(lane.Boat)

	candidates := make(map[*resolv.Object]bool)
	for _, probe := range broadPhaseProbes {
		check := boatObj.Check(probe[0], probe[1], tags.ResolvObstacle)
		if check == nil {
			continue
		}
		for _, obj := range check.ObjectsByTags(tags.ResolvObstacle) {
			candidates[obj] = true
		}
	}

	bd := components.Boat.Get(lane.Boat)
	for _, obstacle := range lane.Obstacles {
		if bd.Eliminated {
			return
		}
		obj := components.Object.Get(obstacle).Object
		// The space has no cells left of x = 0 or below y = 0, so those
		// obstacles are tested directly.
		if !candidates[obj] && obj.X >= 0 && obj.Y >= 0 {
			continue
		}
		CollideBoat(lane.Boat, obstacle)
	}
}
