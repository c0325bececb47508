package systems

import (
	"math"

	"github.com/automoto/dragonboat-race/components"
	cfg "github.com/automoto/dragonboat-race/config"
	"github.com/automoto/dragonboat-race/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBots writes steering and throttle for CPU-controlled boats.
// Must run BEFORE UpdateBoats so the input applies on the same frame.
func UpdateBots(e *ecs.ECS) {
	dt := Delta(e)
	components.Bot.Each(e.World, func(entry *donburi.Entry) {
		boat := components.Boat.Get(entry)
		if !boat.Active() {
			return
		}
		updateBotAI(entry, dt)
	})
}

// obstacleInfo is the bot's view of an obstacle ahead of it.
type obstacleInfo struct {
	box     gamemath.Hitbox
	powerup bool
	gap     float64 // vertical distance from the boat's bow
}

func updateBotAI(entry *donburi.Entry, dt float64) {
	bot := components.Bot.Get(entry)
	boat := components.Boat.Get(entry)
	input := components.BoatInput.Get(entry)
	tr := components.Transform.Get(entry)
	lane := components.Lane.Get(boat.Lane)
	tuning := cfg.Bot.Difficulties[bot.Difficulty]

	input.Throttle = tuning.Throttle

	if bot.DecisionTimer > 0 {
		bot.DecisionTimer--
	} else {
		bot.DecisionTimer = tuning.ReactionDelay
		boatBox := components.Object.Get(entry).Hitbox()
		ahead := scanAhead(lane, boatBox, tuning.LookAhead)
		bot.TargetX, bot.HasTarget = chooseTarget(lane, boatBox, ahead, tuning)
	}

	input.Steer = steerToward(bot, tr.Position.X, boat.Stats.Maneuverability, dt)
}

// scanAhead lists the lane's obstacles above the boat within lookAhead pixels,
// nearest first.
func scanAhead(lane *components.LaneData, boatBox gamemath.Hitbox, lookAhead float64) []obstacleInfo {
	var ahead []obstacleInfo
	for _, obstacle := range lane.Obstacles {
		od := components.Obstacle.Get(obstacle)
		if od.Hit {
			continue
		}
		box := components.Object.Get(obstacle).Hitbox()
		gap := box.Y - boatBox.Top()
		if box.Top() <= boatBox.Y || gap > lookAhead {
			continue
		}
		info := obstacleInfo{box: box, powerup: od.IsPowerup(), gap: math.Max(0, gap)}

		// Insertion keeps the slice ordered by gap.
		i := len(ahead)
		ahead = append(ahead, info)
		for i > 0 && ahead[i-1].gap > info.gap {
			ahead[i] = ahead[i-1]
			i--
		}
		ahead[i] = info
	}
	return ahead
}

// chooseTarget picks where the boat's left edge should go. Dodging the nearest
// hazard in the boat's path wins over collecting power-ups.
func chooseTarget(lane *components.LaneData, boatBox gamemath.Hitbox, ahead []obstacleInfo, tuning cfg.BotDifficultyConfig) (float64, bool) {
	minX := lane.LeftX
	maxX := lane.RightX() - boatBox.W

	for _, o := range ahead {
		if o.powerup {
			continue
		}
		if o.box.Right()+tuning.DodgeClearance <= boatBox.X || boatBox.Right()+tuning.DodgeClearance <= o.box.X {
			continue // not in our path
		}

		left := o.box.X - tuning.DodgeClearance - boatBox.W
		right := o.box.Right() + tuning.DodgeClearance
		leftOK := left >= minX
		rightOK := right <= maxX

		switch {
		case leftOK && rightOK:
			if math.Abs(left-boatBox.X) <= math.Abs(right-boatBox.X) {
				return left, true
			}
			return right, true
		case leftOK:
			return left, true
		case rightOK:
			return right, true
		}
		// Nowhere to go around this one; take the wider side.
		if o.box.X-minX > maxX-o.box.Right() {
			return minX, true
		}
		return maxX, true
	}

	if !tuning.SeekPowerups {
		return 0, false
	}
	for _, o := range ahead {
		if !o.powerup {
			continue
		}
		x := o.box.X + o.box.W/2 - boatBox.W/2
		return gamemath.Clamp(x, minX, maxX), true
	}
	return 0, false
}

// steerToward returns a steer value that reaches the target without
// overshooting within one frame.
func steerToward(bot *components.BotData, x, maneuverability, dt float64) float64 {
	if !bot.HasTarget {
		return 0
	}
	diff := bot.TargetX - x
	if math.Abs(diff) < cfg.Bot.SteerDeadzone {
		return 0
	}
	step := maneuverability * dt
	if step <= 0 {
		return 0
	}
	return gamemath.Clamp(diff/step, -1, 1)
}
