package components

import "github.com/yohamta/donburi"

// BoatInputData is the control state applied to a boat at the start of a frame.
// The presentation layer writes it for the player boat; bots write their own.
type BoatInputData struct {
	Steer    float64 // -1 (left) .. 1 (right)
	Throttle float64 // -1 (brake) .. 1 (full ahead)
}

var BoatInput = donburi.NewComponentType[BoatInputData]()
