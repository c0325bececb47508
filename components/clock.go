package components

import "github.com/yohamta/donburi"

// ClockData carries the frame delta to systems. Singleton.
type ClockData struct {
	Delta float64 // seconds
}

var Clock = donburi.NewComponentType[ClockData]()
