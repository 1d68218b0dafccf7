package components

import "github.com/yohamta/donburi"

// ClockData is the frame clock singleton.
type ClockData struct {
	Delta   float64 // seconds since the previous tick
	Elapsed float64
	Ticks   int
}

var Clock = donburi.NewComponentType[ClockData]()
