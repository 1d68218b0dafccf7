package components

import "github.com/yohamta/donburi"

// MotionState summarises what the player's last move did.
type MotionState int

const (
	MotionIdle MotionState = iota
	MotionWalking
	MotionAirborne
	MotionSliding
)

func (s MotionState) String() string {
	switch s {
	case MotionWalking:
		return "walking"
	case MotionAirborne:
		return "airborne"
	case MotionSliding:
		return "sliding"
	}
	return "idle"
}

type StateData struct {
	CurrentState  MotionState
	PreviousState MotionState
	StateTimer    int // ticks spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()
