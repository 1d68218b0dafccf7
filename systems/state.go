package systems

import (
	"github.com/automoto/kinewalk/components"
	"github.com/automoto/kinewalk/kinematic"
)

const walkingThreshold = 1e-4

func updateMotionState(state *components.StateData, out *kinematic.MovementOutput) {
	next := components.MotionIdle
	horizontal := out.EffectiveTranslation
	horizontal[1] = 0

	switch {
	case out.IsSlidingDownSlope:
		next = components.MotionSliding
	case !out.Grounded:
		next = components.MotionAirborne
	case horizontal.Len() > walkingThreshold:
		next = components.MotionWalking
	}

	if next != state.CurrentState {
		state.PreviousState = state.CurrentState
		state.CurrentState = next
		state.StateTimer = 0
		return
	}
	state.StateTimer++
}
