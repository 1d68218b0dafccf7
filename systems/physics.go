package systems

import (
	"github.com/automoto/kinewalk/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateKinematics hands the desired velocity to the player's actor and copies the
// resolved position back onto the player transform.
func (r *PlayerRig) UpdateKinematics(e *ecs.ECS) {
	if !valid(r.Player) {
		return
	}
	kinematic := components.Kinematic.Get(r.Player)
	if kinematic.Actor == nil {
		return
	}

	kinematic.Output = kinematic.Actor.Move(kinematic.DesiredVelocity, clockDelta(e))

	transform := components.Transform.Get(r.Player)
	transform.Translation = kinematic.Actor.Position()

	updateMotionState(components.State.Get(r.Player), &kinematic.Output)
}
