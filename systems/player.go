package systems

import (
	"github.com/automoto/kinewalk/components"
	cfg "github.com/automoto/kinewalk/config"
	"github.com/automoto/kinewalk/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement turns held movement keys into a camera-relative desired velocity for the
// physics step. The horizontal part comes from this tick's keys; the vertical part is the
// velocity stored on the previous tick, and holding jump overwrites that stored value.
// Must run after UpdateOrbitCamera and before UpdateKinematics.
func (r *PlayerRig) UpdateMovement(e *ecs.ECS) {
	if !valid(r.Player) || !valid(r.Camera) {
		return
	}
	input := getOrCreateInput(e)
	dt := clockDelta(e)

	physics := components.Physics.Get(r.Player)
	kinematic := components.Kinematic.Get(r.Player)
	rig := components.Transform.Get(r.Camera)

	direction := gamemath.WalkDirection(rig.Rotation,
		GetAction(input, cfg.ActionMoveForward).Pressed,
		GetAction(input, cfg.ActionMoveBack).Pressed,
		GetAction(input, cfg.ActionMoveLeft).Pressed,
		GetAction(input, cfg.ActionMoveRight).Pressed,
	)
	desired := direction.Mul(cfg.Player.Walk)

	if cfg.Player.ApplyGravity {
		if kinematic.Output.Grounded && physics.Velocity.Y() < 0 {
			physics.Velocity[1] = 0
		}
		physics.Velocity[1] = gamemath.ApplyGravity(physics.Velocity.Y(), cfg.Player.Gravity, dt)
	}
	desired[1] = physics.Velocity.Y()

	jump := GetAction(input, cfg.ActionJump)
	if jump.Pressed && (!cfg.Player.EdgeTriggeredJump || jump.JustPressed) {
		physics.Velocity[1] = cfg.Player.JumpForce
	}

	physics.Velocity[0] = desired.X()
	physics.Velocity[2] = desired.Z()
	if cfg.Player.ApplyFriction {
		physics.Velocity = gamemath.ApplyFriction(physics.Velocity, cfg.Player.Friction)
	}

	kinematic.DesiredVelocity = desired
}
