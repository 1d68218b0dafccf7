package systems

import (
	"github.com/automoto/kinewalk/components"
	cfg "github.com/automoto/kinewalk/config"
	"github.com/automoto/kinewalk/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOrbitCamera drains the queued look deltas into the rig's yaw and pitch and
// rebuilds the rig rotation from them.
// The queue is drained every tick, even without a rig, so it never outlives a frame.
func (r *PlayerRig) UpdateOrbitCamera(e *ecs.ECS) {
	deltas := getOrCreateInput(e).DrainMouseDeltas()
	if !valid(r.Camera) {
		return
	}

	orbit := components.Orbit.Get(r.Camera)
	orbit.Yaw, orbit.Pitch = gamemath.ApplyMouseLook(
		orbit.Yaw, orbit.Pitch, deltas,
		cfg.Camera.RotationSpeed, clockDelta(e), cfg.Camera.MaxPitch,
	)

	transform := components.Transform.Get(r.Camera)
	transform.Rotation = gamemath.OrbitRotation(orbit.Yaw, orbit.Pitch)
}

// UpdateCameraFollow snaps the rig onto the player's resolved position. Rotation is left
// alone and there is no smoothing.
func (r *PlayerRig) UpdateCameraFollow(e *ecs.ECS) {
	if !valid(r.Player) || !valid(r.Camera) {
		return
	}
	player := components.Transform.Get(r.Player)
	rig := components.Transform.Get(r.Camera)
	rig.Translation = player.Translation
}
