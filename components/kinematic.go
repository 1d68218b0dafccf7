package components

import (
	"github.com/automoto/kinewalk/kinematic"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// KinematicData links an entity to its actor in the physics world. DesiredVelocity is
// handed to the actor once per tick and Output holds what the move achieved.
type KinematicData struct {
	Actor           *kinematic.Actor
	DesiredVelocity mgl64.Vec3
	Output          kinematic.MovementOutput
}

var Kinematic = donburi.NewComponentType[KinematicData]()
