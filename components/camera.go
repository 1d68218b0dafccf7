package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// OrbitData is the accumulated mouse-look orientation of the camera rig, in radians.
type OrbitData struct {
	Yaw   float64
	Pitch float64
}

var Orbit = donburi.NewComponentType[OrbitData]()

// CameraData places the eye relative to the rig it is attached to.
type CameraData struct {
	Offset mgl64.Vec3
}

// Eye returns the world position of the camera for a rig transform.
func (c *CameraData) Eye(rig *TransformData) mgl64.Vec3 {
	return rig.Translation.Add(rig.Rotation.Rotate(c.Offset))
}

var Camera = donburi.NewComponentType[CameraData]()
