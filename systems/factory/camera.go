package factory

import (
	"github.com/automoto/kinewalk/archetypes"
	"github.com/automoto/kinewalk/components"
	cfg "github.com/automoto/kinewalk/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCameraRig spawns the orbit rig at translation with zero yaw and pitch. The eye
// sits at the configured offset from the rig.
func CreateCameraRig(ecs *ecs.ECS, translation mgl64.Vec3) *donburi.Entry {
	rig := archetypes.CameraRig.Spawn(ecs)
	components.Transform.SetValue(rig, components.NewTransform(translation))
	components.Orbit.SetValue(rig, components.OrbitData{})
	components.Camera.SetValue(rig, components.CameraData{
		Offset: mgl64.Vec3(cfg.Camera.Offset),
	})
	return rig
}
