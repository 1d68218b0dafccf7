package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/kinewalk/archetypes"
	"github.com/automoto/kinewalk/components"
	"github.com/automoto/kinewalk/kinematic"
	"github.com/automoto/kinewalk/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrNoWorld = errors.New("physics world not created")

// CreateBox spawns a flat-topped obstacle and adds its body to the physics world.
func CreateBox(ecs *ecs.ECS, box leveldata.Box) (*donburi.Entry, error) {
	world := physicsWorld(ecs)
	if world == nil {
		return nil, ErrNoWorld
	}
	min, max := boxBounds(box)

	entry := archetypes.Obstacle.Spawn(ecs)
	body := world.AddBox(min, max, kinematic.Static)
	body.Data = entry // Link for O(1) lookup
	components.Body.SetValue(entry, components.BodyData{Body: body})
	return entry, nil
}

// CreateRamp spawns a sloped obstacle. Its top rises from the box elevation along the
// box's rise axis at the box's slope.
func CreateRamp(ecs *ecs.ECS, box leveldata.Box) (*donburi.Entry, error) {
	world := physicsWorld(ecs)
	if world == nil {
		return nil, ErrNoWorld
	}
	rise, err := kinematic.ParseAxis(box.Rise)
	if err != nil {
		return nil, fmt.Errorf("ramp %q: %w", box.Name, err)
	}
	min, max := boxBounds(box)

	entry := archetypes.Ramp.Spawn(ecs)
	body := world.AddRamp(min, max, kinematic.Slope{Rise: rise, Angle: mgl64.DegToRad(box.Slope)}, kinematic.Static)
	body.Data = entry
	components.Body.SetValue(entry, components.BodyData{Body: body})
	return entry, nil
}

func boxBounds(box leveldata.Box) (mgl64.Vec3, mgl64.Vec3) {
	min := mgl64.Vec3{box.X, box.Elevation, box.Z}
	max := mgl64.Vec3{box.X + box.Width, box.Elevation + box.Height, box.Z + box.Depth}
	return min, max
}
