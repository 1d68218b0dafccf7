package factory

import (
	"github.com/automoto/kinewalk/archetypes"
	"github.com/automoto/kinewalk/components"
	"github.com/automoto/kinewalk/kinematic"
	"github.com/automoto/kinewalk/shared/leveldata"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMovingPlatform spawns a dynamic box that rises by box.Travel and comes back down,
// each leg taking box.Duration seconds.
func CreateMovingPlatform(ecs *ecs.ECS, box leveldata.Box) (*donburi.Entry, error) {
	world := physicsWorld(ecs)
	if world == nil {
		return nil, ErrNoWorld
	}
	min, max := boxBounds(box)

	platform := archetypes.MovingPlatform.Spawn(ecs)
	body := world.AddBox(min, max, kinematic.Dynamic)
	body.Data = platform
	components.Body.SetValue(platform, components.BodyData{Body: body})

	// The platform moves using a *gween.Sequence of tweens, moving it up and back down.
	travel := float32(box.Travel)
	duration := float32(box.Duration)
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, travel, duration, ease.InOutQuad),
		gween.New(travel, 0, duration, ease.InOutQuad),
	)
	components.Platform.SetValue(platform, components.PlatformData{
		Tween: tw,
		Base:  min,
	})

	return platform, nil
}
