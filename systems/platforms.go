package systems

import (
	"github.com/automoto/kinewalk/components"
	"github.com/automoto/kinewalk/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms advances every moving platform's tween and moves its body. Sequences
// restart when they finish so platforms travel forever.
func UpdatePlatforms(e *ecs.ECS) {
	dt := float32(clockDelta(e))
	if dt <= 0 {
		return
	}

	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		platform := components.Platform.Get(entry)
		body := components.Body.Get(entry)
		if platform.Tween == nil || body.Body == nil {
			return
		}

		offset, _, done := platform.Tween.Update(dt)
		if done {
			platform.Tween.Reset()
		}
		body.MoveTo(platform.Base.Add(mgl64.Vec3{0, float64(offset), 0}))
	})
}
