package factory

import (
	"math"

	"github.com/automoto/kinewalk/archetypes"
	"github.com/automoto/kinewalk/components"
	cfg "github.com/automoto/kinewalk/config"
	"github.com/automoto/kinewalk/kinematic"
	"github.com/automoto/kinewalk/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWorld spawns the level singleton and the physics world covering the level plus
// the configured margin on every side.
func CreateWorld(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)

	margin := float64(cfg.World.Margin)
	world := kinematic.NewWorld(
		-margin, -margin,
		math.Ceil(level.Width+2*margin), math.Ceil(level.Depth+2*margin),
		cfg.World.CellSize,
	)
	components.Level.SetValue(entry, components.LevelData{
		Level: level,
		World: world,
	})
	return entry
}

// physicsWorld returns the world created by CreateWorld, or nil before it exists.
func physicsWorld(ecs *ecs.ECS) *kinematic.World {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry).World
}
