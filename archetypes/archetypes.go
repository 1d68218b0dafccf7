package archetypes

import (
	"github.com/automoto/kinewalk/components"
	cfg "github.com/automoto/kinewalk/config"
	"github.com/automoto/kinewalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Physics,
		components.Kinematic,
		components.State,
	)
	CameraRig = newArchetype(
		tags.CameraRig,
		components.Transform,
		components.Orbit,
		components.Camera,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Body,
	)
	Ramp = newArchetype(
		tags.Ramp,
		components.Body,
	)
	MovingPlatform = newArchetype(
		tags.Platform,
		components.Body,
		components.Platform,
	)
	Level = newArchetype(
		components.Level,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Dialogs = newArchetype(
		components.ActiveDialogs,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
