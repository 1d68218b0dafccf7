package factory

import (
	"fmt"

	"github.com/automoto/kinewalk/archetypes"
	"github.com/automoto/kinewalk/components"
	cfg "github.com/automoto/kinewalk/config"
	"github.com/automoto/kinewalk/kinematic"
	"github.com/automoto/kinewalk/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ActorConfig converts the configured capsule and traversal limits into the physics
// world's actor config. Angles are configured in degrees.
func ActorConfig() kinematic.ActorConfig {
	a := cfg.Actor
	c := kinematic.ActorConfig{
		Shape: kinematic.Capsule{
			Feet:   mgl64.Vec3(a.Feet),
			Height: mgl64.Vec3(a.Height),
			Radius: a.Radius,
		},
		Offset:             a.Offset,
		MaxSlopeClimbAngle: mgl64.DegToRad(a.MaxSlopeClimbDegrees),
		MinSlopeSlideAngle: mgl64.DegToRad(a.MinSlopeSlideDegrees),
		SnapToGround:       a.SnapToGround,
	}
	if a.StepClimbHeight > 0 {
		c.Autostep = &kinematic.Autostep{
			MaxHeight:            a.StepClimbHeight,
			MinWidth:             a.StepClimbWidth,
			IncludeDynamicBodies: a.StepIncludesDynamics,
		}
	}
	return c
}

// CreatePlayer spawns the player at a spawn point and registers its kinematic actor. The
// spawn's character wins over the configured one. The capsule's lowest point is placed
// Offset above the spawn elevation.
func CreatePlayer(ecs *ecs.ECS, spawn leveldata.SpawnPoint) (*donburi.Entry, error) {
	world := physicsWorld(ecs)
	if world == nil {
		return nil, ErrNoWorld
	}

	name := spawn.Character
	if name == "" {
		name = cfg.Player.Character
	}
	character, err := components.ParseCharacterName(name)
	if err != nil {
		return nil, fmt.Errorf("spawn player: %w", err)
	}

	actorConfig := ActorConfig()
	feet := min(actorConfig.Shape.Feet.Y(), actorConfig.Shape.Height.Y()) - actorConfig.Shape.Radius
	position := mgl64.Vec3{spawn.X, spawn.Elevation - feet + actorConfig.Offset, spawn.Z}

	actor, err := world.AddActor(actorConfig, position)
	if err != nil {
		return nil, fmt.Errorf("spawn player: %w", err)
	}

	player := archetypes.Player.Spawn(ecs)
	components.Player.SetValue(player, components.PlayerData{Character: character})
	components.Transform.SetValue(player, components.NewTransform(position))
	components.Physics.SetValue(player, components.PhysicsData{})
	components.Kinematic.SetValue(player, components.KinematicData{
		Actor: actor,
		Output: kinematic.MovementOutput{
			Grounded: actor.Grounded(),
		},
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  components.MotionIdle,
		PreviousState: components.MotionIdle,
	})

	return player, nil
}
