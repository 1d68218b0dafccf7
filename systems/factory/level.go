package factory

import (
	"fmt"
	"log"

	"github.com/automoto/kinewalk/components"
	"github.com/automoto/kinewalk/shared/leveldata"
	"github.com/yohamta/donburi/ecs"
)

// BuildLevel creates the physics world and every entity a level describes: obstacles,
// ramps, moving platforms, the player at the first spawn point and the camera rig on it.
func BuildLevel(ecs *ecs.ECS, level *leveldata.Level) error {
	if len(level.Spawns) == 0 {
		return leveldata.ErrNoSpawn
	}

	CreateWorld(ecs, level)

	for _, box := range level.Boxes {
		var err error
		switch {
		case box.Moving:
			_, err = CreateMovingPlatform(ecs, box)
		case box.IsRamp():
			_, err = CreateRamp(ecs, box)
		default:
			_, err = CreateBox(ecs, box)
		}
		if err != nil {
			return fmt.Errorf("build level %s: %w", level.Name, err)
		}
	}

	player, err := CreatePlayer(ecs, level.Spawns[0])
	if err != nil {
		return fmt.Errorf("build level %s: %w", level.Name, err)
	}
	CreateCameraRig(ecs, components.Transform.Get(player).Translation)

	log.Printf("[level] built %s: %s", level.Name, physicsWorld(ecs))
	return nil
}
