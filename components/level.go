package components

import (
	"github.com/automoto/kinewalk/kinematic"
	"github.com/automoto/kinewalk/shared/leveldata"
	"github.com/yohamta/donburi"
)

// LevelData is the singleton holding the loaded level and the physics world built from it.
type LevelData struct {
	Level *leveldata.Level
	World *kinematic.World
}

var Level = donburi.NewComponentType[LevelData]()
