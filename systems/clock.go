package systems

import (
	"github.com/automoto/kinewalk/archetypes"
	"github.com/automoto/kinewalk/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock records the fixed tick length. ebiten calls Update at TPS ticks per second,
// so one tick is 1/TPS seconds of simulated time.
func UpdateClock(e *ecs.ECS) {
	clock := getOrCreateClock(e)
	tps := ebiten.TPS()
	if tps <= 0 {
		clock.Delta = 0
		return
	}
	clock.Delta = 1 / float64(tps)
	clock.Elapsed += clock.Delta
	clock.Ticks++
}

// getOrCreateClock returns the singleton Clock component, creating if needed
func getOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = archetypes.Clock.Spawn(e)
	}
	return components.Clock.Get(entry)
}

func clockDelta(e *ecs.ECS) float64 {
	return getOrCreateClock(e).Delta
}
