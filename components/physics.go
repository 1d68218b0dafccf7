package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// PhysicsData is the player's stored velocity. Only the movement system writes it; the
// vertical part carries over between ticks.
type PhysicsData struct {
	Velocity mgl64.Vec3
}

var Physics = donburi.NewComponentType[PhysicsData]()
