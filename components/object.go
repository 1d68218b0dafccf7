package components

import (
	"github.com/automoto/kinewalk/kinematic"
	"github.com/yohamta/donburi"
)

// BodyData links an obstacle entity to its body in the physics world.
type BodyData struct {
	*kinematic.Body
}

var Body = donburi.NewComponentType[BodyData]()
