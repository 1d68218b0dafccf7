package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PlatformData drives a dynamic body up and down. The tween yields the vertical offset
// from Base, the body's resting minimum corner.
type PlatformData struct {
	Tween *gween.Sequence
	Base  mgl64.Vec3
}

var Platform = donburi.NewComponentType[PlatformData]()
