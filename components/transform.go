package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type TransformData struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
}

// NewTransform returns a transform at translation with no rotation.
func NewTransform(translation mgl64.Vec3) TransformData {
	return TransformData{Translation: translation, Rotation: mgl64.QuatIdent()}
}

var Transform = donburi.NewComponentType[TransformData]()
