package components

import (
	"github.com/automoto/kinewalk/assets"
	"github.com/yohamta/donburi"
)

// ActiveDialogsData keeps the handle of the dialog collection being loaded for the scene.
type ActiveDialogsData struct {
	Handle *assets.DialogHandle
}

var ActiveDialogs = donburi.NewComponentType[ActiveDialogsData]()
