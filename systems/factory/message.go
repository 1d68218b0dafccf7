package factory

import (
	"io/fs"

	"github.com/automoto/kinewalk/archetypes"
	"github.com/automoto/kinewalk/assets"
	"github.com/automoto/kinewalk/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDialogs starts loading the dialog collection in the background and keeps the
// handle in the ActiveDialogs singleton.
func CreateDialogs(ecs *ecs.ECS, fsys fs.FS, path string) *donburi.Entry {
	entry := archetypes.Dialogs.Spawn(ecs)
	components.ActiveDialogs.SetValue(entry, components.ActiveDialogsData{
		Handle: assets.LoadDialogsAsync(fsys, path),
	})
	return entry
}
