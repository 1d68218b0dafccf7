package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/kinewalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrNoPlayer           = errors.New("no player entity")
	ErrNoCameraRig        = errors.New("no camera rig entity")
	ErrMultiplePlayers    = errors.New("more than one player entity")
	ErrMultipleCameraRigs = errors.New("more than one camera rig entity")
)

// PlayerRig binds the player and its camera rig once, when the scene is built. Its
// systems skip the tick while either entry is missing or has been removed.
type PlayerRig struct {
	Player *donburi.Entry
	Camera *donburi.Entry
}

// FindPlayerRig resolves the single player and camera rig in the world.
func FindPlayerRig(w donburi.World) (*PlayerRig, error) {
	player, err := single(w, tags.Player, ErrNoPlayer, ErrMultiplePlayers)
	if err != nil {
		return nil, err
	}
	camera, err := single(w, tags.CameraRig, ErrNoCameraRig, ErrMultipleCameraRigs)
	if err != nil {
		return nil, err
	}
	return &PlayerRig{Player: player, Camera: camera}, nil
}

func single(w donburi.World, tag *donburi.ComponentType[donburi.Tag], none, many error) (*donburi.Entry, error) {
	var found []*donburi.Entry
	tag.Each(w, func(entry *donburi.Entry) {
		found = append(found, entry)
	})
	switch len(found) {
	case 0:
		return nil, none
	case 1:
		return found[0], nil
	}
	return nil, fmt.Errorf("%w: found %d", many, len(found))
}

// Systems returns the rig's per-tick systems in the order they must run, with between
// inserted after movement and before kinematics.
func (r *PlayerRig) Systems(between ...ecs.System) []ecs.System {
	systems := []ecs.System{r.UpdateOrbitCamera, r.UpdateMovement}
	systems = append(systems, between...)
	return append(systems, r.UpdateKinematics, r.UpdateCameraFollow)
}

func valid(entry *donburi.Entry) bool {
	return entry != nil && entry.Valid()
}
