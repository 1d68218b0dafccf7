package scenes

import (
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"sync"

	"github.com/automoto/kinewalk/assets"
	cfg "github.com/automoto/kinewalk/config"
	"github.com/automoto/kinewalk/systems"
	"github.com/automoto/kinewalk/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs one level with the player rig. It is built lazily on the first
// update so window and persistence setup in main has already happened.
type ArenaScene struct {
	ecs   *ecs.ECS
	files fs.FS
	err   error
	once  sync.Once
}

func NewArenaScene(files fs.FS) *ArenaScene {
	return &ArenaScene{files: files}
}

func (as *ArenaScene) Update() error {
	as.once.Do(func() {
		as.err = as.configure()
	})
	if as.err != nil {
		return as.err
	}
	as.ecs.Update()
	return nil
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() error {
	e := ecs.NewECS(donburi.NewWorld())

	level, err := assets.LoadLevel(as.files, cfg.Level.Map)
	if err != nil {
		return err
	}
	if err := factory.BuildLevel(e, level); err != nil {
		return err
	}
	rig, err := systems.FindPlayerRig(e.World)
	if err != nil {
		return fmt.Errorf("arena: %w", err)
	}

	// Systems that always run
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)

	// Orbit, movement, platforms, kinematics, follow. Order matters.
	for _, system := range rig.Systems(systems.UpdatePlatforms) {
		e.AddSystem(system)
	}

	e.AddRenderer(cfg.Overlay, systems.NewDrawDebug(rig))

	factory.CreateDialogs(e, as.files, cfg.Level.Dialogs)

	as.ecs = e
	log.Printf("[arena] ready: level %q, %d spawns", level.Name, len(level.Spawns))
	return nil
}
