package factory

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/kinewalk/assets"
	"github.com/automoto/kinewalk/components"
	cfg "github.com/automoto/kinewalk/config"
	"github.com/automoto/kinewalk/kinematic"
	"github.com/automoto/kinewalk/shared/leveldata"
	"github.com/automoto/kinewalk/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func count(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func flatLevel() *leveldata.Level {
	return &leveldata.Level{
		Name:  "flat",
		Width: 10,
		Depth: 10,
		Boxes: []leveldata.Box{
			{Name: "floor", X: 0, Z: 0, Width: 10, Depth: 10, Elevation: -1, Height: 1},
		},
		Spawns: []leveldata.SpawnPoint{{X: 5, Z: 5}},
	}
}

func TestBuildArena(t *testing.T) {
	level, err := assets.LoadLevel(assets.Files, cfg.Level.Map)
	if err != nil {
		t.Fatalf("load arena: %v", err)
	}

	e := newECS()
	if err := BuildLevel(e, level); err != nil {
		t.Fatalf("BuildLevel: %v", err)
	}

	counts := []struct {
		name string
		tag  *donburi.ComponentType[donburi.Tag]
		want int
	}{
		{"players", tags.Player, 1},
		{"camera rigs", tags.CameraRig, 1},
		{"obstacles", tags.Obstacle, 9},
		{"ramps", tags.Ramp, 2},
		{"platforms", tags.Platform, 1},
	}
	for _, c := range counts {
		if got := count(e.World, c.tag); got != c.want {
			t.Errorf("%s = %d, want %d", c.name, got, c.want)
		}
	}

	world := physicsWorld(e)
	if world == nil {
		t.Fatal("no physics world")
	}
	if got := len(world.Bodies()); got != 12 {
		t.Errorf("bodies = %d, want 12", got)
	}
	if got := len(world.Actors()); got != 1 {
		t.Errorf("actors = %d, want 1", got)
	}
}

func TestCreatePlayerOnFloor(t *testing.T) {
	e := newECS()
	if err := BuildLevel(e, flatLevel()); err != nil {
		t.Fatalf("BuildLevel: %v", err)
	}

	player, ok := tags.Player.First(e.World)
	if !ok {
		t.Fatal("no player")
	}
	want := mgl64.Vec3{5, cfg.Actor.Radius + cfg.Actor.Offset, 5}
	got := components.Transform.Get(player).Translation
	if !got.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("player translation = %v, want %v", got, want)
	}
	if rot := components.Transform.Get(player).Rotation; rot != mgl64.QuatIdent() {
		t.Errorf("player rotation = %v, want identity", rot)
	}

	kin := components.Kinematic.Get(player)
	if kin.Actor == nil || !kin.Actor.Grounded() {
		t.Errorf("actor should start grounded")
	}
	if c := components.Player.Get(player).Character; c != components.CharacterDebug {
		t.Errorf("character = %v, want %v", c, components.CharacterDebug)
	}

	rig, ok := tags.CameraRig.First(e.World)
	if !ok {
		t.Fatal("no camera rig")
	}
	if got := components.Transform.Get(rig).Translation; got != want {
		t.Errorf("rig translation = %v, want %v", got, want)
	}
	if got := components.Camera.Get(rig).Offset; got != mgl64.Vec3(cfg.Camera.Offset) {
		t.Errorf("camera offset = %v, want %v", got, cfg.Camera.Offset)
	}
}

func TestCreatePlayerCharacter(t *testing.T) {
	tests := []struct {
		name      string
		character string
		want      components.CharacterName
		wantErr   bool
	}{
		{"spawn character", "two", components.CharacterTwo, false},
		{"configured fallback", "", components.CharacterDebug, false},
		{"unknown", "seven", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newECS()
			CreateWorld(e, flatLevel())
			player, err := CreatePlayer(e, leveldata.SpawnPoint{X: 5, Z: 5, Character: tt.character})
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("CreatePlayer: %v", err)
			}
			if got := components.Player.Get(player).Character; got != tt.want {
				t.Errorf("character = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildLevelErrors(t *testing.T) {
	noSpawn := flatLevel()
	noSpawn.Spawns = nil

	badRise := flatLevel()
	badRise.Boxes = append(badRise.Boxes, leveldata.Box{
		Name: "ramp", X: 1, Z: 1, Width: 2, Depth: 2, Slope: 20, Rise: "up",
	})

	tests := []struct {
		name  string
		level *leveldata.Level
		want  error
	}{
		{"no spawn", noSpawn, leveldata.ErrNoSpawn},
		{"bad rise", badRise, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := BuildLevel(newECS(), tt.level)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCreateWithoutWorld(t *testing.T) {
	box := leveldata.Box{Name: "box", Width: 1, Depth: 1, Height: 1}
	e := newECS()

	if _, err := CreateBox(e, box); !errors.Is(err, ErrNoWorld) {
		t.Errorf("CreateBox error = %v, want %v", err, ErrNoWorld)
	}
	if _, err := CreateMovingPlatform(e, box); !errors.Is(err, ErrNoWorld) {
		t.Errorf("CreateMovingPlatform error = %v, want %v", err, ErrNoWorld)
	}
	if _, err := CreatePlayer(e, leveldata.SpawnPoint{}); !errors.Is(err, ErrNoWorld) {
		t.Errorf("CreatePlayer error = %v, want %v", err, ErrNoWorld)
	}
}

func TestCreateRampTop(t *testing.T) {
	e := newECS()
	CreateWorld(e, flatLevel())

	entry, err := CreateRamp(e, leveldata.Box{Name: "ramp", X: 2, Z: 2, Width: 4, Depth: 2, Slope: 45, Rise: "-x"})
	if err != nil {
		t.Fatalf("CreateRamp: %v", err)
	}
	body := components.Body.Get(entry).Body
	if body.Slope == nil || body.Slope.Rise != kinematic.AxisNegX {
		t.Fatalf("slope = %+v, want rise -x", body.Slope)
	}
	if math.Abs(body.Max.Y()-4) > 1e-9 {
		t.Errorf("ramp top = %v, want 4", body.Max.Y())
	}
	if body.Data != entry {
		t.Errorf("body should link back to its entry")
	}
}

func TestActorConfig(t *testing.T) {
	c := ActorConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("default actor config invalid: %v", err)
	}
	if math.Abs(c.MaxSlopeClimbAngle-math.Pi/4) > 1e-12 {
		t.Errorf("climb angle = %v, want pi/4", c.MaxSlopeClimbAngle)
	}
	if c.Autostep == nil || c.Autostep.MaxHeight != cfg.Actor.StepClimbHeight {
		t.Errorf("autostep = %+v", c.Autostep)
	}
}
