package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure from Load/LoadFile.
var ErrInvalidConfig = errors.New("invalid config")

// fileDocument mirrors the global config sections. Keys missing from the file keep the
// value the section had before loading.
type fileDocument struct {
	Window Config       `yaml:"window"`
	Player PlayerConfig `yaml:"player"`
	Camera CameraConfig `yaml:"camera"`
	Actor  ActorConfig  `yaml:"actor"`
	World  WorldConfig  `yaml:"world"`
	Level  LevelConfig  `yaml:"level"`
	Debug  DebugConfig  `yaml:"debug"`
}

// LoadFile reads a YAML override file and applies it on top of the defaults.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return Load(data)
}

// Load applies YAML overrides. The globals are only replaced when the whole document
// parses and validates.
func Load(data []byte) error {
	doc := fileDocument{
		Window: *C,
		Player: Player,
		Camera: Camera,
		Actor:  Actor,
		World:  World,
		Level:  Level,
		Debug:  Debug,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if err := doc.validate(); err != nil {
		return err
	}

	window := doc.Window
	C = &window
	Player = doc.Player
	Camera = doc.Camera
	Actor = doc.Actor
	World = doc.World
	Level = doc.Level
	Debug = doc.Debug
	return nil
}

func (d *fileDocument) validate() error {
	switch {
	case d.Window.Width <= 0 || d.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, d.Window.Width, d.Window.Height)
	case d.Player.Walk < 0:
		return fmt.Errorf("%w: player.walk must not be negative", ErrInvalidConfig)
	case d.Player.Friction < 0 || d.Player.Friction > 1:
		return fmt.Errorf("%w: player.friction must be within [0, 1]", ErrInvalidConfig)
	case d.Camera.RotationSpeed < 0:
		return fmt.Errorf("%w: camera.rotation_speed must not be negative", ErrInvalidConfig)
	case d.Camera.MaxPitch <= 0 || d.Camera.MaxPitch >= math.Pi/2:
		return fmt.Errorf("%w: camera.max_pitch must be within (0, π/2)", ErrInvalidConfig)
	case d.Actor.Radius <= 0:
		return fmt.Errorf("%w: actor.radius must be positive", ErrInvalidConfig)
	case d.Actor.MaxSlopeClimbDegrees < d.Actor.MinSlopeSlideDegrees:
		return fmt.Errorf("%w: actor slope climb angle %.1f is below slide angle %.1f",
			ErrInvalidConfig, d.Actor.MaxSlopeClimbDegrees, d.Actor.MinSlopeSlideDegrees)
	case d.World.CellSize <= 0:
		return fmt.Errorf("%w: world.cell_size must be positive", ErrInvalidConfig)
	}
	return nil
}
