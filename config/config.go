package config

import "math"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Character selects the skin/config variant spawned for the player ("one", "two", "three", "debug")
	Character string `yaml:"character"`

	// Movement
	Walk      float64 `yaml:"walk"`       // Horizontal speed in units/second
	JumpForce float64 `yaml:"jump_force"` // Vertical velocity set while jump is held

	// Physics
	Gravity  float64 `yaml:"gravity"`  // Units/second² added to vertical velocity when ApplyGravity is on
	Friction float64 `yaml:"friction"` // Multiplicative decay applied when ApplyFriction is on

	// Integration switches. All off reproduces the shipped feel: no gravity, no decay,
	// jump re-applied every held tick.
	ApplyGravity      bool `yaml:"apply_gravity"`
	ApplyFriction     bool `yaml:"apply_friction"`
	EdgeTriggeredJump bool `yaml:"edge_triggered_jump"`
}

// CameraConfig contains orbit camera configuration
type CameraConfig struct {
	RotationSpeed float64    `yaml:"rotation_speed"` // Mouse delta to radians scale (per second)
	MaxPitch      float64    `yaml:"max_pitch"`      // Radians, pitch is clamped to [-MaxPitch, MaxPitch]
	Offset        [3]float64 `yaml:"offset"`         // Eye position relative to the rig
}

// ActorConfig contains the kinematic capsule and traversal parameters handed to the
// physics world when the player spawns.
type ActorConfig struct {
	Feet   [3]float64 `yaml:"feet"`   // Capsule segment start
	Height [3]float64 `yaml:"height"` // Capsule segment end
	Radius float64    `yaml:"radius"`
	Offset float64    `yaml:"offset"` // Skin gap kept between the capsule and obstacles

	MaxSlopeClimbDegrees float64 `yaml:"max_slope_climb_degrees"`
	MinSlopeSlideDegrees float64 `yaml:"min_slope_slide_degrees"`

	StepClimbHeight      float64 `yaml:"step_climb_height"`
	StepClimbWidth       float64 `yaml:"step_climb_width"`
	StepIncludesDynamics bool    `yaml:"step_includes_dynamics"`

	SnapToGround float64 `yaml:"snap_to_ground"`
}

// WorldConfig contains broad phase sizing for the kinematic world
type WorldConfig struct {
	CellSize int `yaml:"cell_size"` // resolv cell size in world units
	Margin   int `yaml:"margin"`    // Extra space around the level bounds
}

// LevelConfig names the embedded assets the arena scene loads
type LevelConfig struct {
	Map     string `yaml:"map"`
	Dialogs string `yaml:"dialogs"`
}

// Config holds general game configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool `yaml:"overlay"` // Draw the debug text overlay
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Camera CameraConfig
var Actor ActorConfig
var World WorldConfig
var Level LevelConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "kinewalk",
	}

	Player = PlayerConfig{
		Character: "debug",

		Walk:      5.0,
		JumpForce: 8.0,

		Gravity:  -9.81,
		Friction: 0.875,
	}

	Camera = CameraConfig{
		RotationSpeed: 0.3,
		MaxPitch:      math.Pi/2 - 0.1,
		Offset:        [3]float64{0, 2, 10},
	}

	Actor = ActorConfig{
		Feet:   [3]float64{0, 0, 0},
		Height: [3]float64{0, 1.8, 0},
		Radius: 0.5,
		Offset: 0.01,

		MaxSlopeClimbDegrees: 45,
		MinSlopeSlideDegrees: 30,

		StepClimbHeight:      0.5,
		StepClimbWidth:       0.2,
		StepIncludesDynamics: true,

		SnapToGround: 0.2,
	}

	World = WorldConfig{
		CellSize: 2,
		Margin:   8,
	}

	Level = LevelConfig{
		Map:     "levels/arena.tmx",
		Dialogs: "dialogs/dialogs.yaml",
	}

	Debug = DebugConfig{
		Overlay: false,
	}
}
