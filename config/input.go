package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionToggleDebug
	ActionToggleFullscreen
	ActionReleaseCursor
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and gamepad buttons bound to an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings       map[ActionID]InputBinding
	AnalogDeadzone float64
	// StickLook converts right stick deflection into a look delta per tick, in the same
	// units as mouse motion.
	StickLook float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveForward: {
				Keys: []ebiten.Key{ebiten.KeyW},
			},
			ActionMoveBack: {
				Keys: []ebiten.Key{ebiten.KeyS},
			},
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyA},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyD},
			},
			ActionJump: {
				Keys:                   []ebiten.Key{ebiten.KeySpace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
			},
			ActionToggleDebug: {
				Keys:                   []ebiten.Key{ebiten.KeyF3},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
			},
			ActionToggleFullscreen: {
				Keys: []ebiten.Key{ebiten.KeyF11},
			},
			ActionReleaseCursor: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
		AnalogDeadzone: 0.25,
		StickLook:      12,
	}
}
