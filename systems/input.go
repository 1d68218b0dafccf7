package systems

import (
	"github.com/automoto/kinewalk/components"
	cfg "github.com/automoto/kinewalk/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input singleton.
// Must run BEFORE the player rig systems in the system order.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	if pollSticks(input, gamepadIDs) {
		gamepadUsed = true
	}

	updateCursor(input)

	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// pollSticks merges the left stick into the movement actions and queues right stick
// deflection as look motion.
func pollSticks(input *components.InputData, gamepads []ebiten.GamepadID) bool {
	deadzone := cfg.Input.AnalogDeadzone
	used := false

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if horizontal < -deadzone {
			input.Current[cfg.ActionMoveLeft] = true
			used = true
		}
		if horizontal > deadzone {
			input.Current[cfg.ActionMoveRight] = true
			used = true
		}
		if vertical < -deadzone {
			input.Current[cfg.ActionMoveForward] = true
			used = true
		}
		if vertical > deadzone {
			input.Current[cfg.ActionMoveBack] = true
			used = true
		}

		lookX := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal)
		lookY := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical)
		look := stickLook(lookX, lookY, deadzone, cfg.Input.StickLook)
		if look != (mgl64.Vec2{}) {
			input.MouseDeltas = append(input.MouseDeltas, look)
			used = true
		}
	}
	return used
}

// stickLook zeroes each axis inside the deadzone and scales what remains.
func stickLook(x, y, deadzone, scale float64) mgl64.Vec2 {
	if x > -deadzone && x < deadzone {
		x = 0
	}
	if y > -deadzone && y < deadzone {
		y = 0
	}
	return mgl64.Vec2{x * scale, y * scale}
}

// updateCursor captures the cursor on click, releases it on the release action, and
// queues cursor motion as look deltas while captured.
func updateCursor(input *components.InputData) {
	if GetAction(input, cfg.ActionReleaseCursor).JustPressed && input.CursorCaptured {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		input.CursorCaptured = false
		input.CursorTracked = false
	}
	if !input.CursorCaptured && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		input.CursorCaptured = true
		input.CursorTracked = false
	}
	if !input.CursorCaptured {
		return
	}

	x, y := ebiten.CursorPosition()
	queueCursor(input, x, y)
}

// queueCursor records the cursor position and queues the motion since the last sample.
// The first sample after (re)capturing only sets the reference point.
func queueCursor(input *components.InputData, x, y int) {
	if input.CursorTracked && (x != input.LastCursorX || y != input.LastCursorY) {
		input.MouseDeltas = append(input.MouseDeltas, mgl64.Vec2{
			float64(x - input.LastCursorX),
			float64(y - input.LastCursorY),
		})
	}
	input.LastCursorX, input.LastCursorY = x, y
	input.CursorTracked = true
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
