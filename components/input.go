package components

import (
	cfg "github.com/automoto/kinewalk/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

func (m InputMethod) String() string {
	if m == InputGamepad {
		return "gamepad"
	}
	return "keyboard"
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod

	// MouseDeltas queues look motion since the orbit system last drained it.
	MouseDeltas []mgl64.Vec2

	// Cursor tracking for turning absolute cursor positions into deltas
	LastCursorX, LastCursorY int
	CursorTracked            bool
	CursorCaptured           bool
}

// DrainMouseDeltas returns the queued deltas and empties the queue.
func (i *InputData) DrainMouseDeltas() []mgl64.Vec2 {
	deltas := i.MouseDeltas
	i.MouseDeltas = i.MouseDeltas[:0:0]
	return deltas
}

var Input = donburi.NewComponentType[InputData]()
