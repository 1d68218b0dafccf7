package systems

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/kinewalk/components"
	cfg "github.com/automoto/kinewalk/config"
	"github.com/automoto/kinewalk/kinematic"
	"github.com/automoto/kinewalk/shared/gamemath"
	"github.com/automoto/kinewalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

const welcomeDialog = "welcome"

const (
	mapScale  = 8.0 // screen pixels per world unit in the top-down view
	mapMargin = 16.0

	overlayFontSize    = 12
	overlayLineSpacing = 16
	overlayTextWidth   = 320
)

var (
	colorStatic  = color.RGBA{100, 100, 100, 255}
	colorRamp    = color.RGBA{200, 160, 60, 255}
	colorDynamic = color.RGBA{0, 255, 255, 255}
	colorPlayer  = color.RGBA{0, 0, 255, 255}
	colorView    = color.RGBA{255, 255, 255, 255}
	colorText    = color.RGBA{230, 230, 230, 255}
)

// Cached font face for the overlay text (lazy initialized)
var overlayFace *text.GoTextFace

// NewDrawDebug returns the renderer for the rig's debug overlay: a top-down view of the
// physics world and a text readout of the rig state.
func NewDrawDebug(rig *PlayerRig) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !GetOrCreateSettings(e).Debug {
			return
		}
		drawWorld(e, screen, rig)
		drawText(screen, debugText(e, rig))
	}
}

func drawText(screen *ebiten.Image, s string) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx()-overlayTextWidth), mapMargin)
	op.LineSpacing = overlayLineSpacing
	op.ColorScale.ScaleWithColor(colorText)
	text.Draw(screen, s, getOverlayFace(), op)
}

func getOverlayFace() text.Face {
	if overlayFace == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic(err)
		}
		overlayFace = &text.GoTextFace{
			Source: source,
			Size:   overlayFontSize,
		}
	}
	return overlayFace
}

func drawWorld(e *ecs.ECS, screen *ebiten.Image, rig *PlayerRig) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.World == nil {
		return
	}

	for _, body := range level.World.Bodies() {
		c := colorStatic
		if body.Slope != nil {
			c = colorRamp
		} else if body.Kind == kinematic.Dynamic {
			c = colorDynamic
		}
		x, y := toMap(body.Min.X(), body.Min.Z())
		size := body.Size()
		w, h := float32(size.X()*mapScale), float32(size.Z()*mapScale)

		// Draw outline
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}

	if !valid(rig.Player) || !valid(rig.Camera) {
		return
	}
	p := components.Transform.Get(rig.Player).Translation
	px, py := toMap(p.X(), p.Z())
	vector.FillCircle(screen, px, py, float32(cfg.Actor.Radius*mapScale), colorPlayer, true)

	forward, _ := gamemath.FlatAxes(components.Transform.Get(rig.Camera).Rotation)
	fx, fy := toMap(p.X()+forward.X()*2, p.Z()+forward.Z()*2)
	vector.StrokeLine(screen, px, py, fx, fy, 1, colorView, true)
}

func toMap(x, z float64) (float32, float32) {
	return float32(mapMargin + x*mapScale), float32(mapMargin + z*mapScale)
}

func debugText(e *ecs.ECS, rig *PlayerRig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "TPS: %0.1f\n", ebiten.ActualTPS())
	clock := getOrCreateClock(e)
	fmt.Fprintf(&b, "time: %0.1fs  tick: %d\n", clock.Elapsed, clock.Ticks)
	fmt.Fprintf(&b, "input: %s\n", getOrCreateInput(e).LastInputMethod)
	if !valid(rig.Player) || !valid(rig.Camera) {
		b.WriteString("no player\n")
		return b.String()
	}

	player := components.Player.Get(rig.Player)
	transform := components.Transform.Get(rig.Player)
	physics := components.Physics.Get(rig.Player)
	kin := components.Kinematic.Get(rig.Player)
	state := components.State.Get(rig.Player)
	orbit := components.Orbit.Get(rig.Camera)
	camera := components.Camera.Get(rig.Camera)
	eye := camera.Eye(components.Transform.Get(rig.Camera))

	fmt.Fprintf(&b, "character: %s  state: %s (%d)\n", player.Character, state.CurrentState, state.StateTimer)
	fmt.Fprintf(&b, "position: %s\n", formatVec(transform.Translation.X(), transform.Translation.Y(), transform.Translation.Z()))
	fmt.Fprintf(&b, "velocity: %s\n", formatVec(physics.Velocity.X(), physics.Velocity.Y(), physics.Velocity.Z()))
	fmt.Fprintf(&b, "desired:  %s\n", formatVec(kin.DesiredVelocity.X(), kin.DesiredVelocity.Y(), kin.DesiredVelocity.Z()))
	fmt.Fprintf(&b, "grounded: %t  sliding: %t  contacts: %d\n",
		kin.Output.Grounded, kin.Output.IsSlidingDownSlope, len(kin.Output.Collisions))
	fmt.Fprintf(&b, "yaw: %0.2f  pitch: %0.2f\n", orbit.Yaw, orbit.Pitch)
	fmt.Fprintf(&b, "eye: %s\n", formatVec(eye.X(), eye.Y(), eye.Z()))

	if entry, ok := tags.Platform.First(e.World); ok {
		body := components.Body.Get(entry)
		fmt.Fprintf(&b, "lift: %0.2f\n", body.Min.Y())
	}
	if entry, ok := components.ActiveDialogs.First(e.World); ok {
		b.WriteString(dialogStatus(components.ActiveDialogs.Get(entry)))
	}
	return b.String()
}

func dialogStatus(d *components.ActiveDialogsData) string {
	switch {
	case d.Handle == nil:
		return "dialogs: none\n"
	case !d.Handle.Ready():
		return "dialogs: loading\n"
	case d.Handle.Err() != nil:
		return fmt.Sprintf("dialogs: %s failed\n", d.Handle.Path())
	}
	c, _ := d.Handle.Get()
	status := fmt.Sprintf("dialogs: %d loaded\n", len(c.Dialogs))
	if welcome, ok := c.Lookup(welcomeDialog); ok {
		for _, line := range welcome.Text {
			status += fmt.Sprintf("%s: %s\n", welcome.Speaker, line)
		}
	}
	return status
}

func formatVec(x, y, z float64) string {
	return fmt.Sprintf("(%6.2f, %6.2f, %6.2f)", x, y, z)
}
