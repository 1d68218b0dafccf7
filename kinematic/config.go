// Package kinematic resolves capsule-shaped kinematic actors against static and moving
// boxes and ramps. Actors are moved by a desired velocity; the world clamps the motion
// at obstacles, climbs small steps and walkable slopes, and reports what happened.
package kinematic

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrInvalidShape  = errors.New("kinematic: invalid capsule shape")
	ErrInvalidOffset = errors.New("kinematic: invalid offset")
	ErrInvalidSlope  = errors.New("kinematic: invalid slope limits")
	ErrInvalidStep   = errors.New("kinematic: invalid autostep")
)

// Capsule is a segment from Feet to Height swept by Radius, relative to the actor position.
type Capsule struct {
	Feet   mgl64.Vec3
	Height mgl64.Vec3
	Radius float64
}

// Autostep lets an actor climb ledges up to MaxHeight whose top is at least MinWidth deep.
type Autostep struct {
	MaxHeight            float64
	MinWidth             float64
	IncludeDynamicBodies bool
}

// ActorConfig is fixed when the actor is added to a world.
type ActorConfig struct {
	Shape  Capsule
	Offset float64 // gap kept between the capsule and any surface

	// Slopes up to MaxSlopeClimbAngle can be walked up. Slopes steeper than
	// MinSlopeSlideAngle turn downward motion into a slide. Radians.
	MaxSlopeClimbAngle float64
	MinSlopeSlideAngle float64

	Autostep *Autostep // nil disables stepping

	// A grounded actor that walks off a surface drops onto support up to this far below.
	SnapToGround float64
}

// Validate reports the first inconsistency in the config.
func (c ActorConfig) Validate() error {
	if c.Shape.Radius <= 0 || math.IsNaN(c.Shape.Radius) {
		return fmt.Errorf("%w: radius %v", ErrInvalidShape, c.Shape.Radius)
	}
	if c.Offset < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidOffset, c.Offset)
	}
	if c.SnapToGround < 0 {
		return fmt.Errorf("%w: snap to ground %v", ErrInvalidOffset, c.SnapToGround)
	}
	if c.MaxSlopeClimbAngle < 0 || c.MaxSlopeClimbAngle >= math.Pi/2 {
		return fmt.Errorf("%w: climb angle %v", ErrInvalidSlope, c.MaxSlopeClimbAngle)
	}
	if c.MinSlopeSlideAngle < 0 || c.MinSlopeSlideAngle > c.MaxSlopeClimbAngle {
		return fmt.Errorf("%w: slide angle %v above climb angle %v", ErrInvalidSlope, c.MinSlopeSlideAngle, c.MaxSlopeClimbAngle)
	}
	if s := c.Autostep; s != nil && (s.MaxHeight < 0 || s.MinWidth < 0) {
		return fmt.Errorf("%w: height %v width %v", ErrInvalidStep, s.MaxHeight, s.MinWidth)
	}
	return nil
}

// extents returns the capsule's half size on X/Z and its vertical span relative to the
// actor position.
func (s Capsule) extents() (halfX, halfZ, bottom, top float64) {
	halfX = s.Radius + math.Max(math.Abs(s.Feet.X()), math.Abs(s.Height.X()))
	halfZ = s.Radius + math.Max(math.Abs(s.Feet.Z()), math.Abs(s.Height.Z()))
	bottom = math.Min(s.Feet.Y(), s.Height.Y()) - s.Radius
	top = math.Max(s.Feet.Y(), s.Height.Y()) + s.Radius
	return
}
