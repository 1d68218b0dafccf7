package kinematic

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// BodyKind separates level geometry from bodies that move at runtime.
type BodyKind int

const (
	Static BodyKind = iota
	Dynamic
)

func (k BodyKind) String() string {
	if k == Dynamic {
		return "dynamic"
	}
	return "static"
}

// Axis is the horizontal direction a ramp rises towards.
type Axis int

const (
	AxisPosX Axis = iota
	AxisNegX
	AxisPosZ
	AxisNegZ
)

// ParseAxis accepts "+x", "-x", "+z" and "-z" (the plus sign is optional).
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "+x", "x":
		return AxisPosX, nil
	case "-x":
		return AxisNegX, nil
	case "+z", "z":
		return AxisPosZ, nil
	case "-z":
		return AxisNegZ, nil
	}
	return 0, fmt.Errorf("kinematic: unknown axis %q", s)
}

// Downhill returns the unit horizontal direction opposite to the rise.
func (a Axis) Downhill() mgl64.Vec3 {
	switch a {
	case AxisNegX:
		return mgl64.Vec3{1, 0, 0}
	case AxisPosZ:
		return mgl64.Vec3{0, 0, -1}
	case AxisNegZ:
		return mgl64.Vec3{0, 0, 1}
	}
	return mgl64.Vec3{-1, 0, 0}
}

// Slope turns a body's top face into an incline rising along Rise by Angle radians.
type Slope struct {
	Rise  Axis
	Angle float64
}

// Body is an axis-aligned box, optionally with a sloped top.
type Body struct {
	Kind  BodyKind
	Min   mgl64.Vec3
	Max   mgl64.Vec3
	Slope *Slope
	Data  interface{} // owner link, e.g. the entity that spawned the body

	world  *World
	object *resolv.Object
}

// Size returns the body's extent on each axis.
func (b *Body) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// SurfaceAt returns the height of the top face above the point (x, z), with the point
// clamped into the body's footprint.
func (b *Body) SurfaceAt(x, z float64) float64 {
	if b.Slope == nil {
		return b.Max.Y()
	}
	x = mgl64.Clamp(x, b.Min.X(), b.Max.X())
	z = mgl64.Clamp(z, b.Min.Z(), b.Max.Z())

	var run float64
	switch b.Slope.Rise {
	case AxisPosX:
		run = x - b.Min.X()
	case AxisNegX:
		run = b.Max.X() - x
	case AxisPosZ:
		run = z - b.Min.Z()
	case AxisNegZ:
		run = b.Max.Z() - z
	}
	return math.Min(b.Min.Y()+run*math.Tan(b.Slope.Angle), b.Max.Y())
}

// highestUnder returns the highest point of the top face under the footprint bx, which for
// a ramp lies on the footprint's uphill edge.
func (b *Body) highestUnder(bx bounds) float64 {
	if b.Slope == nil {
		return b.Max.Y()
	}
	switch b.Slope.Rise {
	case AxisPosX:
		return b.SurfaceAt(bx.maxX, b.Min.Z())
	case AxisNegX:
		return b.SurfaceAt(bx.minX, b.Min.Z())
	case AxisPosZ:
		return b.SurfaceAt(b.Min.X(), bx.maxZ)
	}
	return b.SurfaceAt(b.Min.X(), bx.minZ)
}

// MoveTo places the body's minimum corner at min, keeping its size.
func (b *Body) MoveTo(min mgl64.Vec3) {
	size := b.Size()
	b.Min = min
	b.Max = min.Add(size)
	if b.world != nil {
		b.world.syncBody(b)
	}
}

func (b *Body) overlapsXZ(bx bounds) bool {
	return bx.minX < b.Max.X() && bx.maxX > b.Min.X() &&
		bx.minZ < b.Max.Z() && bx.maxZ > b.Min.Z()
}

// extent returns the body's depth along a horizontal axis index (0 = X, 2 = Z).
func (b *Body) extent(axis int) float64 {
	return b.Max[axis] - b.Min[axis]
}
