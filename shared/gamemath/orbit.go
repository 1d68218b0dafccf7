// Package gamemath holds the pure math behind the player rig: mouse-look orbiting and
// camera-relative walking.
package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultMaxPitch keeps the camera a little short of looking straight up or down.
const DefaultMaxPitch = math.Pi/2 - 0.1

var (
	axisX = mgl64.Vec3{1, 0, 0}
	axisY = mgl64.Vec3{0, 1, 0}
)

// ClampPitch clamps pitch to [-maxPitch, maxPitch].
func ClampPitch(pitch, maxPitch float64) float64 {
	return mgl64.Clamp(pitch, -maxPitch, maxPitch)
}

// ApplyMouseLook folds a tick's mouse deltas into yaw and pitch. The deltas are summed and
// scaled by speed*dt. Moving the mouse right turns the view right and moving it down
// pitches the view down. With no deltas yaw and pitch come back unchanged.
func ApplyMouseLook(yaw, pitch float64, deltas []mgl64.Vec2, speed, dt, maxPitch float64) (float64, float64) {
	if len(deltas) == 0 {
		return yaw, pitch
	}

	var sum mgl64.Vec2
	for _, d := range deltas {
		sum = sum.Add(d)
	}
	rotation := sum.Mul(speed * dt)

	yaw -= rotation.X()
	pitch = ClampPitch(pitch-rotation.Y(), maxPitch)
	return yaw, pitch
}

// OrbitRotation composes yaw about world Y with pitch about the yawed X axis.
func OrbitRotation(yaw, pitch float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, axisY).Mul(mgl64.QuatRotate(pitch, axisX))
}
