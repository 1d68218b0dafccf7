package gamemath

import "github.com/go-gl/mathgl/mgl64"

const flatEpsilon = 1e-9

// Forward and Right are the local axes a rotation is applied to: -Z faces away from the
// viewer and +X points right.
var (
	Forward = mgl64.Vec3{0, 0, -1}
	Right   = mgl64.Vec3{1, 0, 0}
)

// FlatAxes returns the rotation's forward and right directions projected onto the ground
// plane and normalised. A direction that projects to nothing comes back as zero.
func FlatAxes(rot mgl64.Quat) (forward, right mgl64.Vec3) {
	return flatten(rot.Rotate(Forward)), flatten(rot.Rotate(Right))
}

func flatten(v mgl64.Vec3) mgl64.Vec3 {
	v[1] = 0
	if v.Len() < flatEpsilon {
		return mgl64.Vec3{}
	}
	return v.Normalize()
}

// WalkDirection sums the held movement keys into a unit ground-plane direction relative to
// rot. Opposing keys cancel; nothing held (or everything cancelled) gives zero.
func WalkDirection(rot mgl64.Quat, forward, back, left, right bool) mgl64.Vec3 {
	f, r := FlatAxes(rot)

	var dir mgl64.Vec3
	if forward {
		dir = dir.Add(f)
	}
	if back {
		dir = dir.Sub(f)
	}
	if left {
		dir = dir.Sub(r)
	}
	if right {
		dir = dir.Add(r)
	}

	if dir.Len() < flatEpsilon {
		return mgl64.Vec3{}
	}
	return dir.Normalize()
}

// ApplyGravity adds gravity*dt to a vertical velocity.
func ApplyGravity(vy, gravity, dt float64) float64 {
	return vy + gravity*dt
}

// ApplyFriction scales a velocity by a per-tick decay factor in [0, 1].
func ApplyFriction(v mgl64.Vec3, factor float64) mgl64.Vec3 {
	return v.Mul(factor)
}
