package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

func vecNear(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() < 1e-6
}

func TestApplyMouseLook(t *testing.T) {
	tests := []struct {
		name             string
		yaw, pitch       float64
		deltas           []mgl64.Vec2
		dt               float64
		wantYaw, wantPit float64
	}{
		{
			name:    "empty queue leaves orbit unchanged",
			yaw:     0.4,
			pitch:   -0.2,
			dt:      1.0 / 60,
			wantYaw: 0.4,
			wantPit: -0.2,
		},
		{
			name:    "deltas are summed and scaled",
			deltas:  []mgl64.Vec2{{10, 0}, {10, 5}},
			dt:      0.5,
			wantYaw: -3,    // 20 * 0.3 * 0.5
			wantPit: -0.75, // 5 * 0.3 * 0.5
		},
		{
			name:    "pitch clamps downward",
			deltas:  []mgl64.Vec2{{0, 1000}},
			dt:      1,
			wantPit: -DefaultMaxPitch,
		},
		{
			name:    "pitch clamps upward",
			deltas:  []mgl64.Vec2{{0, -1000}},
			dt:      1,
			wantPit: DefaultMaxPitch,
		},
		{
			name:    "yaw is unbounded",
			yaw:     10,
			deltas:  []mgl64.Vec2{{-100, 0}},
			dt:      1,
			wantYaw: 40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yaw, pitch := ApplyMouseLook(tt.yaw, tt.pitch, tt.deltas, 0.3, tt.dt, DefaultMaxPitch)
			if math.Abs(yaw-tt.wantYaw) > eps {
				t.Errorf("yaw = %v, want %v", yaw, tt.wantYaw)
			}
			if math.Abs(pitch-tt.wantPit) > eps {
				t.Errorf("pitch = %v, want %v", pitch, tt.wantPit)
			}
		})
	}
}

func TestPitchStaysInRange(t *testing.T) {
	yaw, pitch := 0.0, 0.0
	for i := 0; i < 500; i++ {
		dy := float64((i*37)%200 - 100)
		yaw, pitch = ApplyMouseLook(yaw, pitch, []mgl64.Vec2{{3, dy}}, 0.3, 1.0/30, DefaultMaxPitch)
		if pitch < -DefaultMaxPitch || pitch > DefaultMaxPitch {
			t.Fatalf("tick %d: pitch %v out of range", i, pitch)
		}
	}
}

func TestOrbitRotation(t *testing.T) {
	tests := []struct {
		name        string
		yaw, pitch  float64
		wantForward mgl64.Vec3
	}{
		{name: "identity", wantForward: mgl64.Vec3{0, 0, -1}},
		{name: "quarter turn left", yaw: math.Pi / 2, wantForward: mgl64.Vec3{-1, 0, 0}},
		{name: "quarter turn right", yaw: -math.Pi / 2, wantForward: mgl64.Vec3{1, 0, 0}},
		{name: "pitch up", pitch: math.Pi / 4, wantForward: mgl64.Vec3{0, math.Sqrt2 / 2, -math.Sqrt2 / 2}},
		{
			name:        "pitch is applied about the yawed axis",
			yaw:         math.Pi / 2,
			pitch:       math.Pi / 4,
			wantForward: mgl64.Vec3{-math.Sqrt2 / 2, math.Sqrt2 / 2, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OrbitRotation(tt.yaw, tt.pitch).Rotate(Forward)
			if !vecNear(got, tt.wantForward) {
				t.Errorf("forward = %v, want %v", got, tt.wantForward)
			}
		})
	}
}

func TestWalkDirection(t *testing.T) {
	level := OrbitRotation(0, 0)
	tilted := OrbitRotation(math.Pi/2, -1.2)

	tests := []struct {
		name                       string
		rot                        mgl64.Quat
		forward, back, left, right bool
		want                       mgl64.Vec3
	}{
		{name: "nothing held", rot: level, want: mgl64.Vec3{}},
		{name: "forward", rot: level, forward: true, want: mgl64.Vec3{0, 0, -1}},
		{name: "back", rot: level, back: true, want: mgl64.Vec3{0, 0, 1}},
		{name: "left", rot: level, left: true, want: mgl64.Vec3{-1, 0, 0}},
		{name: "right", rot: level, right: true, want: mgl64.Vec3{1, 0, 0}},
		{name: "forward and back cancel", rot: level, forward: true, back: true, want: mgl64.Vec3{}},
		{name: "left and right cancel", rot: level, left: true, right: true, want: mgl64.Vec3{}},
		{name: "all four cancel", rot: level, forward: true, back: true, left: true, right: true, want: mgl64.Vec3{}},
		{
			name:    "diagonal is normalised",
			rot:     level,
			forward: true,
			right:   true,
			want:    mgl64.Vec3{math.Sqrt2 / 2, 0, -math.Sqrt2 / 2},
		},
		{name: "pitch does not leak into the ground plane", rot: tilted, forward: true, want: mgl64.Vec3{-1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WalkDirection(tt.rot, tt.forward, tt.back, tt.left, tt.right)
			if !vecNear(got, tt.want) {
				t.Errorf("WalkDirection() = %v, want %v", got, tt.want)
			}
			if got.Y() != 0 {
				t.Errorf("WalkDirection() has vertical component %v", got.Y())
			}
		})
	}
}

func TestFlatAxesAreUnitAndOrthogonal(t *testing.T) {
	for _, yaw := range []float64{0, 0.3, 2, -2.5} {
		for _, pitch := range []float64{-DefaultMaxPitch, 0, 0.7, DefaultMaxPitch} {
			f, r := FlatAxes(OrbitRotation(yaw, pitch))
			if math.Abs(f.Len()-1) > 1e-6 || math.Abs(r.Len()-1) > 1e-6 {
				t.Errorf("yaw %v pitch %v: lengths %v, %v", yaw, pitch, f.Len(), r.Len())
			}
			if math.Abs(f.Dot(r)) > 1e-6 {
				t.Errorf("yaw %v pitch %v: forward and right not orthogonal", yaw, pitch)
			}
		}
	}
}

func TestApplyGravityAndFriction(t *testing.T) {
	if got := ApplyGravity(8, -9.81, 0.5); math.Abs(got-3.095) > eps {
		t.Errorf("ApplyGravity() = %v, want 3.095", got)
	}
	got := ApplyFriction(mgl64.Vec3{4, 8, -2}, 0.875)
	if !vecNear(got, mgl64.Vec3{3.5, 7, -1.75}) {
		t.Errorf("ApplyFriction() = %v", got)
	}
}
