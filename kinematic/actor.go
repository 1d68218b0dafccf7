package kinematic

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

const (
	tolerance   = 1e-6
	maxSubsteps = 64
)

// MovementOutput reports what one Move call achieved.
type MovementOutput struct {
	DesiredTranslation   mgl64.Vec3
	EffectiveTranslation mgl64.Vec3
	Grounded             bool
	IsSlidingDownSlope   bool
	Collisions           []*Body // bodies that blocked, carried or stepped the actor
}

func (o *MovementOutput) addCollision(b *Body) {
	for _, c := range o.Collisions {
		if c == b {
			return
		}
	}
	o.Collisions = append(o.Collisions, b)
}

// Actor is a kinematic capsule. Its position is the capsule's origin; the capsule spans
// Shape.Feet..Shape.Height inflated by the radius.
type Actor struct {
	config   ActorConfig
	world    *World
	position mgl64.Vec3
	object   *resolv.Object

	halfX, halfZ float64
	bottom, top  float64

	grounded bool
	ground   *Body
}

type bounds struct {
	minX, maxX float64
	minY, maxY float64
	minZ, maxZ float64
}

func (b bounds) lo(axis int) float64 {
	if axis == 0 {
		return b.minX
	}
	return b.minZ
}

func (b bounds) hi(axis int) float64 {
	if axis == 0 {
		return b.maxX
	}
	return b.maxZ
}

// inflate grows the footprint by d on X and Z.
func (b bounds) inflate(d float64) bounds {
	b.minX -= d
	b.maxX += d
	b.minZ -= d
	b.maxZ += d
	return b
}

func (a *Actor) Position() mgl64.Vec3 { return a.position }
func (a *Actor) Grounded() bool { return a.grounded }

// Ground returns the body the actor stands on, or nil while airborne.
func (a *Actor) Ground() *Body { return a.ground }

// Move sweeps the actor by desired*dt. Motion is split into substeps no longer than a
// quarter of the capsule width, and each substep resolves X, then Z, then Y.
func (a *Actor) Move(desired mgl64.Vec3, dt float64) MovementOutput {
	out := MovementOutput{DesiredTranslation: desired.Mul(dt)}
	if dt <= 0 {
		out.Grounded = a.grounded
		return out
	}

	start := a.position
	steps := a.substeps(out.DesiredTranslation)
	step := out.DesiredTranslation.Mul(1 / float64(steps))
	for i := 0; i < steps; i++ {
		a.moveHorizontal(0, step.X(), &out)
		a.moveHorizontal(2, step.Z(), &out)
		a.moveVertical(step.Y(), &out)

		if step.Y() < 0 && a.onSlideSlope() {
			a.slide(-step.Y(), &out)
		}
	}

	out.EffectiveTranslation = a.position.Sub(start)
	out.Grounded = a.grounded
	return out
}

func (a *Actor) substeps(t mgl64.Vec3) int {
	longest := math.Max(math.Abs(t.X()), math.Max(math.Abs(t.Y()), math.Abs(t.Z())))
	limit := math.Min(a.halfX, a.halfZ) / 2
	n := int(math.Ceil(longest / limit))
	if n < 1 {
		return 1
	}
	if n > maxSubsteps {
		return maxSubsteps
	}
	return n
}

func (a *Actor) boundsAt(p mgl64.Vec3) bounds {
	return bounds{
		minX: p.X() - a.halfX, maxX: p.X() + a.halfX,
		minY: p.Y() + a.bottom, maxY: p.Y() + a.top,
		minZ: p.Z() - a.halfZ, maxZ: p.Z() + a.halfZ,
	}
}

func (a *Actor) bounds() bounds {
	return a.boundsAt(a.position)
}

func (a *Actor) syncObject() {
	a.world.place(a.object, a.position.X()-a.halfX, a.position.Z()-a.halfZ)
}

// moveHorizontal moves along X (axis 0) or Z (axis 2).
func (a *Actor) moveHorizontal(axis int, d float64, out *MovementOutput) {
	if math.Abs(d) < tolerance {
		return
	}

	cur := a.bounds()
	target := a.position
	target[axis] += d
	tb := a.boundsAt(target)
	padded := tb.inflate(a.config.Offset)

	var dx, dz float64
	if axis == 0 {
		dx = d
	} else {
		dz = d
	}

	allowed := d
	blocked := false
	lift := 0.0
	var liftBody *Body

	for _, body := range a.world.query(a.object, dx, dz) {
		if !body.overlapsXZ(padded) || body.Min.Y() >= tb.maxY-tolerance {
			continue
		}
		climb := body.SurfaceAt(target.X(), target.Z()) - tb.minY
		if climb <= a.config.Offset+tolerance {
			continue // at or below the feet
		}

		if a.walkable(body, climb, d) || a.canStep(body, axis, climb, target) {
			if climb > lift {
				lift, liftBody = climb, body
			}
			out.addCollision(body)
			continue
		}

		if body.Slope != nil {
			// too steep or too high to walk onto: hold the last valid position
			blocked = true
			allowed = 0
			out.addCollision(body)
			continue
		}
		if !ahead(axis, d, body, cur) {
			continue // already overlapping, let the actor move out
		}
		blocked = true
		allowed = a.contact(axis, d, allowed, body, cur)
		out.addCollision(body)
	}

	if blocked {
		a.position[axis] += allowed
	} else {
		a.position = target
		if liftBody != nil {
			a.position[1] += lift + a.config.Offset
			a.grounded, a.ground = true, liftBody
		}
	}
	a.syncObject()
}

// walkable reports whether a ramp can be walked up by this substep.
func (a *Actor) walkable(body *Body, climb, d float64) bool {
	if body.Slope == nil || body.Slope.Angle > a.config.MaxSlopeClimbAngle+tolerance {
		return false
	}
	return climb <= math.Abs(d)*math.Tan(body.Slope.Angle)+2*a.config.Offset+tolerance
}

func (a *Actor) canStep(body *Body, axis int, climb float64, target mgl64.Vec3) bool {
	step := a.config.Autostep
	if step == nil || body.Slope != nil {
		return false
	}
	if body.Kind == Dynamic && !step.IncludeDynamicBodies {
		return false
	}
	if climb > step.MaxHeight+tolerance || body.extent(axis) < step.MinWidth {
		return false
	}

	raised := target
	raised[1] += climb + a.config.Offset
	rb := a.boundsAt(raised)
	for _, other := range a.world.query(a.object, target.X()-a.position.X(), target.Z()-a.position.Z()) {
		if other == body || !other.overlapsXZ(rb) {
			continue
		}
		if other.SurfaceAt(raised.X(), raised.Z()) > rb.minY+tolerance && other.Min.Y() < rb.maxY-tolerance {
			return false // no head room on the step
		}
	}
	return true
}

func ahead(axis int, d float64, body *Body, cur bounds) bool {
	if d > 0 {
		return body.Min[axis] >= cur.hi(axis)-tolerance
	}
	return body.Max[axis] <= cur.lo(axis)+tolerance
}

// contact narrows allowed so the actor stops Offset short of body.
func (a *Actor) contact(axis int, d, allowed float64, body *Body, cur bounds) float64 {
	if d > 0 {
		gap := body.Min[axis] - cur.hi(axis) - a.config.Offset
		return math.Min(allowed, math.Max(gap, 0))
	}
	gap := body.Max[axis] - cur.lo(axis) + a.config.Offset
	return math.Max(allowed, math.Min(gap, 0))
}

func (a *Actor) moveVertical(dy float64, out *MovementOutput) {
	b := a.bounds()

	if dy > tolerance {
		ceiling := math.Inf(1)
		var hit *Body
		for _, body := range a.world.query(a.object, 0, 0) {
			if !body.overlapsXZ(b) || body.Min.Y() < b.maxY-tolerance {
				continue
			}
			if body.Min.Y() < ceiling {
				ceiling, hit = body.Min.Y(), body
			}
		}
		allowed := math.Min(dy, math.Max(ceiling-a.config.Offset-b.maxY, 0))
		if allowed < dy && hit != nil {
			out.addCollision(hit)
		}
		a.position[1] += allowed
		a.grounded, a.ground = false, nil
		return
	}

	support, body := a.support(b)
	floor := support + a.config.Offset
	bottom := b.minY + dy
	switch {
	case body != nil && bottom <= floor+tolerance:
		a.position[1] += floor - b.minY
		a.grounded, a.ground = true, body
	case body != nil && a.grounded && bottom-floor <= a.config.SnapToGround+tolerance:
		a.position[1] += floor - b.minY
		a.grounded, a.ground = true, body
	default:
		a.position[1] += dy
		a.grounded, a.ground = false, nil
	}
}

// support finds the highest surface under the footprint that is not above the lower
// half of the capsule. Surfaces that rose into the capsule's lower half push it up.
// Walkable ramps hold the actor by their highest point under the footprint, like boxes do,
// so walking off a ledge onto a ramp stays grounded. Steeper ramps are measured under the
// centre and never lift an actor that only brushes their foot.
func (a *Actor) support(b bounds) (float64, *Body) {
	reach := (a.top - a.bottom) / 2
	best := math.Inf(-1)
	var found *Body
	for _, body := range a.world.query(a.object, 0, 0) {
		if !body.overlapsXZ(b) {
			continue
		}
		top := body.SurfaceAt(a.position.X(), a.position.Z())
		if body.Slope == nil || body.Slope.Angle <= a.config.MaxSlopeClimbAngle+tolerance {
			top = body.highestUnder(b)
		}
		if top > b.minY+reach {
			continue
		}
		if top > best {
			best, found = top, body
		}
	}
	return best, found
}

func (a *Actor) findGround(b bounds) (bool, *Body) {
	support, body := a.support(b)
	if body == nil {
		return false, nil
	}
	if b.minY-(support+a.config.Offset) > a.config.SnapToGround+tolerance {
		return false, nil
	}
	return true, body
}

func (a *Actor) onSlideSlope() bool {
	if !a.grounded || a.ground == nil || a.ground.Slope == nil {
		return false
	}
	return a.ground.Slope.Angle > a.config.MinSlopeSlideAngle+tolerance
}

// slide converts a drop the ground absorbed into downhill motion along the slope.
func (a *Actor) slide(drop float64, out *MovementOutput) {
	slope := a.ground.Slope
	run := drop / math.Tan(slope.Angle)
	dir := slope.Rise.Downhill()

	a.moveHorizontal(0, dir.X()*run, out)
	a.moveHorizontal(2, dir.Z()*run, out)
	a.moveVertical(-drop, out)
	out.IsSlidingDownSlope = true
}
