package kinematic

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// TagBody marks resolv objects that belong to bodies. Actor objects carry no tag so
// queries never see other actors.
const TagBody = "body"

// resolv works in whole units and trims a unit off every object's far edge when
// bucketing it into cells, so footprints are scaled up and padded by a unit on each side.
const (
	spaceScale   = 16
	spacePadding = 1
)

// World owns the bodies and actors. The resolv space indexes their X/Z footprints
// (world Z maps onto resolv Y) as a broad phase; exact overlap and heights are resolved here.
type World struct {
	space   *resolv.Space
	originX float64
	originZ float64
	bodies  []*Body
	actors  []*Actor
}

// NewWorld covers the rectangle starting at (minX, minZ) with the given width (X) and
// depth (Z). Footprints outside it are not indexed.
func NewWorld(minX, minZ, width, depth float64, cellSize int) *World {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &World{
		space: resolv.NewSpace(
			int(math.Ceil(width*spaceScale)), int(math.Ceil(depth*spaceScale)),
			cellSize*spaceScale, cellSize*spaceScale,
		),
		originX: minX,
		originZ: minZ,
	}
}

// AddBox adds a flat-topped box spanning min..max.
func (w *World) AddBox(min, max mgl64.Vec3, kind BodyKind) *Body {
	return w.addBody(&Body{Kind: kind, Min: min, Max: max})
}

// AddRamp adds a ramp over the footprint min..max whose surface starts at min.Y and rises
// along slope.Rise. The ramp's top height follows from the angle; max.Y is ignored.
func (w *World) AddRamp(min, max mgl64.Vec3, slope Slope, kind BodyKind) *Body {
	run := max.X() - min.X()
	if slope.Rise == AxisPosZ || slope.Rise == AxisNegZ {
		run = max.Z() - min.Z()
	}
	top := min.Y() + run*math.Tan(slope.Angle)
	s := slope
	return w.addBody(&Body{Kind: kind, Min: min, Max: mgl64.Vec3{max.X(), top, max.Z()}, Slope: &s})
}

func (w *World) addBody(b *Body) *Body {
	size := b.Size()
	b.object = w.newObject(size.X(), size.Z(), TagBody)
	b.object.Data = b
	w.place(b.object, b.Min.X(), b.Min.Z())
	b.world = w
	w.space.Add(b.object)
	w.bodies = append(w.bodies, b)
	return b
}

// AddActor validates cfg and places a new actor at position.
func (w *World) AddActor(cfg ActorConfig, position mgl64.Vec3) (*Actor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &Actor{config: cfg, world: w, position: position}
	a.halfX, a.halfZ, a.bottom, a.top = cfg.Shape.extents()
	a.object = w.newObject(2*a.halfX, 2*a.halfZ)
	a.object.Data = a
	w.space.Add(a.object)
	a.syncObject()
	a.grounded, a.ground = a.findGround(a.bounds())
	w.actors = append(w.actors, a)
	return a, nil
}

// Bodies returns the bodies currently in the world.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Actors returns the actors currently in the world.
func (w *World) Actors() []*Actor {
	return w.actors
}

// String summarises the world for debug output.
func (w *World) String() string {
	return fmt.Sprintf("world(%d bodies, %d actors)", len(w.bodies), len(w.actors))
}

func (w *World) syncBody(b *Body) {
	w.place(b.object, b.Min.X(), b.Min.Z())
}

func (w *World) newObject(width, depth float64, tags ...string) *resolv.Object {
	return resolv.NewObject(0, 0, width*spaceScale+2*spacePadding, depth*spaceScale+2*spacePadding, tags...)
}

// place moves obj so its footprint starts at world (x, z).
func (w *World) place(obj *resolv.Object, x, z float64) {
	obj.X = (x-w.originX)*spaceScale - spacePadding
	obj.Y = (z-w.originZ)*spaceScale - spacePadding
	obj.Update()
}

// query returns the bodies whose cells the object would share after moving by dx/dz
// world units. It is a superset; callers test exact overlap.
func (w *World) query(obj *resolv.Object, dx, dz float64) []*Body {
	check := obj.Check(dx*spaceScale, dz*spaceScale, TagBody)
	if check == nil {
		return nil
	}
	found := make([]*Body, 0, len(check.Objects))
	for _, o := range check.Objects {
		if b, ok := o.Data.(*Body); ok {
			found = append(found, b)
		}
	}
	return found
}
