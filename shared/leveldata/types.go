// Package leveldata parses TMX arena maps into plain level data. Tiled's 2D plane is the
// ground plane: map X is world X and map Y is world Z. Heights come from object properties.
// It has no dependencies on ebitengine, donburi, or the physics world.
package leveldata

// Level holds everything the arena scene builds from a TMX file.
type Level struct {
	Name   string
	Width  float64 // world units along X
	Depth  float64 // world units along Z
	Boxes  []Box
	Spawns []SpawnPoint
}

// Box is a solid block, ramp or moving platform. X/Z is the footprint's minimum corner.
type Box struct {
	Name         string
	X, Z         float64
	Width, Depth float64
	Elevation    float64 // bottom of the box
	Height       float64 // ignored for ramps, whose top follows from Slope

	Slope float64 // degrees, 0 for a flat top
	Rise  string  // "+x", "-x", "+z" or "-z"

	Moving   bool
	Travel   float64 // vertical travel of a moving platform
	Duration float64 // seconds for one leg of the travel
}

// IsRamp reports whether the box has a sloped top.
func (b Box) IsRamp() bool {
	return b.Slope > 0
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Z      float64
	Elevation float64
	Character string
	Index     int
}
