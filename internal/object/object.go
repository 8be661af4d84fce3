// Package object holds the entities that live on the plane: the ship, its
// bullets and the asteroids, plus the nearest-object queries used for hit
// detection.
package object

import (
	"errors"

	"github.com/tomz197/asteroids-torus/internal/input"
)

// Controls is an alias for the input package's per-tick control state.
type Controls = input.Controls

// Entity tuning. Speeds are plane units per tick.
const (
	DefaultSize = 10.0 // Size of an entity constructed without one (the ship)
	MaxSpeed    = 5.0  // Upper clamp applied by AddSpeed
)

// Ship
const (
	ShipRotationRate = 3.0 // Radians per second of held rotate input
	ShipThrustStep   = 0.1 // Speed gained (or lost) per tick
	ShipFlareOffset  = 4.0 // Distance of the engine flare behind the ship
)

// Bullets
const (
	BulletSpeed    = 10.0
	BulletLifetime = 100 // Ticks
	BulletLength   = 5.0 // Length of the rendered segment
)

// Asteroids
const (
	AsteroidStartSize = 40.0
	AsteroidSpeed     = 3.0
	MinSplitSize      = 10.0 // Asteroids larger than this split in two when hit
)

// ErrNoCandidates is returned by the closest-object queries when the
// collection they scan is empty.
var ErrNoCandidates = errors.New("object: no candidates to measure against")

// Nearest is the result of a closest-object query. Distance is signed:
// a negative value means the objects overlap.
type Nearest struct {
	Distance float64
	Handle   Handle
}
