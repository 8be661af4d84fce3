// Package world owns every entity on the plane and advances the simulation
// one tick at a time.
//
// A World is not safe for concurrent use. The host loop that created it is
// its only caller.
package world

import (
	"math/rand"
	"time"

	"github.com/tomz197/asteroids-torus/internal/object"
	"github.com/tomz197/asteroids-torus/internal/physics"
)

// Controls is the per-tick ship control state.
type Controls = object.Controls

// FirstAsteroidPos is where the opening asteroid appears.
var FirstAsteroidPos = physics.Vec{X: 50, Y: 50}

// World holds the ship, the bullet queue and the asteroid population.
type World struct {
	plane     physics.Plane
	rng       *rand.Rand
	ship      object.Ship
	bullets   object.Arena[object.Bullet]   // FIFO, oldest first
	asteroids object.Arena[object.Asteroid] // Iterated in spawn order
	spawner   *object.AsteroidSpawner
}

// Option configures a World.
type Option func(*World)

// WithPlane sets the plane the world wraps around and spawns on.
func WithPlane(p physics.Plane) Option {
	return func(w *World) {
		w.plane = p
	}
}

// WithRand sets the random source for headings and spawn positions.
func WithRand(rng *rand.Rand) Option {
	return func(w *World) {
		w.rng = rng
	}
}

// WithSeed seeds the random source, making the world deterministic for a
// fixed sequence of controls.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithRefillThreshold sets the population at or below which a fresh asteroid spawns.
func WithRefillThreshold(n int) Option {
	return func(w *World) {
		w.spawner = object.NewAsteroidSpawner(n)
	}
}

// New creates a world with the ship resting at the plane center and a single
// full-size asteroid at FirstAsteroidPos.
func New(opts ...Option) *World {
	w := &World{
		plane:   physics.DefaultPlane(),
		spawner: object.NewAsteroidSpawner(object.DefaultRefillThreshold),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		w.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	w.ship = object.NewShip(w.plane.Center())
	w.asteroids.Insert(object.NewAsteroid(FirstAsteroidPos, object.RandomHeading(w.rng), object.AsteroidStartSize))
	return w
}

// Plane returns the plane the world runs on.
func (w *World) Plane() physics.Plane {
	return w.plane
}

// Ship returns a copy of the ship.
func (w *World) Ship() object.Ship {
	return w.ship
}

// Bullets returns the number of live bullets.
func (w *World) Bullets() int {
	return w.bullets.Len()
}

// Asteroids returns the number of live asteroids.
func (w *World) Asteroids() int {
	return w.asteroids.Len()
}

// TooClose reports whether the ship's center is inside an asteroid.
func (w *World) TooClose() bool {
	near, err := w.ship.ClosestAsteroid(&w.asteroids)
	if err != nil {
		// The refill policy keeps at least one asteroid alive after every tick.
		return false
	}
	return near.Distance < 0
}
