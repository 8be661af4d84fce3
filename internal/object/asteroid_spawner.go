package object

import (
	"math/rand"

	"github.com/tomz197/asteroids-torus/internal/physics"
)

// DefaultRefillThreshold is the population at or below which a new asteroid spawns.
const DefaultRefillThreshold = 3

// AsteroidSpawner keeps the asteroid population from running dry.
type AsteroidSpawner struct {
	threshold int
}

// NewAsteroidSpawner creates a spawner that refills at or below threshold.
func NewAsteroidSpawner(threshold int) *AsteroidSpawner {
	if threshold < 0 {
		threshold = 0
	}
	return &AsteroidSpawner{
		threshold: threshold,
	}
}

// Top spawns at most one full-size asteroid at a random position when the
// population is at or below the threshold. It returns the new handle and
// whether anything was spawned.
func (s *AsteroidSpawner) Top(asteroids *Arena[Asteroid], plane physics.Plane, rng *rand.Rand) (Handle, bool) {
	if asteroids.Len() > s.threshold {
		return Handle{}, false
	}
	return asteroids.Insert(NewAsteroidRandom(plane, rng)), true
}
