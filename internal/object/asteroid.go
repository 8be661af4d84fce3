package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/asteroids-torus/internal/physics"
)

// Asteroid is a drifting rock that splits in two when hit.
type Asteroid struct {
	Entity
}

// NewAsteroid creates an asteroid of the given size drifting along angle.
func NewAsteroid(pos physics.Vec, angle, size float64) Asteroid {
	return Asteroid{
		Entity: Entity{
			Pos:   pos,
			Angle: angle,
			Speed: AsteroidSpeed,
			Size:  size,
		},
	}
}

// NewAsteroidRandom creates a full-size asteroid at a random position on
// the plane with a random heading.
func NewAsteroidRandom(plane physics.Plane, rng *rand.Rand) Asteroid {
	return NewAsteroid(plane.RandomPoint(rng), RandomHeading(rng), AsteroidStartSize)
}

// ClosestBullet finds the live bullet nearest to the asteroid's surface.
// Distances are measured with the asteroid as receiver, so they subtract the
// asteroid's size: a negative distance means the bullet is inside it.
// Ties keep the bullet fired first. Returns ErrNoCandidates if bullets is empty.
func (a *Asteroid) ClosestBullet(bullets *Arena[Bullet]) (Nearest, error) {
	if bullets.Len() == 0 {
		return Nearest{}, ErrNoCandidates
	}

	var best Nearest
	found := false
	bullets.Each(func(h Handle, b *Bullet) bool {
		d := a.DistanceTo(&b.Entity)
		if !found || d < best.Distance {
			best = Nearest{Distance: d, Handle: h}
			found = true
		}
		return false
	})
	return best, nil
}

// Split returns the two fragments produced when the asteroid is hit.
// Fragments start at the asteroid's position with half its size and
// independent random headings. Asteroids of MinSplitSize or less leave nothing.
func (a *Asteroid) Split(rng *rand.Rand) []Asteroid {
	if a.Size <= MinSplitSize {
		return nil
	}
	half := a.Size / 2
	return []Asteroid{
		NewAsteroid(a.Pos, RandomHeading(rng), half),
		NewAsteroid(a.Pos, RandomHeading(rng), half),
	}
}

// Circle returns the center and radius used to draw the asteroid.
func (a *Asteroid) Circle() (physics.Vec, float64) {
	return a.Pos, a.Size
}

// RandomHeading returns a uniformly distributed angle in [0, 2π).
func RandomHeading(rng *rand.Rand) float64 {
	return rng.Float64() * 2 * math.Pi
}
