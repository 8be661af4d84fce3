package object

import (
	"math"

	"github.com/tomz197/asteroids-torus/internal/physics"
)

// Ship is the player-controlled spaceship.
type Ship struct {
	Entity
	Moving bool // Thrust held this tick
}

// NewShip creates a resting ship at pos.
func NewShip(pos physics.Vec) Ship {
	return Ship{Entity: NewEntity(pos)}
}

// Steer applies one tick of controls. Rotation is scaled by elapsed
// seconds; thrust speeds the ship up while held and slows it down otherwise.
func (s *Ship) Steer(c Controls, elapsed float64) {
	if c.Left {
		s.RotateBy(elapsed * ShipRotationRate)
	}
	if c.Right {
		s.RotateBy(-elapsed * ShipRotationRate)
	}

	s.Moving = c.Thrust
	if s.Moving {
		s.AddSpeed(ShipThrustStep)
	} else {
		s.AddSpeed(-ShipThrustStep)
	}
}

// Fire queues a bullet at the ship's position and heading.
func (s *Ship) Fire(bullets *Arena[Bullet]) Handle {
	return bullets.Insert(NewBullet(s.Pos, s.Angle))
}

// ClosestAsteroid finds the asteroid whose surface is nearest to the ship's
// center. The distance subtracts the asteroid's size, not the ship's, so a
// negative result means the ship's center is inside the asteroid; a hull
// already touching it still measures up to the ship's size (10) above zero.
// Ties keep the asteroid inserted first. Returns ErrNoCandidates if
// asteroids is empty.
func (s *Ship) ClosestAsteroid(asteroids *Arena[Asteroid]) (Nearest, error) {
	if asteroids.Len() == 0 {
		return Nearest{}, ErrNoCandidates
	}

	var best Nearest
	found := false
	asteroids.Each(func(h Handle, a *Asteroid) bool {
		d := s.Pos.DistanceTo(a.Pos) - a.Size
		if !found || d < best.Distance {
			best = Nearest{Distance: d, Handle: h}
			found = true
		}
		return false
	})
	return best, nil
}

// Hull returns the triangle drawn for the ship: the nose at full size
// along the heading and two wings at half size, a third of a turn either side.
func (s *Ship) Hull() [3]physics.Vec {
	return [3]physics.Vec{
		s.Pos.Add(physics.Heading(s.Angle).Scale(s.Size)),
		s.Pos.Add(physics.Heading(s.Angle + 2*math.Pi/3).Scale(s.Size / 2)),
		s.Pos.Add(physics.Heading(s.Angle + 4*math.Pi/3).Scale(s.Size / 2)),
	}
}

// Flare returns the engine flare point behind the ship. ok is false when
// the ship is not thrusting.
func (s *Ship) Flare() (p physics.Vec, ok bool) {
	if !s.Moving {
		return physics.Vec{}, false
	}
	return s.Pos.Add(physics.Heading(s.Angle + math.Pi).Scale(ShipFlareOffset)), true
}
