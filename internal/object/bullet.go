package object

import "github.com/tomz197/asteroids-torus/internal/physics"

// Bullet is a projectile fired by the ship.
type Bullet struct {
	Entity
	Lifetime float64 // Ticks remaining
}

// NewBullet creates a bullet at pos traveling along angle. Its speed is
// fixed and does not depend on the shooter's speed.
func NewBullet(pos physics.Vec, angle float64) Bullet {
	return Bullet{
		Entity: Entity{
			Pos:   pos,
			Angle: angle,
			Speed: BulletSpeed,
			Size:  DefaultSize,
		},
		Lifetime: BulletLifetime,
	}
}

// Tick moves the bullet and counts down its lifetime by one.
func (b *Bullet) Tick(plane physics.Plane) {
	b.MoveBySpeed(plane)
	b.Lifetime--
}

// Expired reports whether the lifetime has run out.
func (b *Bullet) Expired() bool {
	return b.Lifetime <= 0
}

// Segment returns the short line drawn for the bullet. Hits are tested
// against the start point only.
func (b *Bullet) Segment() (start, end physics.Vec) {
	return b.Pos, b.Pos.Add(physics.Heading(b.Angle).Scale(BulletLength))
}
