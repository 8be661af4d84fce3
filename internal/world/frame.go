package world

import (
	"github.com/tomz197/asteroids-torus/internal/object"
	"github.com/tomz197/asteroids-torus/internal/physics"
)

// Circle is a center and radius.
type Circle struct {
	Center physics.Vec
	Radius float64
}

// Segment is a line between two points.
type Segment [2]physics.Vec

// Frame is everything a renderer needs to draw one tick. It shares no
// memory with the world and stays valid after later ticks.
type Frame struct {
	Plane     physics.Plane
	Ship      physics.Vec // Ship center
	Hull      [3]physics.Vec
	Flare     physics.Vec // Only meaningful when Thrusting
	Thrusting bool
	TooClose  bool
	Bullets   []Segment
	Asteroids []Circle
}

// Frame captures the current state for rendering.
func (w *World) Frame() Frame {
	f := Frame{
		Plane:     w.plane,
		Ship:      w.ship.Pos,
		Hull:      w.ship.Hull(),
		TooClose:  w.TooClose(),
		Bullets:   make([]Segment, 0, w.bullets.Len()),
		Asteroids: make([]Circle, 0, w.asteroids.Len()),
	}
	f.Flare, f.Thrusting = w.ship.Flare()

	w.bullets.Each(func(_ object.Handle, b *object.Bullet) bool {
		start, end := b.Segment()
		f.Bullets = append(f.Bullets, Segment{start, end})
		return false
	})
	w.asteroids.Each(func(_ object.Handle, a *object.Asteroid) bool {
		center, radius := a.Circle()
		f.Asteroids = append(f.Asteroids, Circle{Center: center, Radius: radius})
		return false
	})
	return f
}
