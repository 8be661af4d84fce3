package physics

import (
	"math"
	"math/rand"
)

// Plane dimensions used when nothing else is configured.
const (
	DefaultPlaneWidth  = 400
	DefaultPlaneHeight = 400
)

// Plane is the toroidal playing field. Positions leaving one edge
// reappear on the opposite edge.
type Plane struct {
	Width  float64
	Height float64
}

// DefaultPlane returns the 400x400 plane.
func DefaultPlane() Plane {
	return Plane{Width: DefaultPlaneWidth, Height: DefaultPlaneHeight}
}

// Center returns the middle of the plane.
func (p Plane) Center() Vec {
	return Vec{X: p.Width / 2, Y: p.Height / 2}
}

// Wrap folds v back into [0, Width) x [0, Height).
//
// A negative remainder is corrected by adding the size once. Callers move
// by at most a few units per tick, far less than the plane size, so one
// correction is always enough.
func (p Plane) Wrap(v Vec) Vec {
	return Vec{X: wrapAxis(v.X, p.Width), Y: wrapAxis(v.Y, p.Height)}
}

// Contains reports whether v lies inside the half-open plane bounds.
func (p Plane) Contains(v Vec) bool {
	return v.X >= 0 && v.X < p.Width && v.Y >= 0 && v.Y < p.Height
}

// RandomPoint returns a uniformly distributed point on the plane.
func (p Plane) RandomPoint(rng *rand.Rand) Vec {
	return Vec{X: rng.Float64() * p.Width, Y: rng.Float64() * p.Height}
}

func wrapAxis(x, size float64) float64 {
	if size <= 0 {
		return x
	}
	x = math.Mod(x, size)
	if x < 0 {
		x += size
	}
	// -1e-17 + 400 rounds to 400.
	if x >= size {
		x = 0
	}
	return x
}
