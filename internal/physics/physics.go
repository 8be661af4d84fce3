// Package physics provides vector math and distance utilities for the plane.
package physics

import "math"

// Vec is a 2D point or displacement on the plane.
type Vec struct {
	X, Y float64
}

// Add returns the sum of two vectors.
func (v Vec) Add(other Vec) Vec {
	return Vec{X: v.X + other.X, Y: v.Y + other.Y}
}

// Scale multiplies the vector by a scalar.
func (v Vec) Scale(factor float64) Vec {
	return Vec{X: v.X * factor, Y: v.Y * factor}
}

// DistanceTo returns the Euclidean distance between two points.
func (v Vec) DistanceTo(other Vec) float64 {
	return Distance(v.X, v.Y, other.X, other.Y)
}

// Heading returns the unit vector for angle.
// Angle 0 points along +Y and angles grow toward +X, so the
// displacement for speed s is (sin(angle)*s, cos(angle)*s).
func Heading(angle float64) Vec {
	return Vec{X: math.Sin(angle), Y: math.Cos(angle)}
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}
