package physics

import (
	"math"
	"math/rand"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec
		expected float64
	}{
		{name: "same_point", a: Vec{X: 5, Y: 5}, b: Vec{X: 5, Y: 5}, expected: 0},
		{name: "horizontal", a: Vec{X: 0, Y: 0}, b: Vec{X: 10, Y: 0}, expected: 10},
		{name: "pythagorean", a: Vec{X: 0, Y: 0}, b: Vec{X: 3, Y: 4}, expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.DistanceTo(tt.b); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("DistanceTo() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestHeading(t *testing.T) {
	h := Heading(0)
	if math.Abs(h.X) > 1e-9 || math.Abs(h.Y-1) > 1e-9 {
		t.Errorf("Heading(0) = %+v, expected (0,1)", h)
	}

	h = Heading(math.Pi / 2)
	if math.Abs(h.X-1) > 1e-9 || math.Abs(h.Y) > 1e-9 {
		t.Errorf("Heading(pi/2) = %+v, expected (1,0)", h)
	}
}

func TestPlaneWrap(t *testing.T) {
	p := DefaultPlane()

	tests := []struct {
		name     string
		in       Vec
		expected Vec
	}{
		{name: "inside", in: Vec{X: 10, Y: 390}, expected: Vec{X: 10, Y: 390}},
		{name: "past_right", in: Vec{X: 403, Y: 20}, expected: Vec{X: 3, Y: 20}},
		{name: "past_bottom", in: Vec{X: 20, Y: 400}, expected: Vec{X: 20, Y: 0}},
		{name: "negative", in: Vec{X: -4, Y: -0.5}, expected: Vec{X: 396, Y: 399.5}},
		{name: "tiny_negative", in: Vec{X: -1e-17, Y: 0}, expected: Vec{X: 0, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Wrap(tt.in)
			if math.Abs(got.X-tt.expected.X) > 1e-9 || math.Abs(got.Y-tt.expected.Y) > 1e-9 {
				t.Errorf("Wrap(%+v) = %+v, expected %+v", tt.in, got, tt.expected)
			}
			if !p.Contains(got) {
				t.Errorf("Wrap(%+v) = %+v is outside the plane", tt.in, got)
			}
		})
	}
}

func TestPlaneRandomPointInside(t *testing.T) {
	p := Plane{Width: 120, Height: 80}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		if pt := p.RandomPoint(rng); !p.Contains(pt) {
			t.Fatalf("RandomPoint() = %+v is outside %+v", pt, p)
		}
	}
}

func TestPlaneCenter(t *testing.T) {
	c := DefaultPlane().Center()
	if c.X != 200 || c.Y != 200 {
		t.Errorf("Center() = %+v, expected (200,200)", c)
	}
}
