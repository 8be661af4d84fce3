package object

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tomz197/asteroids-torus/internal/physics"
)

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func TestEntityMoveBySpeed(t *testing.T) {
	plane := physics.DefaultPlane()
	e := Entity{Pos: physics.Vec{X: 100, Y: 100}, Angle: math.Pi / 2, Speed: 4}

	e.MoveBySpeed(plane)

	if abs(e.Pos.X-104) > 1e-9 || abs(e.Pos.Y-100) > 1e-9 {
		t.Errorf("expected (104,100), got (%f,%f)", e.Pos.X, e.Pos.Y)
	}
}

func TestEntityMoveBySpeedWraps(t *testing.T) {
	plane := physics.DefaultPlane()

	tests := []struct {
		name     string
		start    physics.Vec
		angle    float64
		expected physics.Vec
	}{
		{name: "past_bottom", start: physics.Vec{X: 10, Y: 398}, angle: 0, expected: physics.Vec{X: 10, Y: 3}},
		{name: "past_top", start: physics.Vec{X: 10, Y: 2}, angle: math.Pi, expected: physics.Vec{X: 10, Y: 397}},
		{name: "past_left", start: physics.Vec{X: 1, Y: 10}, angle: -math.Pi / 2, expected: physics.Vec{X: 396, Y: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entity{Pos: tt.start, Angle: tt.angle, Speed: 5}
			e.MoveBySpeed(plane)
			if abs(e.Pos.X-tt.expected.X) > 1e-9 || abs(e.Pos.Y-tt.expected.Y) > 1e-9 {
				t.Errorf("expected %+v, got %+v", tt.expected, e.Pos)
			}
		})
	}
}

func TestEntityStaysOnPlane(t *testing.T) {
	plane := physics.DefaultPlane()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		e := Entity{
			Pos:   plane.RandomPoint(rng),
			Angle: (rng.Float64() - 0.5) * 100,
			Speed: rng.Float64() * MaxSpeed,
		}
		for tick := 0; tick < 500; tick++ {
			e.MoveBySpeed(plane)
			if !plane.Contains(e.Pos) {
				t.Fatalf("entity left the plane at tick %d: %+v", tick, e.Pos)
			}
		}
	}
}

func TestEntityAddSpeedClamps(t *testing.T) {
	var e Entity
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		e.AddSpeed((rng.Float64() - 0.5) * 4)
		if e.Speed < 0 || e.Speed > MaxSpeed {
			t.Fatalf("speed %f escaped [0, %f]", e.Speed, MaxSpeed)
		}
	}

	e.AddSpeed(100)
	if e.Speed != MaxSpeed {
		t.Errorf("expected speed clamped to %f, got %f", MaxSpeed, e.Speed)
	}
	e.AddSpeed(-100)
	if e.Speed != 0 {
		t.Errorf("expected speed clamped to 0, got %f", e.Speed)
	}
}

func TestEntityRotateByAccumulates(t *testing.T) {
	var e Entity
	for i := 0; i < 10; i++ {
		e.RotateBy(math.Pi)
	}
	if abs(e.Angle-10*math.Pi) > 1e-9 {
		t.Errorf("expected unbounded angle %f, got %f", 10*math.Pi, e.Angle)
	}
}

func TestEntityDistanceToIsOneSided(t *testing.T) {
	a := Entity{Pos: physics.Vec{X: 0, Y: 0}, Size: 40}
	b := Entity{Pos: physics.Vec{X: 30, Y: 40}, Size: 10}

	if got := a.DistanceTo(&b); abs(got-10) > 1e-9 {
		t.Errorf("a.DistanceTo(b) = %f, expected 50-40=10", got)
	}
	if got := b.DistanceTo(&a); abs(got-40) > 1e-9 {
		t.Errorf("b.DistanceTo(a) = %f, expected 50-10=40", got)
	}
}

func TestNewEntityDefaults(t *testing.T) {
	e := NewEntity(physics.Vec{X: 1, Y: 2})
	if e.Size != DefaultSize || e.Speed != 0 || e.Angle != 0 {
		t.Errorf("unexpected defaults: %+v", e)
	}
}
