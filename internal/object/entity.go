package object

import "github.com/tomz197/asteroids-torus/internal/physics"

// Entity is the physical state shared by every object on the plane.
type Entity struct {
	Pos   physics.Vec // Center, kept inside the plane by MoveBySpeed
	Angle float64     // Heading in radians, accumulates without bound
	Speed float64     // Units per tick, within [0, MaxSpeed] when changed through AddSpeed
	Size  float64     // Radius, used for drawing and as the hit threshold
}

// NewEntity creates a resting entity of DefaultSize at pos.
func NewEntity(pos physics.Vec) Entity {
	return Entity{Pos: pos, Size: DefaultSize}
}

// MoveBySpeed advances the entity along its heading and wraps it onto the plane.
func (e *Entity) MoveBySpeed(plane physics.Plane) {
	e.Pos = plane.Wrap(e.Pos.Add(physics.Heading(e.Angle).Scale(e.Speed)))
}

// AddSpeed changes the speed by delta, clamped to [0, MaxSpeed].
func (e *Entity) AddSpeed(delta float64) {
	e.Speed = min(max(e.Speed+delta, 0), MaxSpeed)
}

// RotateBy turns the entity by delta radians.
func (e *Entity) RotateBy(delta float64) {
	e.Angle += delta
}

// DistanceTo returns the distance between the two centers minus the
// receiver's own size. The other entity's size is ignored.
func (e *Entity) DistanceTo(other *Entity) float64 {
	return e.Pos.DistanceTo(other.Pos) - e.Size
}
