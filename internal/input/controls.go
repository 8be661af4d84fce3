// Package input turns raw terminal bytes into per-frame ship controls.
package input

// Controls is the control state for one simulation tick.
// Left, Right and Thrust are held states; Fire is true only on the
// frame the fire key went down.
type Controls struct {
	Left   bool
	Right  bool
	Thrust bool
	Fire   bool
}

// Edge detects rising edges of a held key.
type Edge struct {
	prev bool
}

// Rise reports whether held switched from false to true since the last call.
func (e *Edge) Rise(held bool) bool {
	rose := held && !e.prev
	e.prev = held
	return rose
}

// Controls maps the held keys to ship controls. fire tracks the space key
// across frames so holding it fires once.
func (in Input) Controls(fire *Edge) Controls {
	return Controls{
		Left:   in.Left,
		Right:  in.Right,
		Thrust: in.Up,
		Fire:   fire.Rise(in.Space),
	}
}
