package draw

import (
	"fmt"
	"io"
)

// Text is a simple drawable text label.
// Coordinates are 1-based terminal positions.
type Text struct {
	X     int
	Y     int
	Value string
}

// Draw writes the text at its position using ANSI cursor movement.
func (t Text) Draw(w io.Writer) error {
	if t.Value == "" {
		return nil
	}
	x := max(t.X, 1)
	y := max(t.Y, 1)
	if _, err := fmt.Fprintf(w, "\033[%d;%dH%s", y, x, t.Value); err != nil {
		return err
	}
	return nil
}
