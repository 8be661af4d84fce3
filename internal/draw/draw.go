// Package draw renders shapes to an ANSI terminal using half-block characters.
package draw

// Point represents a 2D coordinate in logical (plane) units.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
