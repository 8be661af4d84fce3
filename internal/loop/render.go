package loop

import (
	"github.com/tomz197/asteroids-torus/internal/draw"
	"github.com/tomz197/asteroids-torus/internal/loop/config"
	"github.com/tomz197/asteroids-torus/internal/physics"
	"github.com/tomz197/asteroids-torus/internal/world"
)

// wrapOffsets holds up to 4 translations at which a shape near the plane
// edges must be drawn so it shows on both sides of the seam.
// Using a fixed array avoids allocations in the hot rendering path.
type wrapOffsets struct {
	offsets [4]physics.Vec
	count   int
}

// wrapCopies returns the translations under which a shape centered at p and
// reaching margin units from it overlaps the plane. margin must be below
// half the plane size.
func wrapCopies(p physics.Vec, margin float64, plane physics.Plane) wrapOffsets {
	var result wrapOffsets
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			off := physics.Vec{X: float64(dx) * plane.Width, Y: float64(dy) * plane.Height}
			x, y := p.X+off.X, p.Y+off.Y
			if x+margin < 0 || x-margin > plane.Width || y+margin < 0 || y-margin > plane.Height {
				continue
			}
			if result.count < len(result.offsets) {
				result.offsets[result.count] = off
				result.count++
			}
		}
	}
	return result
}

func toPoint(v physics.Vec) draw.Point {
	return draw.Point{X: v.X, Y: v.Y}
}

// drawFrame clears the screen and draws the world and HUD.
func (g *game) drawFrame() error {
	f := g.world.Frame()

	draw.ClearScreen(g.cw)
	g.canvas.Clear()
	drawWorld(g.canvas, f)

	if err := g.canvas.Render(g.cw); err != nil {
		return err
	}
	if err := g.canvas.RenderBorder(g.cw); err != nil {
		return err
	}
	if err := g.drawHUD(f); err != nil {
		return err
	}
	return g.cw.Flush()
}

// drawWorld draws a frame onto the canvas in plane coordinates.
func drawWorld(c *draw.Canvas, f world.Frame) {
	for _, a := range f.Asteroids {
		copies := wrapCopies(a.Center, a.Radius, f.Plane)
		for i := 0; i < copies.count; i++ {
			c.DrawCircle(toPoint(a.Center.Add(copies.offsets[i])), a.Radius)
		}
	}

	for _, b := range f.Bullets {
		margin := b[0].DistanceTo(b[1])
		copies := wrapCopies(b[0], margin, f.Plane)
		for i := 0; i < copies.count; i++ {
			off := copies.offsets[i]
			c.DrawLine(toPoint(b[0].Add(off)), toPoint(b[1].Add(off)))
		}
	}

	hull := make([]draw.Point, len(f.Hull))
	margin := 0.0
	for _, v := range f.Hull {
		margin = max(margin, f.Ship.DistanceTo(v))
	}
	copies := wrapCopies(f.Ship, margin, f.Plane)
	for i := 0; i < copies.count; i++ {
		off := copies.offsets[i]
		for j, v := range f.Hull {
			hull[j] = toPoint(v.Add(off))
		}
		c.DrawPolygon(hull)
		if f.Thrusting {
			c.DrawCircle(toPoint(f.Flare.Add(off)), config.FlareRadius)
		}
	}

	if f.TooClose {
		c.FillRect(0, 0, config.WarningSquareSize, config.WarningSquareSize)
	}
}
