package loop

import (
	"fmt"

	"github.com/tomz197/asteroids-torus/internal/draw"
	"github.com/tomz197/asteroids-torus/internal/loop/config"
	"github.com/tomz197/asteroids-torus/internal/world"
)

const controlsHint = "a/d turn  w thrust  space fire  q quit"

// drawHUD writes the text overlay after the canvas so it sits on top.
func (g *game) drawHUD(f world.Frame) error {
	labels := []draw.Text{
		{X: 2, Y: 1, Value: fmt.Sprintf("Asteroids: %-3d Bullets: %-3d", len(f.Asteroids), len(f.Bullets))},
	}

	// Controls hint (top right), dropped when it would overlap the counts
	if x := g.cols - len(controlsHint); x > len(labels[0].Value)+3 {
		labels = append(labels, draw.Text{X: x, Y: 1, Value: controlsHint})
	}

	if f.TooClose {
		col, row := g.canvas.LogicalToTerminal(config.WarningSquareSize+2, 0)
		labels = append(labels, draw.Text{X: col, Y: row, Value: "TOO CLOSE"})
	}

	for _, l := range labels {
		if err := l.Draw(g.cw); err != nil {
			return err
		}
	}
	return nil
}
