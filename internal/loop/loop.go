// Package loop runs one interactive game: it reads keys, ticks a world and
// draws it to an ANSI terminal until the player quits or the input closes.
package loop

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroids-torus/internal/draw"
	"github.com/tomz197/asteroids-torus/internal/input"
	"github.com/tomz197/asteroids-torus/internal/loop/config"
	"github.com/tomz197/asteroids-torus/internal/world"
)

// Options configures a game.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of os.Stdout
	Logger       *log.Logger       // Defaults to discarding everything
	Seed         int64             // 0 picks a seed from the clock
	FPS          int               // Defaults to config.TargetFPS
}

// game is the state of one running session.
type game struct {
	world    *world.World
	stream   *input.Stream
	fire     input.Edge
	canvas   *draw.Canvas
	cw       *draw.ChunkWriter
	termSize draw.TermSizeFunc
	logger   *log.Logger

	cols, rows int // Last terminal size seen
}

// Run plays a game reading keys from r and drawing to w. It returns nil
// when the player quits, r reaches EOF or ctx is done, and an error only
// when writing to w fails.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	g := newGame(r, w, opts)
	defer g.stream.Close()

	frameTime := config.TargetFrameTime
	if opts.FPS > 0 {
		frameTime = time.Second / time.Duration(opts.FPS)
	}

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	lastTime := time.Now().Add(-frameTime)

	for {
		frameStart := time.Now()
		delta := min(frameStart.Sub(lastTime), config.MaxFrameDelta)
		lastTime = frameStart

		select {
		case <-ctx.Done():
			g.logger.Info("game interrupted", "reason", ctx.Err())
			return nil
		default:
		}

		// ===== INPUT PHASE =====
		inp := input.ReadInput(g.stream)
		if inp.Quit || inp.Closed {
			g.logger.Info("game over", "quit", inp.Quit, "closed", inp.Closed, "asteroids", g.world.Asteroids())
			draw.ClearScreen(w)
			return nil
		}

		// ===== UPDATE PHASE =====
		ev := g.world.Tick(delta.Seconds(), inp.Controls(&g.fire))
		if !ev.Empty() {
			g.logger.Debug("tick",
				"fired", ev.Fired,
				"expired", ev.Expired,
				"hits", ev.Hits,
				"splits", ev.Splits,
				"refills", ev.Refills,
				"asteroids", g.world.Asteroids(),
				"bullets", g.world.Bullets(),
			)
		}

		// ===== DRAW PHASE =====
		g.updateScreen()
		if err := g.drawFrame(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < frameTime {
			select {
			case <-ctx.Done():
			case <-time.After(frameTime - elapsed):
			}
		}
	}
}

func newGame(r io.Reader, w io.Writer, opts Options) *game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	termSize := opts.TermSizeFunc
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	wd := world.New(world.WithSeed(seed))
	plane := wd.Plane()
	logger.Info("game started", "seed", seed, "width", plane.Width, "height", plane.Height)

	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	g := &game{
		world:    wd,
		stream:   input.StartStream(br),
		canvas:   draw.NewScaledCanvas(config.MinCanvasSide, config.MinCanvasSide/2, plane.Width, plane.Height),
		cw:       draw.NewChunkWriter(w),
		termSize: termSize,
		logger:   logger,
	}
	g.updateScreen()
	return g
}

// updateScreen refits the canvas when the terminal size changes. A failing
// size query keeps the previous layout.
func (g *game) updateScreen() {
	cols, rows, err := g.termSize()
	if err != nil || (cols == g.cols && rows == g.rows) {
		return
	}
	g.cols, g.rows = cols, rows

	side, offsetCol, offsetRow := fitCanvas(cols, rows)
	g.canvas.Resize(side, side/2)
	g.canvas.SetOffset(offsetCol, offsetRow)
}

// fitCanvas picks the largest square playfield that fits below the HUD with
// a one cell border, and the 0-based offsets that center it. A terminal
// cell is two pixels tall, so a square of side columns spans side/2 rows.
func fitCanvas(cols, rows int) (side, offsetCol, offsetRow int) {
	avail := rows - config.HUDRows
	side = min(cols-2, (avail-2)*2)
	side = max(side-side%2, config.MinCanvasSide)

	offsetCol = max((cols-side)/2, 0)
	offsetRow = config.HUDRows + max((avail-side/2)/2, 0)
	return side, offsetCol, offsetRow
}
