// Command hello draws a line from the last mouse-down position to the
// cursor.
package main

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/powder/engine/colors"
	"github.com/hubastard/powder/engine/core"
	"github.com/hubastard/powder/engine/gfx"
	"github.com/hubastard/powder/engine/platform"
)

func init() {
	runtime.LockOSThread()
}

type state struct {
	lineStart mgl32.Vec2
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	core.SetLogger(logger)

	cfg := core.DefaultConfig()
	cfg.Title = "Example"

	eng, err := core.New(state{}, cfg, platform.Backend())
	if err != nil {
		logger.Error("hello", "err", err)
		os.Exit(1)
	}

	eng.PushFunc(func(c *gfx.Canvas, f *core.Frame, s *state) {
		if f.MouseDown {
			s.lineStart = f.Mouse
		}
		c.SetPaint(colors.White)
		c.SetLineWidth(1)
		c.MoveTo(float64(s.lineStart.X()), float64(s.lineStart.Y()))
		c.LineTo(float64(f.Mouse.X()), float64(f.Mouse.Y()))
		_ = c.Stroke()
	})

	if err := eng.Start(); err != nil {
		logger.Error("hello", "err", err)
		os.Exit(1)
	}
}
