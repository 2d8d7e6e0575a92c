package main

import (
	"fmt"

	"github.com/hubastard/powder/engine/colors"
	"github.com/hubastard/powder/engine/core"
	"github.com/hubastard/powder/engine/gfx"
	"github.com/hubastard/powder/engine/profiler"
)

// debugLayer draws frame statistics in the top-right corner. F3 toggles it,
// Ctrl+P writes a speedscope profile (profile builds only).
type debugLayer struct {
	lines []string
}

func (*debugLayer) Name() string { return "debug" }

func (l *debugLayer) Render(c *gfx.Canvas, f *core.Frame, s *SandboxState) {
	if f.KeyPressed(core.KeyF3) {
		s.ShowDebug = !s.ShowDebug
	}
	if wantsDump(f) {
		if path, err := profiler.Dump(); err == nil {
			core.Logger().Info("speedscope dump", "path", path)
		} else {
			core.Logger().Warn("profiler dump", "err", err)
		}
	}
	if !s.ShowDebug {
		return
	}
	l.lines = appendDebugLines(l.lines[:0], f)

	const (
		width   = 260
		lineH   = 20
		padding = 12
	)
	x := float64(f.Width) - width - padding
	y := float64(padding)

	c.SetPaint(colors.Black.WithAlpha(0.5))
	c.DrawRectangle(x, y, width, float64(len(l.lines)*lineH+padding))
	_ = c.Fill()

	face := s.Font.Face(14 * c.ScaleFactor())
	c.SetPaint(colors.Yellow)
	for i, line := range l.lines {
		c.DrawText(face, line, x+padding, y+padding/2+float64(i*lineH), 0, 1)
		if i == 0 {
			c.SetPaint(colors.White)
		}
	}
}

// wantsDump reports Ctrl+P in a profile build.
func wantsDump(f *core.Frame) bool {
	if !profiler.Enabled || !f.KeyPressed(core.KeyP) {
		return false
	}
	return f.KeyHeld(core.KeyLeftCtrl) || f.KeyHeld(core.KeyRightCtrl)
}

func appendDebugLines(lines []string, f *core.Frame) []string {
	ms := float64(f.DeltaTime.Microseconds()) / 1000
	return append(lines,
		fmt.Sprintf("Frame: %d", f.Index),
		fmt.Sprintf("%d FPS (%.2f ms)", f.FPS, ms),
		fmt.Sprintf("Mouse: %.0f, %.0f", f.Mouse.X(), f.Mouse.Y()),
		fmt.Sprintf("Keys: %v", f.KeysHeld.Keys()),
		fmt.Sprintf("Memory: %.3f MB", float64(profiler.MemoryUsage())/(1<<20)),
		fmt.Sprintf("Allocs: %d", profiler.MemoryAllocs()),
		fmt.Sprintf("Goroutines: %d", profiler.NumGoroutine()),
		fmt.Sprintf("CPU Count: %d", profiler.NumCPU()),
	)
}
