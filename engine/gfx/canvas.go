// Package gfx holds the drawing surface handed to render layers.
//
// A Canvas is a gg software context sized to the window framebuffer. Layers
// draw into it with the gg API (paths, paint, text); Flush hands the pixels to
// a Presenter which puts them on screen.
package gfx

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/hubastard/powder/engine/colors"
)

// Presenter uploads a finished frame to the screen.
type Presenter interface {
	// Present receives tightly packed RGBA8 rows, top-left origin.
	Present(pix []byte, width, height int) error
	Release()
}

type Canvas struct {
	*gg.Context
	presenter Presenter
	scale     float64
}

// NewCanvas creates a canvas of width x height physical pixels. p may be nil
// for an offscreen canvas.
func NewCanvas(width, height int, p Presenter) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	return &Canvas{
		Context:   gg.NewContext(width, height),
		presenter: p,
		scale:     1,
	}, nil
}

// SetSize resizes the backing pixmap to width x height physical pixels and
// resets the transform so that one drawing unit is one logical (window) pixel.
func (c *Canvas) SetSize(width, height int, scale float32) error {
	if scale <= 0 {
		scale = 1
	}
	if err := c.Context.Resize(width, height); err != nil {
		return err
	}
	c.scale = float64(scale)
	c.Identity()
	c.Scale(c.scale, c.scale)
	return nil
}

// ScaleFactor is the ratio of physical to logical pixels.
func (c *Canvas) ScaleFactor() float64 { return c.scale }

// LogicalSize reports the canvas size in drawing units.
func (c *Canvas) LogicalSize() (w, h float64) {
	return float64(c.Width()) / c.scale, float64(c.Height()) / c.scale
}

// Clear fills the whole surface with col and drops any pending path.
func (c *Canvas) Clear(col colors.Color) {
	c.ClearWithColor(col.RGBA())
	c.ClearPath()
}

// SetPaint sets the fill and stroke color.
func (c *Canvas) SetPaint(col colors.Color) {
	c.SetRGBA(float64(col[0]), float64(col[1]), float64(col[2]), float64(col[3]))
}

// ContainsPoint reports whether (x, y), in drawing units, lies inside path.
func (c *Canvas) ContainsPoint(path *gg.Path, x, y float32) bool {
	return path.Contains(gg.Pt(float64(x), float64(y)))
}

// DrawText draws s anchored at (x, y) in drawing units; ax and ay are in
// [0, 1] as for DrawStringAnchored. Glyphs are rasterized in device pixels,
// so face should be sized with ScaleFactor already applied.
func (c *Canvas) DrawText(face text.Face, s string, x, y, ax, ay float64) {
	px, py := c.TransformPoint(x, y)
	c.SetFont(face)
	c.DrawStringAnchored(s, px, py, ax, ay)
}

// Flush completes pending drawing and presents the frame.
func (c *Canvas) Flush() error {
	if err := c.FlushGPU(); err != nil {
		return fmt.Errorf("flush canvas: %w", err)
	}
	if c.presenter == nil {
		return nil
	}
	pm := c.ResizeTarget()
	return c.presenter.Present(pm.Data(), pm.Width(), pm.Height())
}

// Release frees the context and the presenter. The canvas must not be used
// afterwards.
func (c *Canvas) Release() {
	_ = c.Context.Close()
	if c.presenter != nil {
		c.presenter.Release()
		c.presenter = nil
	}
}
