package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/hubastard/powder/engine/colors"
	"github.com/hubastard/powder/engine/core"
	"github.com/hubastard/powder/engine/gfx"
)

var (
	sliderFill  = colors.Mint
	sliderTrack = colors.Gray
	buttonIdle  = colors.LightGray
	buttonHover = colors.Silver
)

// sliderSplit returns the x offset of the fill/track boundary.
func sliderSplit(width, min, max, value float32) float32 {
	if max <= min {
		return 0
	}
	return mgl32.Clamp((value-min)/(max-min)*width, 0, width)
}

func drawHorizontalSlider(c *gfx.Canvas, x, y, width, min, max, value float32) {
	split := sliderSplit(width, min, max, value)

	c.SetLineCap(gg.LineCapButt)
	c.SetLineJoin(gg.LineJoinBevel)
	c.SetLineWidth(4)

	c.SetPaint(sliderFill)
	c.MoveTo(float64(x), float64(y))
	c.LineTo(float64(x+split), float64(y))
	_ = c.Stroke()

	c.SetPaint(sliderTrack)
	c.MoveTo(float64(x+split), float64(y))
	c.LineTo(float64(x+width), float64(y))
	_ = c.Stroke()
}

// buttonClicked is the click rule: the pointer is over the button in the
// frame the mouse button was released.
func buttonClicked(hovering bool, f *core.Frame) bool {
	return hovering && f.MouseReleased
}

// drawButton draws a labelled button and reports whether it was clicked
// this frame.
func drawButton(c *gfx.Canvas, f *core.Frame, face text.Face, x, y, w, h float32, label string) bool {
	path := gg.NewPath()
	path.Rectangle(float64(x), float64(y), float64(w), float64(h))
	hovering := c.ContainsPoint(path, f.Mouse.X(), f.Mouse.Y())

	if hovering {
		c.SetPaint(buttonHover)
	} else {
		c.SetPaint(buttonIdle)
	}
	c.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	_ = c.Fill()

	c.SetPaint(colors.Black)
	c.DrawText(face, label, float64(x+w/2), float64(y+h/2), 0.5, 0.5)

	return buttonClicked(hovering, f)
}
