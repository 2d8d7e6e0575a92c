package colors

import "github.com/gogpu/gg"

// Color is a straight-alpha RGBA color with components in [0, 1].
type Color [4]float32

var (
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Magenta     = Color{1, 0, 1, 1}
	Cyan        = Color{0, 1, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	DarkGray    = Color{0.08, 0.10, 0.12, 1}
	LightGray   = Color{0.95, 0.95, 0.95, 1}
	Silver      = Color{0.8, 0.8, 0.8, 1}
	Mint        = Color{0.5, 1, 0.5, 1}
	Transparent = Color{}
)

// RGB builds an opaque color.
func RGB(r, g, b float32) Color { return Color{r, g, b, 1} }

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// RGBA converts c to the canvas color type.
func (c Color) RGBA() gg.RGBA {
	return gg.RGBA2(float64(c[0]), float64(c[1]), float64(c[2]), float64(c[3]))
}
