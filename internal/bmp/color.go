package bmp

// Color is a pixel with three normalized channels. Values are expected in
// [0, 1] but are not clamped on construction.
type Color struct {
	R, G, B float64
}

// Common colors.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// Gray returns an achromatic color with every channel set to v.
func Gray(v float64) Color {
	return Color{v, v, v}
}

// Luma returns the ITU-R BT.601 luminance of c.
func (c Color) Luma() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// Scale returns c with every channel multiplied by w.
func (c Color) Scale(w float64) Color {
	return Color{c.R * w, c.G * w, c.B * w}
}

// Add returns the channel-wise sum of c and o.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}
