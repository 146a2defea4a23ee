package bmp

import (
	"image"
	"image/color"
)

// ToImage converts img to a standard library image with the top row at y=0.
// Channels are quantized exactly as Encode does.
func (img *Image) ToImage() *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, img.width, img.height))
	for row := range img.height {
		y := img.height - row - 1
		for col, c := range img.Row(row) {
			r, g, b := c.bytes()
			m.SetRGBA(col, y, color.RGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
	return m
}

// FromImage converts any image.Image into an Image. Alpha is ignored.
func FromImage(m image.Image) *Image {
	bounds := m.Bounds()
	img := newImage(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := img.Row(bounds.Max.Y - y - 1)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(m.At(x, y)).(color.RGBA)
			row[x-bounds.Min.X] = Color{
				R: float64(c.R) / 255.0,
				G: float64(c.G) / 255.0,
				B: float64(c.B) / 255.0,
			}
		}
	}
	return img
}
