// bmp package implements a 24-bit bitmap codec and the in-memory pixel buffer
// every transform in bmpfx works on.
package bmp

import (
	"fmt"
	"io"

	errs "github.com/anas-shakeel/bmpfx/internal/errors"
	"github.com/anas-shakeel/bmpfx/internal/utils"
)

// Image is a width x height grid of colors stored in a single row-major slice.
//
// Rows are kept in the order a bitmap stores them on disk: row 0 is the
// bottom scanline and row height-1 the top one. The pixel at (col, row)
// lives at index row*width+col.
//
// At and Set panic on coordinates outside the image.
type Image struct {
	width  int
	height int
	pixels []Color
}

// Creates and returns a black image of the given size (at most MaxPixels pixels)
func NewImage(width, height int) (*Image, error) {
	if width < 0 {
		return nil, errs.InvalidParameter("width must not be negative, got %d", width)
	} else if height < 0 {
		return nil, errs.InvalidParameter("height must not be negative, got %d", height)
	} else if int64(width)*int64(height) > MaxPixels {
		return nil, errs.InvalidParameter("image too large: %dx%d exceeds %d pixels", width, height, MaxPixels)
	}
	return newImage(width, height), nil
}

func newImage(width, height int) *Image {
	return &Image{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
}

// Width returns the width of the image in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the height of the image in pixels.
func (img *Image) Height() int { return img.height }

// Empty reports whether the image holds no pixels.
func (img *Image) Empty() bool { return len(img.pixels) == 0 }

func (img *Image) index(col, row int) int {
	if col < 0 || col >= img.width || row < 0 || row >= img.height {
		panic(fmt.Sprintf("bmp: pixel (%d, %d) out of range for %dx%d image", col, row, img.width, img.height))
	}
	return row*img.width + col
}

// At returns the color at (col, row).
func (img *Image) At(col, row int) Color {
	return img.pixels[img.index(col, row)]
}

// Set stores c at (col, row).
func (img *Image) Set(col, row int, c Color) {
	img.pixels[img.index(col, row)] = c
}

// Row returns the pixels of a row. The slice shares storage with the image.
func (img *Image) Row(row int) []Color {
	if row < 0 || row >= img.height {
		panic(fmt.Sprintf("bmp: row %d out of range for %dx%d image", row, img.width, img.height))
	}
	start := row * img.width
	return img.pixels[start : start+img.width]
}

// Pixels returns the whole backing slice in row-major order. The slice
// shares storage with the image.
func (img *Image) Pixels() []Color {
	return img.pixels
}

// Returns a Copy of the image (pixels are duplicated, never shared)
func (img *Image) Copy() *Image {
	dup := newImage(img.width, img.height)
	copy(dup.pixels, img.pixels)
	return dup
}

// Print the image in terminal as colored blocks, top row first. Use for small images only
func (img *Image) Print(w io.Writer) error {
	for row := img.height - 1; row >= 0; row-- {
		for _, c := range img.Row(row) {
			r, g, b := c.bytes()
			if _, err := io.WriteString(w, utils.ColoredBlock("  ", int(r), int(g), int(b))); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Rainbow returns a gradient test image: red grows left to right, green
// fades left to right and blue grows from the bottom row to the top.
func Rainbow(width, height int) (*Image, error) {
	img, err := NewImage(width, height)
	if err != nil {
		return nil, err
	}
	for row := range height {
		for col := range width {
			x := float64(col) / float64(width)
			img.Set(col, row, Color{x, 1 - x, float64(row) / float64(height)})
		}
	}
	return img, nil
}
