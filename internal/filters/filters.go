// Filters perform color manipulation and per-pixel operations
package filters

import (
	"math"
	"strings"

	"github.com/anas-shakeel/bmpfx/internal/bmp"
	errs "github.com/anas-shakeel/bmpfx/internal/errors"
	"github.com/anas-shakeel/bmpfx/internal/utils"
)

// Inverts (negates) the image: every channel c becomes 1-c
func Invert(b *bmp.Image) {
	pixels := b.Pixels()
	for i, p := range pixels {
		pixels[i] = bmp.Color{R: 1 - p.R, G: 1 - p.G, B: 1 - p.B}
	}
}

// Converts an image to Black-and-White (with ITU-R 601-2 Luma Transform)
func Grayscale(b *bmp.Image) {
	pixels := b.Pixels()
	for i, p := range pixels {
		pixels[i] = bmp.Gray(p.Luma())
	}
}

// Converts an image to Black-and-White using the plain mean of the channels
func GrayscaleAverage(b *bmp.Image) {
	pixels := b.Pixels()
	for i, p := range pixels {
		pixels[i] = bmp.Gray(utils.Average(p.R, p.G, p.B))
	}
}

// Adjusts the Brightness of an image in-place.
//
// method can be "add" (adds factor to each channel) or "multiply" (multiplies each channel by factor).
// Channel values are clipped to [0, 1]. A factor that is not finite is rejected.
func Brightness(b *bmp.Image, factor float64, method string) error {
	if !finite(factor) {
		return errs.InvalidParameter("invalid factor %v: must be finite", factor)
	}

	type Operation func(x, y float64) float64
	var operation Operation

	// Select an operation of brightness (additive or multiplicative)
	switch method {
	case "add":
		operation = func(x, y float64) float64 {
			return x + y
		}
	case "multiply":
		operation = func(x, y float64) float64 {
			return x * y
		}
	default:
		return errs.InvalidParameter("invalid method %q: method must be add or multiply", method)
	}

	// Apply brightness (or darkness)
	pixels := b.Pixels()
	for i, p := range pixels {
		pixels[i] = bmp.Color{
			R: utils.Clamp01(operation(p.R, factor)),
			G: utils.Clamp01(operation(p.G, factor)),
			B: utils.Clamp01(operation(p.B, factor)),
		}
	}

	return nil
}

// Adjusts the Contrast of an image in-place.
// factor > 1.0 increases Contrast, factor < 1.0 decreases it.
func Contrast(b *bmp.Image, factor float64) error {
	if !finite(factor) {
		return errs.InvalidParameter("invalid factor %v: must be finite", factor)
	}

	pixels := b.Pixels()
	if len(pixels) == 0 {
		return nil
	}

	// Compute mean for each channel
	var sum bmp.Color
	for _, p := range pixels {
		sum = sum.Add(p)
	}
	mean := sum.Scale(1 / float64(len(pixels)))

	// Apply contrast
	for i, p := range pixels {
		pixels[i] = bmp.Color{
			R: utils.Clamp01(p.R*factor + (1-factor)*mean.R),
			G: utils.Clamp01(p.G*factor + (1-factor)*mean.G),
			B: utils.Clamp01(p.B*factor + (1-factor)*mean.B),
		}
	}

	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Returns an image containing a single channel of the source image.
// channel can one of (`red`, `green`, and `blue`)
func Channel(b *bmp.Image, channel string) (*bmp.Image, error) {
	var keep func(bmp.Color) bmp.Color

	switch strings.ToLower(channel) {
	case "red":
		keep = func(c bmp.Color) bmp.Color { return bmp.Color{R: c.R} }
	case "green":
		keep = func(c bmp.Color) bmp.Color { return bmp.Color{G: c.G} }
	case "blue":
		keep = func(c bmp.Color) bmp.Color { return bmp.Color{B: c.B} }
	default:
		return nil, errs.InvalidParameter("invalid color channel %q: only red, green, and blue are supported", channel)
	}

	// Turn the channels to zero except requested one!
	newImage := b.Copy()
	pixels := newImage.Pixels()
	for i, p := range pixels {
		pixels[i] = keep(p)
	}

	return newImage, nil
}
