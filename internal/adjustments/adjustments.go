// Adjusts image dimensions, orientation, or structure.
package adjustments

import (
	"github.com/anas-shakeel/bmpfx/internal/bmp"
	errs "github.com/anas-shakeel/bmpfx/internal/errors"
)

// Crops a region in the image (0,0 is at the top-left of the image)
func Crop(b *bmp.Image, x, y, width, height int) (*bmp.Image, error) {
	// Validate bounds
	if x < 0 || y < 0 || width < 0 || height < 0 {
		return nil, errs.InvalidParameter("invalid bounds: negative origin or size")
	} else if width+x > b.Width() {
		return nil, errs.InvalidParameter("invalid bounds: width out of bounds")
	} else if height+y > b.Height() {
		return nil, errs.InvalidParameter("invalid bounds: height out of bounds")
	}

	cropped, err := bmp.NewImage(width, height)
	if err != nil {
		return nil, err
	}

	// Rows are stored bottom-up, so the top-left origin is flipped here
	for row := range height { // Height | Rows
		src := b.Row(b.Height() - 1 - (y + row))
		copy(cropped.Row(height-1-row), src[x:x+width])
	}

	return cropped, nil
}
