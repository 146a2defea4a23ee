package convolution

import (
	"github.com/anas-shakeel/bmpfx/internal/bmp"
	"github.com/anas-shakeel/bmpfx/internal/filters"
	"github.com/anas-shakeel/bmpfx/internal/utils"
)

// laplacian is the 4-neighbor Laplacian kernel.
var laplacian = [3][3]float64{
	{0, -1, 0},
	{-1, 4, -1},
	{0, -1, 0},
}

// LaplacianEdgeDetection converts the image to grayscale and replaces every
// interior pixel with its Laplacian response clamped to [0, 1].
//
// The 1-pixel border keeps its grayscale value; it is never edge-filtered.
// Images less than 3 pixels wide or high have no interior and are only
// converted to grayscale.
func LaplacianEdgeDetection(b *bmp.Image) {
	filters.Grayscale(b)

	width, height := b.Width(), b.Height()
	if width < 3 || height < 3 {
		return
	}
	snapshot := b.Copy()

	for row := 1; row < height-1; row++ {
		out := b.Row(row)
		for col := 1; col < width-1; col++ {
			var strength float64
			for i := -1; i <= 1; i++ {
				src := snapshot.Row(row + i)
				for j := -1; j <= 1; j++ {
					strength += laplacian[i+1][j+1] * src[col+j].R
				}
			}
			out[col] = bmp.Gray(utils.Clamp01(strength))
		}
	}
}
