package adjustments

import "github.com/anas-shakeel/bmpfx/internal/bmp"

// FlipVertical mirrors the image top to bottom in place.
func FlipVertical(b *bmp.Image) {
	height := b.Height()
	for row := range height / 2 {
		top, bottom := b.Row(row), b.Row(height-row-1)
		for col := range top {
			top[col], bottom[col] = bottom[col], top[col]
		}
	}
}

// FlipHorizontal mirrors the image left to right in place.
func FlipHorizontal(b *bmp.Image) {
	width := b.Width()
	for row := range b.Height() {
		pixels := b.Row(row)
		for col := range width / 2 {
			opp := width - col - 1
			pixels[col], pixels[opp] = pixels[opp], pixels[col]
		}
	}
}
