package convolution

import (
	"github.com/anas-shakeel/bmpfx/internal/bmp"
	"github.com/anas-shakeel/bmpfx/internal/utils"
)

// GaussianBlur blurs the image in place with a kernelSize x kernelSize
// Gaussian kernel.
//
// Neighbors outside the image are clamped to the nearest edge pixel, so a
// uniform image is left unchanged. An invalid kernel size or sigma is
// rejected before any pixel is touched.
func GaussianBlur(b *bmp.Image, kernelSize int, sigma float64) error {
	kernel, err := GaussianKernel(kernelSize, sigma)
	if err != nil {
		return err
	}
	convolve(b, kernel)
	return nil
}

// convolve replaces every pixel with the kernel-weighted sum of its
// clamp-to-edge neighborhood in a snapshot of b.
func convolve(b *bmp.Image, k *Kernel) {
	snapshot := b.Copy()
	width, height := b.Width(), b.Height()
	radius := k.Radius()

	for row := range height {
		out := b.Row(row)
		for col := range width {
			var sum bmp.Color
			for ky := range k.Size() {
				src := snapshot.Row(utils.ClampIndex(row+ky-radius, height))
				for kx := range k.Size() {
					sample := src[utils.ClampIndex(col+kx-radius, width)]
					sum = sum.Add(sample.Scale(k.At(ky, kx)))
				}
			}
			out[col] = sum
		}
	}
}
