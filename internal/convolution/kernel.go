package convolution

import (
	"fmt"
	"math"
	"strings"

	errs "github.com/anas-shakeel/bmpfx/internal/errors"
)

// Kernel is a square matrix of weights with an odd size, stored as a single
// slice indexed row*size+col.
type Kernel struct {
	size    int
	weights []float64
}

// Size returns the number of rows (and columns) of the kernel.
func (k *Kernel) Size() int { return k.size }

// Radius returns the offset of the center from the first row, size/2.
func (k *Kernel) Radius() int { return k.size / 2 }

// At returns the weight at (row, col).
func (k *Kernel) At(row, col int) float64 {
	return k.weights[row*k.size+col]
}

// Sum returns the total of all weights.
func (k *Kernel) Sum() float64 {
	var sum float64
	for _, w := range k.weights {
		sum += w
	}
	return sum
}

// String formats the kernel as a grid, one row per line.
func (k *Kernel) String() string {
	var sb strings.Builder
	for row := range k.size {
		for col := range k.size {
			if col > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%.6f", k.At(row, col))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// GaussianKernel builds a normalized size x size Gaussian kernel.
//
// The weight at offset (x, y) from the center is
// exp(-(x²+y²)/(2σ²)) / (2πσ²); all weights are then divided by their sum so
// the kernel sums to 1. size must be odd and positive, sigma positive.
func GaussianKernel(size int, sigma float64) (*Kernel, error) {
	if size < 1 || size%2 == 0 {
		return nil, errs.InvalidParameter("kernel size must be a positive odd number, got %d", size)
	}
	// Also rejects NaN
	if !(sigma > 0) || math.IsInf(sigma, 1) {
		return nil, errs.InvalidParameter("sigma must be a positive number, got %v", sigma)
	}

	k := &Kernel{size: size, weights: make([]float64, size*size)}
	mid := size / 2
	twoSigmaSq := 2 * sigma * sigma
	norm := math.Pi * twoSigmaSq

	var sum float64
	for y := -mid; y <= mid; y++ {
		for x := -mid; x <= mid; x++ {
			w := math.Exp(-float64(x*x+y*y)/twoSigmaSq) / norm
			k.weights[(y+mid)*size+(x+mid)] = w
			sum += w
		}
	}

	// sigma so small or large that the weights under/overflow
	if !(sum > 0) || math.IsInf(sum, 1) {
		return nil, errs.InvalidParameter("sigma %v is out of the representable range", sigma)
	}

	// Normalize so kernel sums to 1.0
	for i := range k.weights {
		k.weights[i] /= sum
	}

	return k, nil
}
