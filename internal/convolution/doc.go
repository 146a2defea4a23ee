// Package convolution implements the neighborhood-sampling transforms:
// Gaussian blur and Laplacian edge detection.
//
// Both transforms read from a frozen copy of the image taken before any
// pixel is written, so a pixel never sees a neighbor that the same pass has
// already overwritten. Rows are independent in the write phase, which keeps
// row or tile partitioning safe should the loops ever be parallelized.
package convolution
