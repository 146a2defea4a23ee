// Package pipeline chains image operations: decode → transform steps → encode.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/anas-shakeel/bmpfx/internal/adjustments"
	"github.com/anas-shakeel/bmpfx/internal/bmp"
	"github.com/anas-shakeel/bmpfx/internal/convolution"
	errs "github.com/anas-shakeel/bmpfx/internal/errors"
	"github.com/anas-shakeel/bmpfx/internal/filters"
)

// ErrNoSteps is returned when there is nothing to apply.
var ErrNoSteps = errs.InvalidParameter("no operations given")

// Hook is called after each step has been applied successfully.
type Hook func(index int, step Step, img *bmp.Image)

// Result holds the output of a pipeline run.
type Result struct {
	Image   *bmp.Image // Image after the last applied step
	Applied []Step     // Steps applied, in order
}

// Apply runs a single step. Most steps mutate img in place and return it;
// channel isolation and cropping return a new image. A rejected step returns an error
// and leaves img untouched.
func Apply(img *bmp.Image, step Step) (*bmp.Image, error) {
	if err := step.Validate(); err != nil {
		return nil, err
	}

	switch step.Op {
	case OpFlipVertical:
		adjustments.FlipVertical(img)
	case OpFlipHorizontal:
		adjustments.FlipHorizontal(img)
	case OpInvert:
		filters.Invert(img)
	case OpGrayscale:
		filters.Grayscale(img)
	case OpGrayscaleAvg:
		filters.GrayscaleAverage(img)
	case OpEdge:
		convolution.LaplacianEdgeDetection(img)
	case OpBlur:
		if err := convolution.GaussianBlur(img, step.Kernel, step.Sigma); err != nil {
			return nil, err
		}
	case OpStretch:
		edge, err := adjustments.ParseEdge(step.Edge)
		if err != nil {
			return nil, err
		}
		if err := adjustments.Stretch(img, step.Fraction, edge); err != nil {
			return nil, err
		}
	case OpBrightness:
		if err := filters.Brightness(img, step.Factor, step.Method); err != nil {
			return nil, err
		}
	case OpContrast:
		if err := filters.Contrast(img, step.Factor); err != nil {
			return nil, err
		}
	case OpChannel:
		return filters.Channel(img, step.Channel)
	case OpCrop:
		return adjustments.Crop(img, step.X, step.Y, step.Width, step.Height)
	}
	return img, nil
}

// Run applies steps to img in order.
//
// It stops at the first rejected step; the returned Result then holds the
// image as of the last applied step alongside the error. ctx is checked
// between steps. hook may be nil.
func Run(ctx context.Context, img *bmp.Image, steps []Step, hook Hook) (*Result, error) {
	result := &Result{Image: img}

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		out, err := Apply(result.Image, step)
		if err != nil {
			return result, fmt.Errorf("step %d (%s): %w", i+1, step, err)
		}
		result.Image = out
		result.Applied = append(result.Applied, step)

		if hook != nil {
			hook(i, step, out)
		}
	}

	return result, nil
}

// OutputPath derives the output filename from the input path: the .bmp
// extension is stripped, the step suffixes appended and .bmp added back.
func OutputPath(input string, steps []Step) string {
	base := input
	if ext := filepath.Ext(base); strings.EqualFold(ext, ".bmp") {
		base = strings.TrimSuffix(base, ext)
	}

	var sb strings.Builder
	sb.WriteString(base)
	for _, s := range steps {
		sb.WriteString(s.Suffix())
	}
	sb.WriteString(".bmp")
	return sb.String()
}
