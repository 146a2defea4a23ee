package adjustments

import (
	"fmt"
	"strings"

	"github.com/anas-shakeel/bmpfx/internal/bmp"
	errs "github.com/anas-shakeel/bmpfx/internal/errors"
	"github.com/anas-shakeel/bmpfx/internal/utils"
)

// Edge names the side of the image a Stretch smears.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

var edgeNames = [...]string{
	EdgeLeft:   "left",
	EdgeRight:  "right",
	EdgeTop:    "top",
	EdgeBottom: "bottom",
}

func (e Edge) String() string {
	if e < 0 || int(e) >= len(edgeNames) {
		return fmt.Sprintf("Edge(%d)", int(e))
	}
	return edgeNames[e]
}

// ParseEdge converts "left", "right", "top" or "bottom" (any case) to an Edge.
func ParseEdge(s string) (Edge, error) {
	for i, name := range edgeNames {
		if strings.EqualFold(s, name) {
			return Edge(i), nil
		}
	}
	return 0, errs.InvalidParameter("invalid edge %q: must be left, right, top or bottom", s)
}

func checkFraction(f float64) error {
	// NaN fails both comparisons, so test for the valid range instead
	if !(f >= 0 && f <= 1) {
		return errs.InvalidParameter("stretch fraction %v outside [0, 1]", f)
	}
	return nil
}

// Stretch replicates a single sampled row or column over the region next to
// edge, which simulates stretching that part of the image.
//
//   - left:   columns before width*f take column width*f
//   - right:  columns after width*f take column width*f
//   - top:    rows above height*(1-f) take row height*(1-f)
//   - bottom: rows below height*f take row height*f
//
// A fraction outside [0, 1] is rejected and the image is left untouched.
func Stretch(b *bmp.Image, f float64, edge Edge) error {
	switch edge {
	case EdgeLeft:
		return StretchHorizontal(b, f, false)
	case EdgeRight:
		return StretchHorizontal(b, f, true)
	case EdgeTop:
		return StretchVertical(b, f, true)
	case EdgeBottom:
		return StretchVertical(b, f, false)
	}
	return errs.InvalidParameter("invalid edge %v", edge)
}

// StretchHorizontal copies the column at width*f into every column after it
// (rightAnchored) or before it. Columns on the other side are untouched.
func StretchHorizontal(b *bmp.Image, f float64, rightAnchored bool) error {
	if err := checkFraction(f); err != nil {
		return err
	}
	if b.Empty() {
		return nil
	}

	pivot := float64(b.Width()) * f
	src := utils.ClampIndex(int(pivot), b.Width()) // f == 1 would sample past the last column

	for row := range b.Height() {
		pixels := b.Row(row)
		sample := pixels[src]
		for col := range pixels {
			x := float64(col)
			if (rightAnchored && x > pivot) || (!rightAnchored && x < pivot) {
				pixels[col] = sample
			}
		}
	}
	return nil
}

// StretchVertical is StretchHorizontal along rows. Rows are indexed
// bottom-up: up copies the row at height*(1-f) into every row with a higher
// index, down copies the row at height*f into every row with a lower one.
func StretchVertical(b *bmp.Image, f float64, up bool) error {
	if err := checkFraction(f); err != nil {
		return err
	}
	if b.Empty() {
		return nil
	}

	pivot := float64(b.Height()) * f
	if up {
		pivot = float64(b.Height()) * (1 - f)
	}
	src := append([]bmp.Color(nil), b.Row(utils.ClampIndex(int(pivot), b.Height()))...)

	for row := range b.Height() {
		y := float64(row)
		if (up && y > pivot) || (!up && y < pivot) {
			copy(b.Row(row), src)
		}
	}
	return nil
}
