package adjustments

import (
	"math"
	"testing"

	"github.com/anas-shakeel/bmpfx/internal/bmp"
	errs "github.com/anas-shakeel/bmpfx/internal/errors"
)

// numbered builds an image whose red channel encodes the pixel position
// as col + 10*row, which makes permutations easy to check.
func numbered(width, height int) *bmp.Image {
	img, err := bmp.NewImage(width, height)
	if err != nil {
		panic(err)
	}
	for row := range height {
		for col := range width {
			img.Set(col, row, bmp.Color{R: float64(col + 10*row), G: 0.5, B: 1})
		}
	}
	return img
}

func id(b *bmp.Image, col, row int) int {
	return int(b.At(col, row).R)
}

func equal(a, b *bmp.Image) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	for i, c := range a.Pixels() {
		if c != b.Pixels()[i] {
			return false
		}
	}
	return true
}

func TestFlipVertical(t *testing.T) {
	img := numbered(3, 3)
	FlipVertical(img)

	for row := range 3 {
		for col := range 3 {
			if got, want := id(img, col, row), col+10*(2-row); got != want {
				t.Errorf("(%d,%d) = %d, want %d", col, row, got, want)
			}
		}
	}
}

func TestFlipHorizontal(t *testing.T) {
	img := numbered(4, 2)
	FlipHorizontal(img)

	for row := range 2 {
		for col := range 4 {
			if got, want := id(img, col, row), (3-col)+10*row; got != want {
				t.Errorf("(%d,%d) = %d, want %d", col, row, got, want)
			}
		}
	}
}

func TestFlipsAreInvolutions(t *testing.T) {
	sizes := []struct{ w, h int }{{0, 0}, {1, 1}, {2, 3}, {5, 4}, {7, 1}}

	for _, s := range sizes {
		orig := numbered(s.w, s.h)

		img := orig.Copy()
		FlipVertical(img)
		FlipVertical(img)
		if !equal(img, orig) {
			t.Errorf("%dx%d: FlipVertical twice changed the image", s.w, s.h)
		}

		FlipHorizontal(img)
		FlipHorizontal(img)
		if !equal(img, orig) {
			t.Errorf("%dx%d: FlipHorizontal twice changed the image", s.w, s.h)
		}
	}
}

func TestStretchHorizontal(t *testing.T) {
	tests := []struct {
		name          string
		f             float64
		rightAnchored bool
		want          []int // red ids of row 0 after the stretch
	}{
		{"right at half", 0.5, true, []int{0, 1, 2, 3, 4, 5, 5, 5, 5, 5}},
		{"left at half", 0.5, false, []int{5, 5, 5, 5, 5, 5, 6, 7, 8, 9}},
		{"right fractional pivot", 0.35, true, []int{0, 1, 2, 3, 3, 3, 3, 3, 3, 3}},
		{"left fractional pivot", 0.35, false, []int{3, 3, 3, 3, 4, 5, 6, 7, 8, 9}},
		{"right at zero", 0, true, []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
		{"left at zero", 0, false, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"right at one", 1, true, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"left at one samples last column", 1, false, []int{9, 9, 9, 9, 9, 9, 9, 9, 9, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := numbered(10, 2)
			if err := StretchHorizontal(img, tt.f, tt.rightAnchored); err != nil {
				t.Fatalf("StretchHorizontal: %v", err)
			}
			for col, want := range tt.want {
				if got := id(img, col, 0); got != want {
					t.Errorf("col %d = %d, want %d", col, got, want)
				}
				// Every row samples from itself
				if got := id(img, col, 1); got != want+10 {
					t.Errorf("row 1 col %d = %d, want %d", col, got, want+10)
				}
			}
		})
	}
}

func TestStretchVertical(t *testing.T) {
	tests := []struct {
		name string
		f    float64
		up   bool
		want []int // row each memory row was copied from
	}{
		{"up at quarter", 0.25, true, []int{0, 1, 2, 3, 4, 4}}, // pivot 4.5
		{"down at half", 0.5, false, []int{3, 3, 3, 3, 4, 5}},  // pivot 3
		{"up at zero", 0, true, []int{0, 1, 2, 3, 4, 5}},       // pivot 6
		{"down at one", 1, false, []int{5, 5, 5, 5, 5, 5}},     // pivot 6, clamped sample
		{"up at one", 1, true, []int{0, 0, 0, 0, 0, 0}},        // pivot 0
		{"down at zero", 0, false, []int{0, 1, 2, 3, 4, 5}},    // pivot 0
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := numbered(2, 6)
			if err := StretchVertical(img, tt.f, tt.up); err != nil {
				t.Fatalf("StretchVertical: %v", err)
			}
			for row, src := range tt.want {
				for col := range 2 {
					if got, want := id(img, col, row), col+10*src; got != want {
						t.Errorf("(%d,%d) = %d, want %d", col, row, got, want)
					}
				}
			}
		})
	}
}

func TestStretchRejectsFraction(t *testing.T) {
	for _, f := range []float64{-0.1, 1.0001, 7, math.NaN(), math.Inf(1)} {
		for _, edge := range []Edge{EdgeLeft, EdgeRight, EdgeTop, EdgeBottom} {
			img := numbered(4, 4)
			err := Stretch(img, f, edge)
			if !errs.Is(err, errs.ErrCodeInvalidParameter) {
				t.Errorf("Stretch(%v, %v) error = %v, want invalid parameter", f, edge, err)
			}
			if !equal(img, numbered(4, 4)) {
				t.Errorf("Stretch(%v, %v) modified a rejected image", f, edge)
			}
		}
	}
}

func TestStretchEdges(t *testing.T) {
	tests := []struct {
		edge Edge
		same func(b *bmp.Image) error
	}{
		{EdgeLeft, func(b *bmp.Image) error { return StretchHorizontal(b, 0.3, false) }},
		{EdgeRight, func(b *bmp.Image) error { return StretchHorizontal(b, 0.3, true) }},
		{EdgeTop, func(b *bmp.Image) error { return StretchVertical(b, 0.3, true) }},
		{EdgeBottom, func(b *bmp.Image) error { return StretchVertical(b, 0.3, false) }},
	}

	for _, tt := range tests {
		t.Run(tt.edge.String(), func(t *testing.T) {
			got, want := numbered(5, 5), numbered(5, 5)
			if err := Stretch(got, 0.3, tt.edge); err != nil {
				t.Fatal(err)
			}
			if err := tt.same(want); err != nil {
				t.Fatal(err)
			}
			if !equal(got, want) {
				t.Errorf("Stretch(%v) does not match its directional variant", tt.edge)
			}
		})
	}

	if err := Stretch(numbered(2, 2), 0.5, Edge(42)); !errs.Is(err, errs.ErrCodeInvalidParameter) {
		t.Errorf("unknown edge: error = %v", err)
	}
}

func TestStretchEmptyImage(t *testing.T) {
	img := numbered(0, 0)
	for _, edge := range []Edge{EdgeLeft, EdgeRight, EdgeTop, EdgeBottom} {
		if err := Stretch(img, 0.5, edge); err != nil {
			t.Errorf("Stretch(empty, %v) = %v", edge, err)
		}
	}
}

func TestParseEdge(t *testing.T) {
	tests := []struct {
		in      string
		want    Edge
		wantErr bool
	}{
		{"left", EdgeLeft, false},
		{"Right", EdgeRight, false},
		{"TOP", EdgeTop, false},
		{"bottom", EdgeBottom, false},
		{"middle", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseEdge(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseEdge(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseEdge(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCrop(t *testing.T) {
	img := numbered(4, 3) // memory row 2 is the top row

	cropped, err := Crop(img, 1, 0, 2, 2)
	if err != nil {
		t.Fatalf("Crop: %v", err)
	}
	if cropped.Width() != 2 || cropped.Height() != 2 {
		t.Fatalf("size = %dx%d, want 2x2", cropped.Width(), cropped.Height())
	}

	// Top-left of the crop is column 1 of the top row (memory row 2)
	want := map[[2]int]int{
		{0, 1}: 21, {1, 1}: 22,
		{0, 0}: 11, {1, 0}: 12,
	}
	for p, w := range want {
		if got := id(cropped, p[0], p[1]); got != w {
			t.Errorf("cropped (%d,%d) = %d, want %d", p[0], p[1], got, w)
		}
	}

	// The source is untouched and independent
	cropped.Set(0, 0, bmp.White)
	if id(img, 1, 1) != 11 {
		t.Error("Crop shares storage with the source")
	}
}

func TestCropOutOfBounds(t *testing.T) {
	img := numbered(4, 3)
	bad := [][4]int{
		{3, 0, 2, 1},
		{0, 2, 1, 2},
		{-1, 0, 1, 1},
		{0, 0, -1, 1},
	}
	for _, r := range bad {
		if _, err := Crop(img, r[0], r[1], r[2], r[3]); !errs.Is(err, errs.ErrCodeInvalidParameter) {
			t.Errorf("Crop%v error = %v, want invalid parameter", r, err)
		}
	}
}
