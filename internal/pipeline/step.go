package pipeline

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/anas-shakeel/bmpfx/internal/adjustments"
	errs "github.com/anas-shakeel/bmpfx/internal/errors"
)

// Op names a pipeline operation.
type Op string

const (
	OpFlipVertical   Op = "flipv"
	OpFlipHorizontal Op = "fliph"
	OpInvert         Op = "invert"
	OpGrayscale      Op = "grayscale"
	OpGrayscaleAvg   Op = "grayavg"
	OpEdge           Op = "edge"
	OpBlur           Op = "blur"
	OpStretch        Op = "stretch"
	OpBrightness     Op = "brightness"
	OpContrast       Op = "contrast"
	OpChannel        Op = "channel"
	OpCrop           Op = "crop"
)

// Ops lists every supported operation in the order they are documented.
var Ops = []Op{
	OpFlipVertical, OpFlipHorizontal, OpInvert, OpGrayscale, OpGrayscaleAvg,
	OpEdge, OpBlur, OpStretch, OpBrightness, OpContrast, OpChannel, OpCrop,
}

// Step is one operation of a pipeline together with its parameters.
// Only the fields relevant to Op are used.
type Step struct {
	Op       Op      `toml:"op"`
	Kernel   int     `toml:"kernel"`   // blur: odd kernel size
	Sigma    float64 `toml:"sigma"`    // blur: standard deviation
	Edge     string  `toml:"edge"`     // stretch: left, right, top or bottom
	Fraction float64 `toml:"fraction"` // stretch: position in [0, 1]
	Method   string  `toml:"method"`   // brightness: add or multiply
	Factor   float64 `toml:"factor"`   // brightness, contrast
	Channel  string  `toml:"channel"`  // channel: red, green or blue
	X        int     `toml:"x"`        // crop: left edge, from the left
	Y        int     `toml:"y"`        // crop: top edge, from the top
	Width    int     `toml:"width"`    // crop
	Height   int     `toml:"height"`   // crop
}

// String formats the step in the shorthand ParseStep accepts.
func (s Step) String() string {
	switch s.Op {
	case OpBlur:
		return fmt.Sprintf("%s:%d:%g", s.Op, s.Kernel, s.Sigma)
	case OpStretch:
		return fmt.Sprintf("%s:%s:%g", s.Op, s.Edge, s.Fraction)
	case OpBrightness:
		return fmt.Sprintf("%s:%s:%g", s.Op, s.Method, s.Factor)
	case OpContrast:
		return fmt.Sprintf("%s:%g", s.Op, s.Factor)
	case OpChannel:
		return fmt.Sprintf("%s:%s", s.Op, s.Channel)
	case OpCrop:
		return fmt.Sprintf("%s:%d:%d:%d:%d", s.Op, s.X, s.Y, s.Width, s.Height)
	}
	return string(s.Op)
}

// ParseStep parses the shorthand form of a step:
//
//	flipv | fliph | invert | grayscale | grayavg | edge
//	blur:<kernel>:<sigma>
//	stretch:<edge>:<fraction>
//	brightness:<add|multiply>:<factor>
//	contrast:<factor>
//	channel:<red|green|blue>
//	crop:<x>:<y>:<width>:<height>
//
// The returned step has been validated.
func ParseStep(s string) (Step, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	step := Step{Op: Op(strings.ToLower(parts[0]))}
	args := parts[1:]

	want := map[Op]int{
		OpBlur:       2,
		OpStretch:    2,
		OpBrightness: 2,
		OpContrast:   1,
		OpChannel:    1,
		OpCrop:       4,
	}[step.Op]
	if len(args) != want {
		return Step{}, errs.InvalidParameter("step %q: %s takes %d argument(s), got %d", s, step.Op, want, len(args))
	}

	var err error
	switch step.Op {
	case OpBlur:
		if step.Kernel, err = strconv.Atoi(args[0]); err != nil {
			return Step{}, errs.InvalidParameter("step %q: kernel size %q is not an integer", s, args[0])
		}
		step.Sigma, err = parseFloat(s, "sigma", args[1])
	case OpStretch:
		step.Edge = args[0]
		step.Fraction, err = parseFloat(s, "fraction", args[1])
	case OpBrightness:
		step.Method = args[0]
		step.Factor, err = parseFloat(s, "factor", args[1])
	case OpContrast:
		step.Factor, err = parseFloat(s, "factor", args[0])
	case OpChannel:
		step.Channel = args[0]
	case OpCrop:
		for i, dst := range []*int{&step.X, &step.Y, &step.Width, &step.Height} {
			if *dst, err = strconv.Atoi(args[i]); err != nil {
				return Step{}, errs.InvalidParameter("step %q: %q is not an integer", s, args[i])
			}
		}
	}
	if err != nil {
		return Step{}, err
	}

	if err := step.Validate(); err != nil {
		return Step{}, err
	}
	return step, nil
}

func parseFloat(step, name, v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errs.InvalidParameter("step %q: %s %q is not a number", step, name, v)
	}
	return f, nil
}

// Validate checks the parameters of the step without touching any image.
func (s Step) Validate() error {
	switch s.Op {
	case OpFlipVertical, OpFlipHorizontal, OpInvert, OpGrayscale, OpGrayscaleAvg, OpEdge:
		return nil
	case OpBlur:
		if s.Kernel < 1 || s.Kernel%2 == 0 {
			return errs.InvalidParameter("blur: kernel size must be a positive odd number, got %d", s.Kernel)
		}
		if !(s.Sigma > 0) || math.IsInf(s.Sigma, 1) {
			return errs.InvalidParameter("blur: sigma must be positive and finite, got %v", s.Sigma)
		}
		return nil
	case OpStretch:
		if _, err := adjustments.ParseEdge(s.Edge); err != nil {
			return err
		}
		if !(s.Fraction >= 0 && s.Fraction <= 1) {
			return errs.InvalidParameter("stretch: fraction %v outside [0, 1]", s.Fraction)
		}
		return nil
	case OpBrightness:
		if s.Method != "add" && s.Method != "multiply" {
			return errs.InvalidParameter("brightness: method must be add or multiply, got %q", s.Method)
		}
		return checkFactor(s.Op, s.Factor)
	case OpContrast:
		return checkFactor(s.Op, s.Factor)
	case OpChannel:
		switch strings.ToLower(s.Channel) {
		case "red", "green", "blue":
			return nil
		}
		return errs.InvalidParameter("channel: must be red, green or blue, got %q", s.Channel)
	case OpCrop:
		// The image bounds are only known when the step is applied
		if s.X < 0 || s.Y < 0 || s.Width < 0 || s.Height < 0 {
			return errs.InvalidParameter("crop: origin and size must not be negative, got %d,%d %dx%d", s.X, s.Y, s.Width, s.Height)
		}
		return nil
	}
	return errs.InvalidParameter("unknown operation %q", s.Op)
}

func checkFactor(op Op, f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errs.InvalidParameter("%s: factor must be finite, got %v", op, f)
	}
	return nil
}

// Suffix returns the fragment appended to the output filename for the step.
func (s Step) Suffix() string {
	switch s.Op {
	case OpFlipVertical:
		return "_flipV"
	case OpFlipHorizontal:
		return "_flipH"
	case OpInvert:
		return "_invert"
	case OpGrayscale:
		return "_greyscale"
	case OpGrayscaleAvg:
		return "_greyscaleAvg"
	case OpEdge:
		return "_edgeDetect"
	case OpBlur:
		return "_gaussian"
	case OpStretch:
		edge, err := adjustments.ParseEdge(s.Edge)
		if err != nil {
			return "_stretch"
		}
		return "_stretch" + map[adjustments.Edge]string{
			adjustments.EdgeLeft:   "L",
			adjustments.EdgeRight:  "R",
			adjustments.EdgeTop:    "U",
			adjustments.EdgeBottom: "D",
		}[edge]
	case OpBrightness:
		return "_brightness"
	case OpContrast:
		return "_contrast"
	case OpChannel:
		return "_" + strings.ToLower(s.Channel)
	case OpCrop:
		return "_crop"
	}
	return "_" + string(s.Op)
}
