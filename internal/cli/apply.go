package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anas-shakeel/bmpfx/internal/bmp"
	"github.com/anas-shakeel/bmpfx/internal/pipeline"
)

// applyOpts holds the flags of the apply command.
type applyOpts struct {
	ops    []string
	recipe string
	output string
}

func newApplyCmd() *cobra.Command {
	var opts applyOpts

	cmd := &cobra.Command{
		Use:   "apply <input.bmp>",
		Short: "Apply a chain of operations to a bitmap",
		Long: `Apply loads a 24-bit bitmap, runs the given operations in order and saves the result.

Operations (repeat --op, applied in the order given, after any recipe steps):
  flipv                          flip top to bottom
  fliph                          flip left to right
  invert                         invert colors
  grayscale                      convert to gray (BT.601 luma)
  grayavg                        convert to gray (mean of the channels)
  edge                           Laplacian edge detection
  blur:<kernel>:<sigma>          Gaussian blur, odd kernel size
  stretch:<edge>:<fraction>      smear the left/right/top/bottom region
  brightness:<add|multiply>:<f>  adjust brightness
  contrast:<factor>              adjust contrast
  channel:<red|green|blue>       keep a single channel
  crop:<x>:<y>:<width>:<height>  keep a region, origin at the top-left

Unless --output is set, the result is written next to the input with one
suffix per operation, e.g. photo_flipV_gaussian.bmp.`,
		Example: `  bmpfx apply photo.bmp --op flipv --op blur:5:1.2
  bmpfx apply photo.bmp --op stretch:left:0.3 -o smeared.bmp
  bmpfx apply photo.bmp --recipe soften.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.ops, "op", nil, "operation to apply (repeatable, order matters)")
	cmd.Flags().StringVar(&opts.recipe, "recipe", "", "TOML recipe file with [[step]] tables")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: derived from input and operations)")

	return cmd
}

// collectSteps gathers recipe steps followed by --op steps.
func collectSteps(opts applyOpts) ([]pipeline.Step, string, error) {
	var steps []pipeline.Step
	output := opts.output

	if opts.recipe != "" {
		recipe, err := pipeline.LoadRecipe(opts.recipe)
		if err != nil {
			return nil, "", fmt.Errorf("loading recipe: %w", err)
		}
		steps = append(steps, recipe.Steps...)
		if output == "" {
			output = recipe.Output
		}
	}

	for _, op := range opts.ops {
		step, err := pipeline.ParseStep(op)
		if err != nil {
			return nil, "", err
		}
		steps = append(steps, step)
	}

	if len(steps) == 0 {
		return nil, "", pipeline.ErrNoSteps
	}
	return steps, output, nil
}

func runApply(cmd *cobra.Command, input string, opts applyOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	steps, output, err := collectSteps(opts)
	if err != nil {
		return err
	}

	img, err := bmp.ReadBitmap(input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	logger.Debug("Loaded bitmap", "path", input, "width", img.Width(), "height", img.Height())

	prog := newProgress(logger)
	result, err := pipeline.Run(ctx, img, steps, func(i int, step pipeline.Step, _ *bmp.Image) {
		logger.Debug("Applied operation", "n", i+1, "op", step.String())
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Applied %d operation(s)", len(result.Applied)))

	if output == "" {
		output = pipeline.OutputPath(input, result.Applied)
	}
	if err := result.Image.Save(output); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	printSuccess(cmd.OutOrStdout(), "Output saved to %s", output)
	return nil
}
