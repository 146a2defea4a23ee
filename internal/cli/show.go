package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anas-shakeel/bmpfx/internal/bmp"
	"github.com/anas-shakeel/bmpfx/internal/pipeline"
)

// maxShowWidth keeps terminal previews readable; each pixel is two cells wide.
const maxShowWidth = 128

func newShowCmd() *cobra.Command {
	var ops []string

	cmd := &cobra.Command{
		Use:   "show <input.bmp>",
		Short: "Print a bitmap as colored blocks in the terminal",
		Long:  `Show prints the bitmap using 24-bit ANSI colors, optionally after applying operations (nothing is saved). Use for small images only.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := bmp.ReadBitmap(args[0])
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			if img.Width() > maxShowWidth {
				loggerFromContext(cmd.Context()).Warn("Image is wide, output will wrap", "width", img.Width())
			}

			steps := make([]pipeline.Step, 0, len(ops))
			for _, op := range ops {
				step, err := pipeline.ParseStep(op)
				if err != nil {
					return err
				}
				steps = append(steps, step)
			}

			result, err := pipeline.Run(cmd.Context(), img, steps, nil)
			if err != nil {
				return err
			}
			return result.Image.Print(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringArrayVar(&ops, "op", nil, "operation to apply before printing (repeatable)")
	return cmd
}
