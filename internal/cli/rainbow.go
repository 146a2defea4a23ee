package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anas-shakeel/bmpfx/internal/bmp"
)

func newRainbowCmd() *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "rainbow <output.bmp>",
		Short: "Write a gradient test bitmap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := bmp.Rainbow(width, height)
			if err != nil {
				return err
			}
			if err := img.Save(args[0]); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}

			loggerFromContext(cmd.Context()).Debug("Wrote gradient", "width", width, "height", height)
			printSuccess(cmd.OutOrStdout(), "Output saved to %s", args[0])
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 640, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", 480, "image height in pixels")
	return cmd
}
