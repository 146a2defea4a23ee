package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anas-shakeel/bmpfx/internal/bmp"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <input.bmp>",
		Short: "Print the header metadata of a bitmap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := bmp.ReadInfo(args[0])
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			out := cmd.OutOrStdout()
			printTitle(out, "Bitmap")
			return info.Print(out)
		},
	}
}
