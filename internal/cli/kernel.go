package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anas-shakeel/bmpfx/internal/convolution"
)

func newKernelCmd() *cobra.Command {
	var size int
	var sigma float64

	cmd := &cobra.Command{
		Use:   "kernel",
		Short: "Print the normalized Gaussian kernel used by blur",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := convolution.GaussianKernel(size, sigma)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printTitle(out, fmt.Sprintf("Gaussian kernel %dx%d, sigma %g", size, size, sigma))
			fmt.Fprint(out, k.String())
			printDim(out, "sum = %.12f", k.Sum())
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 5, "kernel size (positive odd number)")
	cmd.Flags().Float64Var(&sigma, "sigma", 1, "standard deviation (positive)")
	return cmd
}
