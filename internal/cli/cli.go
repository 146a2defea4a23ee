// Package cli implements the bmpfx command-line interface.
//
// The CLI is built using cobra. It loads bitmaps, runs the transform
// pipeline over them and saves the result; the core packages never log or
// print, so all user-facing output happens here.
//
// # Commands
//
//   - apply: run a chain of operations over a bitmap and save the result
//   - info: print the header metadata of a bitmap
//   - show: print a (small) bitmap as colored terminal blocks
//   - rainbow: write a gradient test bitmap
//   - kernel: print a normalized Gaussian kernel
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging via the
// charmbracelet/log library. Loggers are passed through context.Context.
package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// appName is the application name used for display.
const appName = "bmpfx"

// version is injected at build time via -ldflags "-X ...cli.version=v1.2.3".
var version = "dev"

// Execute runs the bmpfx CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand creates the root cobra command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           appName,
		Short:         "bmpfx applies filters and transforms to 24-bit bitmaps",
		Long:          `bmpfx decodes uncompressed 24-bit BMP images, applies a chain of transforms (flips, stretches, color filters, Gaussian blur, edge detection) in the order given, and writes the result back as a bitmap.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s {{.Version}}\n", appName))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newApplyCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newRainbowCmd())
	root.AddCommand(newKernelCmd())

	return root
}
