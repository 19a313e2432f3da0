package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazeway/raster"
)

// imageFlags are the per-image settings shared by solve, batch and inspect.
// They reach the config in app.override.
type imageFlags struct {
	threshold uint8
	color     string
	suffix    string
}

func (f *imageFlags) registerThreshold(cmd *cobra.Command) {
	cmd.Flags().Uint8Var(&f.threshold, "threshold", raster.DefaultThreshold, "Minimum pixel luminance of a passage (0-255)")
}

func (f *imageFlags) register(cmd *cobra.Command) {
	f.registerThreshold(cmd)
	cmd.Flags().StringVar(&f.color, "color", "", "Path colour as #rrggbb")
	cmd.Flags().StringVar(&f.suffix, "suffix", "", "Suffix for default output names")
}

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <input> [output]",
		Short: "Solve one maze image",
		Long: `Solve one maze image and write it back as PNG with the path painted in.
Without an output path, the input name is reused with "-path.png" in place
of its extension (see --suffix).`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pathColor, err := raster.ParseColor(a.cfg.PathColor)
			if err != nil {
				return a.finish(err)
			}
			input := args[0]
			output := raster.DefaultOutputPath(input, a.cfg.OutputSuffix)
			if len(args) == 2 {
				output = args[1]
			}

			log := a.log.WithField("input", input)
			res, err := a.solveFile(cmd.Context(), log, input, output, pathColor)
			if err != nil {
				return a.finish(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d steps\n", output, res.Steps())
			return a.finish(nil)
		},
	}
	a.image.register(cmd)
	return cmd
}
