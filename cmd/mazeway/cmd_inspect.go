package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazeway/raster"
	"github.com/katalvlaran/mazeway/solver"
)

func newInspectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <input>",
		Short: "Describe a maze image without solving it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.inspect(cmd.OutOrStdout(), args[0])
			return a.finish(err)
		},
	}
	a.image.registerThreshold(cmd)
	return cmd
}

// inspect prints size, passable cells, gates and region layout of input.
// A maze without gates is still described; only the gate dependent lines
// are omitted.
func (a *app) inspect(w io.Writer, input string) error {
	_, grid, err := readGrid(input, a.cfg.Threshold)
	if err != nil {
		return err
	}
	gates := raster.FindGates(grid)

	fmt.Fprintf(w, "size:     %dx%d\n", grid.Width(), grid.Height())
	fmt.Fprintf(w, "passable: %d\n", grid.Count())
	fmt.Fprintf(w, "gates:    %d\n", len(gates))

	start, end, err := raster.PickGates(gates)
	if err != nil {
		a.log.WithField("input", input).WithError(err).Warn("maze cannot be solved")
		return nil
	}
	d, err := solver.Diagnose(grid, start, end)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "regions:  %d\n", d.Components)
	fmt.Fprintf(w, "entrance: %s\n", start)
	fmt.Fprintf(w, "exit:     %s\n", end)
	fmt.Fprintf(w, "solvable: %t\n", d.Connected())
	return nil
}
