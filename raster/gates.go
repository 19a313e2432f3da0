package raster

import "github.com/katalvlaran/mazeway/gridgraph"

// FindGates returns every passable border cell of grid, without duplicates.
// The scan covers the top and bottom rows column by column (for each x,
// y=0 then y=H-1), then the left and right columns (x=0 then x=W-1, y
// ascending). Corner cells are reported once, at their first sighting.
func FindGates(grid gridgraph.GridSample) []gridgraph.Coordinate {
	w, h := grid.Width(), grid.Height()
	seen := make(map[gridgraph.Coordinate]bool)
	var gates []gridgraph.Coordinate
	add := func(x, y int) {
		c := gridgraph.Coordinate{X: x, Y: y}
		if grid.Passable(x, y) && !seen[c] {
			seen[c] = true
			gates = append(gates, c)
		}
	}

	// horizontal borders
	for x := 0; x < w; x++ {
		add(x, 0)
		add(x, h-1)
	}
	// vertical borders
	for _, x := range []int{0, w - 1} {
		for y := 0; y < h; y++ {
			add(x, y)
		}
	}
	return gates
}

// PickGates returns the first and last gate in scan order as entrance and
// exit. Extra gates in between are ignored; callers may warn about them.
// A single gate is both entrance and exit, which solves to a one-cell path.
// Returns ErrGatesNotFound when there is no gate at all.
func PickGates(gates []gridgraph.Coordinate) (start, end gridgraph.Coordinate, err error) {
	if len(gates) == 0 {
		return start, end, ErrGatesNotFound
	}
	return gates[0], gates[len(gates)-1], nil
}
