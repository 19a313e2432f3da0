package solver

import (
	"fmt"

	"github.com/katalvlaran/mazeway/gridgraph"
)

// Diagnosis describes how the passable cells of a maze are partitioned
// relative to its two gates. Component indices are -1 for gates that are
// not passable cells.
type Diagnosis struct {
	Components     int
	StartComponent int
	EndComponent   int
}

// Connected reports whether both gates lie in the same region.
func (d Diagnosis) Connected() bool {
	return d.StartComponent >= 0 && d.StartComponent == d.EndComponent
}

// String implements fmt.Stringer.
func (d Diagnosis) String() string {
	return fmt.Sprintf("%d regions, start in %d, end in %d", d.Components, d.StartComponent, d.EndComponent)
}

// Diagnose labels the connected regions of grid and reports which region
// each gate belongs to. Useful to explain an ErrNoSolution.
func Diagnose(grid gridgraph.GridSample, start, end gridgraph.Coordinate) (Diagnosis, error) {
	g, err := gridgraph.Build(grid)
	if err != nil {
		return Diagnosis{}, fmt.Errorf("solver: build graph: %w", err)
	}
	comps := g.ConnectedComponents()
	d := Diagnosis{Components: len(comps), StartComponent: -1, EndComponent: -1}
	for id, comp := range comps {
		for _, c := range comp {
			if c == start {
				d.StartComponent = id
			}
			if c == end {
				d.EndComponent = id
			}
		}
	}
	return d, nil
}
