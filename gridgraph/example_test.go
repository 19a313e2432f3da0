// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/mazeway/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Build
////////////////////////////////////////////////////////////////////////////////

// ExampleBuild shows how passable cells become nodes and how each node
// lists its open neighbours in up, down, left, right order.
func ExampleBuild() {
	grid, _ := gridgraph.FromStrings(
		"..#",
		"#..",
	)
	g, _ := gridgraph.Build(grid)

	for _, n := range g.Nodes {
		fmt.Printf("%v:", n.Coord)
		for _, j := range n.Neighbours {
			fmt.Printf(" %v", g.Nodes[j].Coord)
		}
		fmt.Println()
	}
	// Output:
	// (0,0): (1,0)
	// (1,0): (1,1) (0,0)
	// (1,1): (1,0) (2,1)
	// (2,1): (1,1)
}

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGraph_ConnectedComponents demonstrates how to find the separate
// regions of a maze. Two gates in different regions can never be joined.
func ExampleGraph_ConnectedComponents() {
	grid, _ := gridgraph.FromStrings(
		"#..#.",
		"..#..",
		".#..#",
	)
	g, _ := gridgraph.Build(grid)

	comps := g.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, c := range comp {
			fmt.Printf(" %v", c)
		}
		fmt.Println()
	}
	// Output:
	// components: 2
	// component 0: (1,0) (2,0) (0,1) (1,1) (0,2)
	// component 1: (4,0) (3,1) (4,1) (2,2) (3,2)
}
