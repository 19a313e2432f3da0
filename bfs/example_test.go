package bfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mazeway/bfs"
	"github.com/katalvlaran/mazeway/gridgraph"
)

// ExampleTraverse demonstrates BFS layering in an open 3×3 room.
// Cells come out in non-decreasing distance from the top-left corner.
func ExampleTraverse() {
	grid, _ := gridgraph.FromStrings(
		"...",
		"...",
		"...",
	)
	g, _ := gridgraph.Build(grid)

	tree, err := bfs.Traverse(g, gridgraph.Coordinate{X: 0, Y: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	layers := make([]string, 0, tree.Len())
	for _, n := range tree.Nodes {
		layers = append(layers, fmt.Sprintf("%v@%d", n.Coord, n.Depth))
	}
	fmt.Println(strings.Join(layers, " "))
	// Output:
	// (0,0)@0 (0,1)@1 (1,0)@1 (0,2)@2 (1,1)@2 (2,0)@2 (1,2)@3 (2,1)@3 (2,2)@4
}

// ExampleTree_PathTo finds the fewest-step route through a small maze where
// the exit can be reached around a long loop or straight down a corridor.
func ExampleTree_PathTo() {
	grid, _ := gridgraph.FromStrings(
		"#.#####",
		"#.....#",
		"#.###.#",
		"#.###.#",
		"#.....#",
		"#.#####",
	)
	g, _ := gridgraph.Build(grid)

	tree, _ := bfs.Traverse(g, gridgraph.Coordinate{X: 1, Y: 0})
	path, err := tree.PathTo(gridgraph.Coordinate{X: 1, Y: 5})
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(len(path)-1, "steps")
	fmt.Println(path)
	// Output:
	// 5 steps
	// [(1,0) (1,1) (1,2) (1,3) (1,4) (1,5)]
}
