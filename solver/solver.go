// Package solver wires gridgraph and bfs together: it builds the graph of
// a maze grid, traverses it from the entrance and reconstructs the path to
// the exit.
//
// The package has no side effects: drawing and persisting the path is left
// to the caller.
package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mazeway/bfs"
	"github.com/katalvlaran/mazeway/gridgraph"
)

// ErrNoSolution indicates the end coordinate is never discovered from start.
var ErrNoSolution = errors.New("solver: no path between start and end")

// Result is the outcome of a successful solve.
type Result struct {
	// Path lists coordinates from start to end inclusive.
	Path []gridgraph.Coordinate
	// Explored is the number of cells discovered by the traversal.
	Explored int
	// Passable is the number of open cells in the grid.
	Passable int
	// Layers is the number of BFS layers of the spanning tree.
	Layers int
}

// Steps returns the number of moves along the path.
func (r *Result) Steps() int {
	return len(r.Path) - 1
}

// Solve returns the shortest path from start to end through grid.
// Returns ErrNoSolution when end is unreachable, and wrapped bfs or
// gridgraph sentinels (e.g. bfs.ErrStartNotFound) for invalid input.
func Solve(grid gridgraph.GridSample, start, end gridgraph.Coordinate) ([]gridgraph.Coordinate, error) {
	res, err := SolveContext(context.Background(), grid, start, end)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// SolveContext is Solve with cancellation, extra traversal options and
// traversal statistics.
//
// Steps:
//  1. Build the graph (gridgraph.Build).
//  2. Traverse it from start (bfs.Traverse).
//  3. Find the first tree node at end, or fail with ErrNoSolution.
//  4. Reconstruct the root-to-end path (bfs.Reconstruct).
func SolveContext(
	ctx context.Context,
	grid gridgraph.GridSample,
	start, end gridgraph.Coordinate,
	opts ...bfs.Option,
) (*Result, error) {
	g, err := gridgraph.Build(grid)
	if err != nil {
		return nil, fmt.Errorf("solver: build graph: %w", err)
	}

	opts = append([]bfs.Option{bfs.WithContext(ctx)}, opts...)
	tree, err := bfs.Traverse(g, start, opts...)
	if err != nil {
		return nil, fmt.Errorf("solver: traverse from %v: %w", start, err)
	}

	idx, ok := tree.Find(end)
	if !ok {
		return nil, fmt.Errorf("%w: %v is unreachable from %v", ErrNoSolution, end, start)
	}
	path, err := bfs.Reconstruct(tree, idx)
	if err != nil {
		return nil, fmt.Errorf("solver: reconstruct path: %w", err)
	}

	return &Result{
		Path:     path,
		Explored: tree.Len(),
		Passable: g.Len(),
		Layers:   tree.Layers(),
	}, nil
}
