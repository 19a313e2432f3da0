package bfs

import (
	"fmt"

	"github.com/katalvlaran/mazeway/gridgraph"
)

// Reconstruct walks predecessor links from t.Nodes[end] back to the root
// and returns the coordinates in root-to-end order. If end is the root the
// result is the single start coordinate.
// Returns ErrNodeIndex for an out-of-range end, ErrBrokenChain if the
// chain loops or points outside the tree.
func Reconstruct(t *Tree, end int) ([]gridgraph.Coordinate, error) {
	if t == nil || end < 0 || end >= len(t.Nodes) {
		return nil, fmt.Errorf("%w: %d", ErrNodeIndex, end)
	}
	// build reversed path
	path := make([]gridgraph.Coordinate, 0, t.Nodes[end].Depth+1)
	for cur := end; ; {
		if len(path) == len(t.Nodes) {
			return nil, ErrBrokenChain
		}
		n := t.Nodes[cur]
		path = append(path, n.Coord)
		if n.IsRoot() {
			break
		}
		if n.Predecessor >= len(t.Nodes) {
			return nil, ErrBrokenChain
		}
		cur = n.Predecessor
	}
	// reverse to get root → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// PathTo reconstructs the path from the root to dest.
// Returns ErrNotReached if dest was not discovered.
func (t *Tree) PathTo(dest gridgraph.Coordinate) ([]gridgraph.Coordinate, error) {
	i, ok := t.Find(dest)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	return Reconstruct(t, i)
}
