// Package bfs provides breadth-first traversal over a gridgraph.Graph that
// builds a spanning tree of predecessor links, plus path reconstruction
// from that tree.
//
// What
//
//   - Traverse explores nodes in non-decreasing distance (edge count) from
//     a start coordinate and returns a Tree:
//   - Nodes: TreeNodes in discovery order, root at index 0
//   - each TreeNode holds its Coordinate, Predecessor index and Depth
//   - Every GraphNode moves Fresh → Open → Closed exactly once, so each
//     reachable cell yields exactly one TreeNode and predecessor chains are
//     acyclic.
//   - Reconstruct (and Tree.PathTo) walk predecessor links back to the root
//     and return the root-to-target coordinate path.
//
// Determinism
//
//	Neighbours are examined in the order gridgraph.Build stores them
//	(up, down, left, right) and the queue is FIFO. When several shortest
//	paths exist, the first-discovered one wins, so repeated runs give
//	identical trees.
//
// Complexity (V = passable cells, E = links)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue and the tree
//
// Usage
//
//	tree, err := bfs.Traverse(g, start)
//	if err != nil {
//	    // ErrGraphNil, ErrEmptyMaze, ErrStartNotFound, ErrOptionViolation,
//	    // context errors or wrapped OnVisit errors
//	}
//	path, err := tree.PathTo(end) // ErrNotReached if end is in another region
//
// Options
//
//   - WithContext(ctx):    cancellation, checked once per dequeued node.
//   - WithMaxDepth(d):     stop discovering beyond depth d (>0).
//   - WithStopAt(c):       end as soon as c is discovered.
//   - WithOnEnqueue(fn):   hook on discovery.
//   - WithOnVisit(fn):     hook on dequeue; returning an error aborts.
package bfs
