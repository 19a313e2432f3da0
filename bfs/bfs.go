// Package bfs provides breadth-first traversal over a gridgraph.Graph,
// returning a spanning tree of predecessor links in discovery order.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/mazeway/gridgraph"
)

// queueItem pairs a graph node with the tree node created for it.
type queueItem struct {
	node int
	tree int
}

// walker encapsulates mutable traversal state.
type walker struct {
	graph *gridgraph.Graph
	opts  Options
	queue []queueItem
	tree  *Tree
	done  bool
}

// Traverse runs breadth-first search on g from start, applying any number
// of functional Options. Node states are reset to Fresh first, so the same
// graph may be traversed again with identical results.
//
// Neighbours are examined in their stored order and a node moves from Fresh
// to Open exactly once, so each reachable node yields exactly one TreeNode
// and the first-discovered of several equal-length paths wins.
//
// Returns ErrGraphNil, ErrEmptyMaze, ErrStartNotFound, ErrOptionViolation,
// a context error, or a wrapped OnVisit error. No partial tree is returned.
//
// Complexity: O(V + E) time, O(V) memory.
func Traverse(g *gridgraph.Graph, start gridgraph.Coordinate, opts ...Option) (*Tree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g.Len() == 0 {
		return nil, ErrEmptyMaze
	}
	root, ok := g.Lookup(start)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}

	g.Reset()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, g.Len()),
		tree:  &Tree{Nodes: make([]TreeNode, 0, g.Len())},
	}
	w.discover(root, -1, 0)
	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.tree, nil
}

// discover opens node, appends its TreeNode and enqueues the pair.
func (w *walker) discover(node, pred, depth int) {
	n := &w.graph.Nodes[node]
	n.State = gridgraph.Open
	ti := len(w.tree.Nodes)
	w.tree.Nodes = append(w.tree.Nodes, TreeNode{Coord: n.Coord, Predecessor: pred, Depth: depth})
	w.queue = append(w.queue, queueItem{node: node, tree: ti})
	w.opts.OnEnqueue(n.Coord, depth)
	if w.opts.StopAt != nil && *w.opts.StopAt == n.Coord {
		w.done = true
	}
}

// loop processes the queue until it empties, the stop target is found,
// or an error occurs.
func (w *walker) loop() error {
	for len(w.queue) > 0 && !w.done {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.expand(item)
	}
	return nil
}

// visit calls OnVisit for the dequeued node.
func (w *walker) visit(item queueItem) error {
	tn := w.tree.Nodes[item.tree]
	if err := w.opts.OnVisit(tn.Coord, tn.Depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", tn.Coord, err)
	}
	return nil
}

// expand discovers every Fresh neighbour of item, then closes it.
func (w *walker) expand(item queueItem) {
	next := w.tree.Nodes[item.tree].Depth + 1
	n := &w.graph.Nodes[item.node]
	if w.opts.MaxDepth == 0 || next <= w.opts.MaxDepth {
		for _, nb := range n.Neighbours {
			if w.graph.Nodes[nb].State != gridgraph.Fresh {
				continue
			}
			w.discover(nb, item.tree, next)
			if w.done {
				break
			}
		}
	}
	n.State = gridgraph.Closed
}
