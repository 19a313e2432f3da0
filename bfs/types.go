// Package bfs provides tunable options, error definitions and the spanning
// tree produced by breadth-first traversal of a gridgraph.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mazeway/gridgraph"
)

// Sentinel errors for BFS execution and path reconstruction.
var (
	// ErrStartNotFound is returned when the start coordinate is not a passable cell.
	ErrStartNotFound = errors.New("bfs: start coordinate not found")

	// ErrEmptyMaze is returned when the graph has no nodes at all.
	// It wraps ErrStartNotFound, since no start can resolve in an empty maze.
	ErrEmptyMaze = fmt.Errorf("%w: maze has no passable cells", ErrStartNotFound)

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNodeIndex is returned when a tree index is out of range.
	ErrNodeIndex = errors.New("bfs: tree node index out of range")

	// ErrNotReached is returned when a coordinate was never discovered.
	ErrNotReached = errors.New("bfs: coordinate not reached")

	// ErrBrokenChain is returned when a predecessor chain does not end at the root.
	ErrBrokenChain = errors.New("bfs: predecessor chain does not reach the root")
)

// Option configures Traverse via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks to customize a traversal.
type Options struct {
	// Ctx allows cancellation; checked once per dequeued node.
	Ctx context.Context

	// OnEnqueue is called when a node is discovered, root included.
	OnEnqueue func(c gridgraph.Coordinate, depth int)

	// OnVisit is called when a node is dequeued. A non-nil error aborts.
	OnVisit func(c gridgraph.Coordinate, depth int) error

	// MaxDepth, if > 0, stops discovery beyond this depth. 0 means no limit.
	MaxDepth int

	// StopAt, if set, ends the traversal as soon as that coordinate is discovered.
	StopAt *gridgraph.Coordinate

	err error
}

// DefaultOptions returns Options with a background context, no-op hooks,
// no depth limit and no early stop.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(gridgraph.Coordinate, int) {},
		OnVisit:   func(gridgraph.Coordinate, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run when a node is discovered.
func WithOnEnqueue(fn func(c gridgraph.Coordinate, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on dequeue; returning an error
// from it stops the traversal.
func WithOnVisit(fn func(c gridgraph.Coordinate, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits discovery to nodes at most d edges from the start.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithStopAt ends the traversal once c has been discovered. Discovery
// order, and therefore the tie-break between equal-length paths, is the
// same as for a full traversal.
func WithStopAt(c gridgraph.Coordinate) Option {
	return func(o *Options) {
		o.StopAt = &c
	}
}

// TreeNode is one cell's position within the BFS spanning tree.
// Predecessor is the index of the node it was discovered from, or -1 for the root.
type TreeNode struct {
	Coord       gridgraph.Coordinate
	Predecessor int
	Depth       int
}

// IsRoot reports whether n has no predecessor.
func (n TreeNode) IsRoot() bool {
	return n.Predecessor < 0
}

// Tree is the spanning tree built by Traverse. Nodes are stored in
// discovery order with the root at index 0.
type Tree struct {
	Nodes []TreeNode
}

// Len returns the number of discovered nodes.
func (t *Tree) Len() int {
	return len(t.Nodes)
}

// Root returns the root coordinate. The tree must not be empty.
func (t *Tree) Root() gridgraph.Coordinate {
	return t.Nodes[0].Coord
}

// Find returns the index of the first node whose coordinate equals c.
func (t *Tree) Find(c gridgraph.Coordinate) (int, bool) {
	for i := range t.Nodes {
		if t.Nodes[i].Coord == c {
			return i, true
		}
	}
	return -1, false
}

// Order returns the coordinates in discovery order.
func (t *Tree) Order() []gridgraph.Coordinate {
	out := make([]gridgraph.Coordinate, len(t.Nodes))
	for i, n := range t.Nodes {
		out[i] = n.Coord
	}
	return out
}

// Layers returns the number of BFS layers, i.e. the maximum depth plus one.
func (t *Tree) Layers() int {
	if len(t.Nodes) == 0 {
		return 0
	}
	return t.Nodes[len(t.Nodes)-1].Depth + 1
}
