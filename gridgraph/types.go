// Package gridgraph defines core types for turning a boolean maze grid
// into a traversal graph of passable cells.
package gridgraph

import "fmt"

// Coordinate identifies a single grid cell. It is a comparable value type
// and is used directly as a map key.
type Coordinate struct {
	X, Y int
}

// String renders the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns c shifted by the offset d.
func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{X: c.X + d.X, Y: c.Y + d.Y}
}

// Less orders coordinates row-major: by Y, then by X.
func (c Coordinate) Less(o Coordinate) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

// NodeState is the traversal status of a GraphNode.
type NodeState uint8

const (
	Fresh  NodeState = iota // Fresh: not discovered yet.
	Open                    // Open: discovered and waiting in the queue.
	Closed                  // Closed: all neighbours have been examined.
)

// String implements fmt.Stringer.
func (s NodeState) String() string {
	switch s {
	case Fresh:
		return "fresh"
	case Open:
		return "open"
	case Closed:
		return "closed"
	}
	return fmt.Sprintf("NodeState(%d)", uint8(s))
}

// neighbourOffsets lists the orthogonal neighbours in the order they are
// linked: up, down, left, right.
var neighbourOffsets = [4]Coordinate{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// NeighbourOffsets returns a copy of the offsets used to link nodes.
func NeighbourOffsets() [4]Coordinate {
	return neighbourOffsets
}

// GridSample is a read-only rectangular bitmap of passable cells.
// Passable must return false for coordinates outside [0,W)×[0,H).
type GridSample interface {
	Width() int
	Height() int
	Passable(x, y int) bool
}

// GraphNode is one passable cell of the maze.
// Neighbours holds indices into the owning Graph's Nodes slice.
type GraphNode struct {
	Coord      Coordinate
	State      NodeState
	Neighbours []int
}

// Degree returns the number of linked neighbours.
func (n *GraphNode) Degree() int {
	return len(n.Neighbours)
}

// Graph owns every GraphNode built from a single GridSample.
// Nodes are stored in row-major order of their coordinates.
type Graph struct {
	Width, Height int
	Nodes         []GraphNode
	index         map[Coordinate]int
}
