package gridgraph

// Grid is a rectangular, row-major boolean bitmap. It implements GridSample.
type Grid struct {
	w, h  int
	cells []bool
}

// NewGrid returns a w×h grid with every cell blocked.
// Returns ErrEmptyGrid if either dimension is not positive.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid{w: w, h: h, cells: make([]bool, w*h)}, nil
}

// From2D builds a Grid from rows of cells, rows[y][x].
// It deep-copies the input.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
func From2D(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, _ := NewGrid(w, h)
	for y, row := range rows {
		copy(g.cells[y*w:(y+1)*w], row)
	}
	return g, nil
}

// FromStrings builds a Grid from ASCII rows where '#' is a wall and any
// other byte is passable. Rows must have equal length.
func FromStrings(rows ...string) (*Grid, error) {
	cells := make([][]bool, len(rows))
	for y, row := range rows {
		cells[y] = make([]bool, len(row))
		for x := 0; x < len(row); x++ {
			cells[y][x] = row[x] != '#'
		}
	}
	return From2D(cells)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Passable reports whether (x,y) is an open cell. Out-of-range cells are walls.
func (g *Grid) Passable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[y*g.w+x]
}

// Set marks (x,y) passable or blocked. Out-of-range writes are ignored.
func (g *Grid) Set(x, y int, passable bool) {
	if g.InBounds(x, y) {
		g.cells[y*g.w+x] = passable
	}
}

// Count returns the number of passable cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Build converts a GridSample into a Graph: one node per passable cell,
// linked to each orthogonal neighbour that is passable as well.
// Links are added in NeighbourOffsets order, so adjacency is mutual and
// deterministic. Isolated cells produce degree-0 nodes.
// Complexity: O(W×H) time, O(P) memory.
func Build(grid GridSample) (*Graph, error) {
	if grid == nil {
		return nil, ErrGridNil
	}
	w, h := grid.Width(), grid.Height()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}

	g := &Graph{
		Width:  w,
		Height: h,
		index:  make(map[Coordinate]int),
	}
	// first pass: one node per passable cell
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !grid.Passable(x, y) {
				continue
			}
			c := Coordinate{X: x, Y: y}
			g.index[c] = len(g.Nodes)
			g.Nodes = append(g.Nodes, GraphNode{Coord: c, State: Fresh})
		}
	}
	// second pass: link neighbours; out-of-range coordinates simply miss the map
	for i := range g.Nodes {
		n := &g.Nodes[i]
		for _, d := range neighbourOffsets {
			if j, ok := g.index[n.Coord.Add(d)]; ok {
				n.Neighbours = append(n.Neighbours, j)
			}
		}
	}
	return g, nil
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.Nodes)
}

// Lookup returns the arena index of the node at c.
func (g *Graph) Lookup(c Coordinate) (int, bool) {
	i, ok := g.index[c]
	return i, ok
}

// Node returns the node at c, or nil if c is not a passable cell.
func (g *Graph) Node(c Coordinate) *GraphNode {
	i, ok := g.index[c]
	if !ok {
		return nil
	}
	return &g.Nodes[i]
}

// Has reports whether c is a node of the graph.
func (g *Graph) Has(c Coordinate) bool {
	_, ok := g.index[c]
	return ok
}

// Reset puts every node back into the Fresh state.
func (g *Graph) Reset() {
	for i := range g.Nodes {
		g.Nodes[i].State = Fresh
	}
}

// Adjacent reports whether a and b are linked nodes.
func (g *Graph) Adjacent(a, b Coordinate) bool {
	ia, ok := g.index[a]
	if !ok {
		return false
	}
	ib, ok := g.index[b]
	if !ok {
		return false
	}
	for _, j := range g.Nodes[ia].Neighbours {
		if j == ib {
			return true
		}
	}
	return false
}
