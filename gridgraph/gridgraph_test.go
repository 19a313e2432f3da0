package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazeway/gridgraph"
)

//----------------------------------------------------------------------------//
// Grid construction tests
//----------------------------------------------------------------------------//

// TestFrom2D_Errors verifies that From2D rejects empty or ragged inputs.
func TestFrom2D_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]bool
		err  error
	}{
		{"EmptyRows", [][]bool{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]bool{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]bool{{true, false}, {true}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.From2D(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("From2D(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGrid_Errors checks that non-positive dimensions are rejected.
func TestNewGrid_Errors(t *testing.T) {
	for _, wh := range [][2]int{{0, 1}, {1, 0}, {-2, 3}} {
		_, err := gridgraph.NewGrid(wh[0], wh[1])
		assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid, "NewGrid(%d,%d)", wh[0], wh[1])
	}
}

// TestFrom2D_DeepCopy ensures later mutation of the input does not leak into the grid.
func TestFrom2D_DeepCopy(t *testing.T) {
	rows := [][]bool{{true, false}}
	g, err := gridgraph.From2D(rows)
	require.NoError(t, err)

	rows[0][1] = true
	assert.False(t, g.Passable(1, 0))
}

// TestGrid_PassableBounds checks Passable/Set/InBounds on a 3×2 grid.
func TestGrid_PassableBounds(t *testing.T) {
	g, err := gridgraph.FromStrings(
		"#.#",
		".#.",
	)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 3, g.Count())

	assert.True(t, g.Passable(1, 0))
	assert.False(t, g.Passable(0, 0))
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
		assert.False(t, g.Passable(xy[0], xy[1]), "Passable(%d,%d)", xy[0], xy[1])
	}

	g.Set(0, 0, true)
	g.Set(9, 9, true) // ignored
	assert.True(t, g.Passable(0, 0))
	assert.Equal(t, 4, g.Count())
}

//----------------------------------------------------------------------------//
// Build tests
//----------------------------------------------------------------------------//

// TestBuild_Errors covers nil and degenerate samples.
func TestBuild_Errors(t *testing.T) {
	_, err := gridgraph.Build(nil)
	assert.ErrorIs(t, err, gridgraph.ErrGridNil)

	_, err = gridgraph.Build(zeroSample{})
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

// zeroSample is a GridSample with no cells.
type zeroSample struct{}

func (zeroSample) Width() int             { return 0 }
func (zeroSample) Height() int            { return 0 }
func (zeroSample) Passable(_, _ int) bool { return false }

// TestBuild_NeighbourOrder verifies node order and the up, down, left,
// right neighbour order on a small grid.
//
//	. . #
//	# . .
func TestBuild_NeighbourOrder(t *testing.T) {
	grid, err := gridgraph.FromStrings(
		"..#",
		"#..",
	)
	require.NoError(t, err)
	g, err := gridgraph.Build(grid)
	require.NoError(t, err)

	require.Equal(t, 4, g.Len())
	wantCoords := []gridgraph.Coordinate{{0, 0}, {1, 0}, {1, 1}, {2, 1}}
	wantNbrs := [][]int{{1}, {2, 0}, {1, 3}, {2}}
	for i, n := range g.Nodes {
		assert.Equal(t, wantCoords[i], n.Coord, "node %d coord", i)
		assert.Equal(t, wantNbrs[i], n.Neighbours, "node %d neighbours", i)
		assert.Equal(t, gridgraph.Fresh, n.State, "node %d state", i)
	}
}

// TestBuild_Mutual checks that adjacency is symmetric on an open 4×4 room
// and that interior nodes have degree 4.
func TestBuild_Mutual(t *testing.T) {
	grid, err := gridgraph.FromStrings(
		"....",
		"....",
		"....",
		"....",
	)
	require.NoError(t, err)
	g, err := gridgraph.Build(grid)
	require.NoError(t, err)

	for i, n := range g.Nodes {
		for _, j := range n.Neighbours {
			assert.Contains(t, g.Nodes[j].Neighbours, i, "link %v→%v not mutual", n.Coord, g.Nodes[j].Coord)
		}
	}
	assert.Equal(t, 4, g.Node(gridgraph.Coordinate{X: 1, Y: 1}).Degree())
	assert.Equal(t, 2, g.Node(gridgraph.Coordinate{X: 0, Y: 0}).Degree())
	assert.Equal(t, 3, g.Node(gridgraph.Coordinate{X: 3, Y: 2}).Degree())
}

// TestBuild_IsolatedAndLookup covers degree-0 nodes and lookups of walls.
func TestBuild_IsolatedAndLookup(t *testing.T) {
	grid, err := gridgraph.FromStrings(
		".#.",
		"###",
	)
	require.NoError(t, err)
	g, err := gridgraph.Build(grid)
	require.NoError(t, err)

	require.Equal(t, 2, g.Len())
	for _, n := range g.Nodes {
		assert.Zero(t, n.Degree())
	}
	assert.Nil(t, g.Node(gridgraph.Coordinate{X: 1, Y: 0}))
	assert.False(t, g.Has(gridgraph.Coordinate{X: -1, Y: 0}))
	i, ok := g.Lookup(gridgraph.Coordinate{X: 2, Y: 0})
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	assert.False(t, g.Adjacent(gridgraph.Coordinate{X: 0, Y: 0}, gridgraph.Coordinate{X: 2, Y: 0}))
}

// TestGraph_Reset verifies that Reset returns every node to Fresh.
func TestGraph_Reset(t *testing.T) {
	grid, _ := gridgraph.FromStrings("...")
	g, err := gridgraph.Build(grid)
	require.NoError(t, err)
	g.Nodes[0].State = gridgraph.Closed
	g.Nodes[2].State = gridgraph.Open

	g.Reset()
	for _, n := range g.Nodes {
		assert.Equal(t, gridgraph.Fresh, n.State)
	}
}

// TestCoordinate_Helpers covers String, Add and Less.
func TestCoordinate_Helpers(t *testing.T) {
	c := gridgraph.Coordinate{X: 2, Y: 5}
	assert.Equal(t, "(2,5)", c.String())
	assert.Equal(t, gridgraph.Coordinate{X: 1, Y: 6}, c.Add(gridgraph.Coordinate{X: -1, Y: 1}))
	assert.True(t, gridgraph.Coordinate{X: 9, Y: 0}.Less(c))
	assert.True(t, gridgraph.Coordinate{X: 1, Y: 5}.Less(c))
	assert.False(t, c.Less(c))
	assert.Equal(t, "closed", gridgraph.Closed.String())
	assert.Equal(t, "NodeState(7)", gridgraph.NodeState(7).String())
}
