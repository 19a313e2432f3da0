// Package gridgraph treats a 2D boolean maze grid as a graph of passable
// cells connected to their orthogonal open neighbours.
//
// What:
//
//   - Grid is a rectangular bitmap implementing GridSample (true = passable).
//   - Build creates one GraphNode per passable cell and links each node to
//     its up, down, left and right neighbours when those are passable too.
//   - ConnectedComponents groups passable cells into contiguous regions.
//
// Why:
//
//   - Maze solving: the graph is the input of bfs.Traverse.
//   - Diagnostics: a maze whose gates sit in different components has no
//     solution.
//
// Representation:
//
//	Nodes live in an arena (Graph.Nodes) and neighbours are stored as
//	arena indices, so the mutual A↔B links never form pointer cycles.
//	A Coordinate→index map gives O(1) lookup.
//
// Complexity:
//
//   - Build:               O(W×H), Memory: O(P) where P = passable cells.
//   - ConnectedComponents: O(W×H log(W×H)) with the row-major sort, Memory: O(W×H).
//
// Errors:
//
//   - ErrGridNil: Build received a nil grid.
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
