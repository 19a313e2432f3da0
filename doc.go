// Package mazeway solves raster mazes: every pixel is a cell, light pixels
// are passages, dark pixels are walls, and two openings on the border mark
// the entrance and the exit.
//
// What is mazeway?
//
//	A small pipeline of focused packages:
//		• gridgraph: bool grid → graph of passable cells (4-neighbourhood)
//		• bfs:       breadth-first spanning tree + path reconstruction
//		• solver:    build → traverse → reconstruct, plus region diagnosis
//		• raster:    image decoding, thresholding, gate search, path drawing
//		• config, logging, metrics: the ambient layer of the CLI
//		• cmd/mazeway: solve, batch and inspect commands
//
// Neighbours are always examined in the order up, down, left, right, so
// among several shortest paths the same one is returned on every run.
//
// Quick ASCII example (# wall, . passage, S/E gates):
//
//	S##      S##
//	.##  →   *##
//	..E      **E
//
// Library use:
//
//	grid, _ := gridgraph.FromStrings(".##", ".##", "...")
//	path, err := solver.Solve(grid, gridgraph.Coordinate{X: 0, Y: 0}, gridgraph.Coordinate{X: 2, Y: 2})
//	// path: (0,0) (0,1) (0,2) (1,2) (2,2)
//
// Command line:
//
//	mazeway solve maze.png            # writes maze-path.png
//	mazeway batch --jobs 8 mazes/*.png
//	mazeway inspect maze.png
package mazeway
