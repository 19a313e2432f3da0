package bfs_test

import (
	"testing"

	"github.com/katalvlaran/mazeway/bfs"
	"github.com/katalvlaran/mazeway/gridgraph"
)

// serpentine builds an n×n maze with a single winding corridor, so BFS has
// to walk every open cell in one long chain.
func serpentine(b *testing.B, n int) *gridgraph.Graph {
	b.Helper()
	grid, err := gridgraph.NewGrid(n, n)
	if err != nil {
		b.Fatal(err)
	}
	for y := 0; y < n; y += 2 {
		for x := 0; x < n; x++ {
			grid.Set(x, y, true)
		}
		if y+1 < n {
			if (y/2)%2 == 0 {
				grid.Set(n-1, y+1, true)
			} else {
				grid.Set(0, y+1, true)
			}
		}
	}
	g, err := gridgraph.Build(grid)
	if err != nil {
		b.Fatal(err)
	}
	return g
}

// BenchmarkTraverse_Serpentine measures BFS on a 501×501 winding corridor.
func BenchmarkTraverse_Serpentine(b *testing.B) {
	g := serpentine(b, 501)

	b.ReportAllocs()
	b.SetBytes(int64(g.Len()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Traverse(g, gridgraph.Coordinate{})
	}
}

// BenchmarkTraverse_OpenRoom runs BFS on a fully open 500×500 room.
func BenchmarkTraverse_OpenRoom(b *testing.B) {
	grid, _ := gridgraph.NewGrid(500, 500)
	for y := 0; y < 500; y++ {
		for x := 0; x < 500; x++ {
			grid.Set(x, y, true)
		}
	}
	g, _ := gridgraph.Build(grid)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Traverse(g, gridgraph.Coordinate{})
	}
}
