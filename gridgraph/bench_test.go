package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/roompath/gridgraph"
)

// randomGrid returns an n×n grid with values in [0,4] from a fixed seed.
func randomGrid(n int) [][]int {
	r := rand.New(rand.NewSource(42))
	grid := make([][]int, n)
	for y := 0; y < n; y++ {
		row := make([]int, n)
		for x := 0; x < n; x++ {
			row[x] = r.Intn(5) // values 0..4
		}
		grid[y] = row
	}
	return grid
}

// BenchmarkConnectedComponents measures performance of ConnectedComponents
// on a randomly generated 1000×1000 grid with values in [0,4].
// Complexity: O(W×H×d)
func BenchmarkConnectedComponents(b *testing.B) {
	gg, err := gridgraph.From2D(randomGrid(1000), gridgraph.Conn4)
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

// BenchmarkReachable measures a corner-to-corner reachability query
// on a 1000×1000 grid under Conn8.
// Complexity: O(W×H×d)
func BenchmarkReachable(b *testing.B) {
	grid := randomGrid(1000)
	grid[0][0], grid[999][999] = 1, 1
	gg, err := gridgraph.From2D(grid, gridgraph.Conn8)
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.Reachable(0, 0, 999, 999)
	}
}
