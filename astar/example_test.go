package astar_test

import (
	"fmt"

	"github.com/katalvlaran/roompath/astar"
	"github.com/katalvlaran/roompath/gridgraph"
)

// ExampleFindPath routes around a wall in a small room and prints the waypoints
// at the centre of each 1×1 cell.
func ExampleFindPath() {
	// 0 = wall, 1 = floor
	room, _ := gridgraph.From2D([][]int{
		{1, 1, 1, 1},
		{1, 0, 0, 1},
		{1, 1, 0, 1},
	}, gridgraph.Conn8)

	centre := func(c astar.Point) astar.WorldPoint {
		return astar.WorldPoint{X: float64(c.X) + 0.5, Y: float64(c.Y) + 0.5}
	}
	res, err := astar.FindPath(
		astar.Point{X: 0, Y: 2},
		astar.Point{X: 3, Y: 2},
		astar.Bounds{Width: room.Width, Height: room.Height},
		room,
		centre,
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("found=%v cost=%d\n", res.Found, res.Cost)
	for _, p := range res.Path {
		fmt.Printf("(%.1f, %.1f)\n", p.X, p.Y)
	}
	// Output:
	// found=true cost=58
	// (0.5, 2.5)
	// (0.5, 1.5)
	// (1.5, 0.5)
	// (2.5, 0.5)
	// (3.5, 1.5)
	// (3.5, 2.5)
}

// ExampleFindPath_noPath shows that an unreachable target is reported through
// Result.Found rather than an error.
func ExampleFindPath_noPath() {
	penalty := astar.PenaltyFunc(func(x, y int) int {
		if x == 1 {
			return 0 // a full-height wall
		}
		return 1
	})
	identity := func(c astar.Point) astar.WorldPoint {
		return astar.WorldPoint{X: float64(c.X), Y: float64(c.Y)}
	}

	res, err := astar.FindPath(astar.Point{X: 0, Y: 0}, astar.Point{X: 2, Y: 2},
		astar.Bounds{Width: 3, Height: 3}, penalty, identity)
	fmt.Println(res.Found, res.Path == nil, err)
	// Output: false true <nil>
}
