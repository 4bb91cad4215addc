package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvpath/bfs"
	"github.com/katalvlaran/lvpath/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid (9 vertices).
// Vertex i*3+j is cell (i, j); layers follow Manhattan distance from 0.
func ExampleBFS_gridTraversal() {
	g, _ := core.NewGraph(9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_ = g.AddUndirected(i*3+j, i*3+j+1, 1)
			}
			if i+1 < 3 {
				_ = g.AddUndirected(i*3+j, (i+1)*3+j, 1)
			}
		}
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Depth)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// [0 1 2 1 2 3 2 3 4]
}

// ExampleResult_PathTo finds the fewest-hop route when a cheaper-looking
// long route exists: BFS ignores weights.
func ExampleResult_PathTo() {
	g, _ := core.NewGraph(6)
	// long: 0→1→2→3→5, all weight 1
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(2, 3, 1)
	_ = g.AddEdge(3, 5, 1)
	// short: 0→4→5, heavy
	_ = g.AddEdge(0, 4, 100)
	_ = g.AddEdge(4, 5, 100)

	res, _ := bfs.BFS(g, 0)
	path, _ := res.PathTo(5)
	fmt.Println(path)
	// Output:
	// [0 4 5]
}
