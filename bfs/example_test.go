package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/escort/bfs"
	"github.com/katalvlaran/escort/builder"
)

// ExampleAllPairs prints the hop-distance table of a 4-cycle.
func ExampleAllPairs() {
	g, err := builder.BuildGraph(nil, builder.Cycle(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	dist, err := bfs.AllPairs(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(dist)
	// Output:
	// [0, 1, 2, 1]
	// [1, 0, 1, 2]
	// [2, 1, 0, 1]
	// [1, 2, 1, 0]
}

// ExampleFrom shows Unreachable on a graph with two components.
func ExampleFrom() {
	g, _ := builder.BuildGraph(nil, builder.Path(3), builder.Path(1))
	depth, _ := bfs.From(g, 0)
	fmt.Println(depth)
	// Output:
	// [0 1 2 -1]
}
