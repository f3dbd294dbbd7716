package joint_test

import (
	"fmt"

	"github.com/katalvlaran/escort/bfs"
	"github.com/katalvlaran/escort/builder"
	"github.com/katalvlaran/escort/joint"
)

// ExampleSearch swaps two agents across a 6-cycle while keeping them more
// than one hop apart after every B move.
func ExampleSearch() {
	g, _ := builder.BuildGraph(nil, builder.Cycle(6))
	dist, _ := bfs.AllPairs(g)

	res, err := joint.Search(g, dist,
		joint.Problem{Start: joint.Pair{A: 0, B: 3}, Target: joint.Pair{A: 3, B: 0}},
		joint.Config{Budget: 10, Threshold: 1},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.Path()
	fmt.Println(res.Rounds)
	fmt.Println(path)
	// Output:
	// 3
	// [{0 3} {1 4} {2 5} {3 0}]
}
