package verify_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/escort/bfs"
	"github.com/katalvlaran/escort/builder"
	"github.com/katalvlaran/escort/joint"
	"github.com/katalvlaran/escort/verify"
)

// ExampleCheck rejects a path whose last pair sits exactly at the threshold.
func ExampleCheck() {
	g, _ := builder.BuildGraph(nil, builder.Path(5))
	dist, _ := bfs.AllPairs(g)
	path := []joint.Pair{{A: 0, B: 4}, {A: 1, B: 4}, {A: 2, B: 4}}

	fmt.Println(verify.Check(2, path, dist, 1, nil))

	err := verify.Check(2, path, dist, 2, nil)
	var f *verify.Failure
	if errors.As(err, &f) {
		fmt.Println(errors.Is(err, verify.ErrUnsafePair), f.Index)
	}
	// Output:
	// <nil>
	// true 2
}
