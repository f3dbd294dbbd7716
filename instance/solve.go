// SPDX-License-Identifier: MIT
// Package: instance
//
// solve.go - Graph → AllPairs → Search → Reconstruct.

package instance

import (
	"context"
	"fmt"

	"github.com/katalvlaran/escort/bfs"
	"github.com/katalvlaran/escort/core"
	"github.com/katalvlaran/escort/joint"
	"github.com/katalvlaran/escort/matrix"
)

// Solution carries every intermediate product of Solve so callers can verify
// or report without recomputing.
type Solution struct {
	Instance *Instance
	Graph    *core.Graph
	Dist     *matrix.Dense
	Result   *joint.Result
	Path     []joint.Pair // nil when not found
}

// Solve runs the full pipeline on in. ctx bounds both the distance oracle
// and the joint search; opts are passed to joint.Search after the context.
func Solve(ctx context.Context, in *Instance, opts ...joint.Option) (*Solution, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	g, err := in.Graph()
	if err != nil {
		return nil, fmt.Errorf("instance %q: %w", in.Name, err)
	}
	dist, err := bfs.AllPairs(g, bfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("instance %q: distances: %w", in.Name, err)
	}

	sopts := append([]joint.Option{joint.WithContext(ctx)}, opts...)
	res, err := joint.Search(g, dist, in.Problem(), in.Config(), sopts...)
	if err != nil {
		return nil, fmt.Errorf("instance %q: search: %w", in.Name, err)
	}

	sol := &Solution{Instance: in, Graph: g, Dist: dist, Result: res}
	if res.Found {
		if sol.Path, err = res.Path(); err != nil {
			return nil, fmt.Errorf("instance %q: %w", in.Name, err)
		}
	}

	return sol, nil
}
