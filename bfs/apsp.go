// SPDX-License-Identifier: MIT
// Package: bfs
//
// apsp.go - all-pairs hop distances by repeated BFS.
//
// Contract:
//   - Row s of the result equals From(g, s).
//   - dist[u][u] == 0; dist is symmetric because core.Graph is undirected.
//   - Unreachable pairs hold Unreachable.
//   - Empty graph → 0×0 matrix, no error.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/escort/core"
	"github.com/katalvlaran/escort/matrix"
)

// AllPairs computes the n×n unweighted shortest-path matrix of g.
// Options apply to every per-source run; hooks observe vertices of all runs.
// Complexity: O(n·(n+m)) time, O(n²) space.
func AllPairs(g *core.Graph, opts ...Option) (*matrix.Dense, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	n := g.Order()
	dist, err := matrix.NewFilled(n, n, Unreachable)
	if err != nil {
		return nil, fmt.Errorf("bfs: AllPairs: %w", err)
	}

	// One walker is reused across sources; depth and queue are reset in run.
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		depth: make([]int, n),
	}
	for s := 0; s < n; s++ {
		w.queue = w.queue[:0]
		if err = w.run(s); err != nil {
			return nil, err
		}
		row, _ := dist.Row(s) // s < n by construction
		copy(row, w.depth)
	}

	return dist, nil
}
