// SPDX-License-Identifier: MIT
// Package: escort/builder
//
// api.go - public entry points.
//
// Design contract:
//   - One orchestrator: BuildEdges(bopts, cons...) resolves cfg and runs cons in order.
//   - Each constructor appends a disjoint vertex block starting at the current order.
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical edge lists.

package builder

import (
	"fmt"

	"github.com/katalvlaran/escort/core"
)

// Topology is an edge list under construction. Constructors only append.
type Topology struct {
	N     int
	Edges []core.Edge
}

// addBlock reserves k new vertices and returns the first index.
func (t *Topology) addBlock(k int) int {
	base := t.N
	t.N += k

	return base
}

// link appends the undirected edge (u,v).
func (t *Topology) link(u, v int) {
	t.Edges = append(t.Edges, core.Edge{U: u, V: v})
}

// Constructor appends one block to t using the resolved configuration.
// Implementations validate parameters first and never panic.
type Constructor func(t *Topology, cfg builderConfig) error

// BuildEdges resolves options and applies all constructors in order,
// returning the accumulated vertex count and edge list.
// Constructor errors are wrapped with "BuildEdges: %w".
// Complexity: Σ cost of each constructor.
func BuildEdges(bopts []BuilderOption, cons ...Constructor) (*Topology, error) {
	cfg := newBuilderConfig(bopts...)
	t := &Topology{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildEdges: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(t, cfg); err != nil {
			return nil, fmt.Errorf("BuildEdges: %w", err)
		}
	}

	return t, nil
}

// BuildGraph is BuildEdges followed by core.NewGraph.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	t, err := BuildEdges(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := core.NewGraph(t.N, t.Edges)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %v", ErrConstructFailed, err)
	}

	return g, nil
}

// GridIndex returns the vertex index of cell (r,c) inside a Grid block with
// the given column count, relative to the block start.
func GridIndex(r, c, cols int) int { return r*cols + c }
