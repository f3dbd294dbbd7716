// SPDX-License-Identifier: MIT
// Package: escort/core
//
// graph.go - construction and read-only queries on Graph.
//
// Contract:
//   - NewGraph validates every endpoint before allocating adjacency.
//   - Neighbors returns the internal slice; callers MUST NOT modify it.

package core

import (
	"fmt"
	"slices"
)

// NewGraph builds a Graph with n vertices from an undirected edge list.
// Self-loops are ignored and parallel edges collapse into one.
// Returns ErrNegativeOrder for n < 0 and ErrVertexOutOfRange (wrapped with the
// edge index) when an endpoint lies outside 0..n-1.
// Complexity: O(n + m log m) time, O(n + m) space.
func NewGraph(n int, edges []Edge) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeOrder, n)
	}

	// 1) Validate all endpoints first so a bad list leaves nothing half-built.
	for i, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("%w: edge %d (%d,%d) with n=%d", ErrVertexOutOfRange, i, e.U, e.V, n)
		}
	}

	// 2) Mirror every non-loop edge into both endpoint buckets.
	adj := make([][]int, n)
	for _, e := range edges {
		if e.U == e.V {
			continue
		}
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	// 3) Sort and compact each bucket; count distinct edges once per pair.
	size := 0
	for v := range adj {
		slices.Sort(adj[v])
		adj[v] = slices.Compact(adj[v])
		size += len(adj[v])
	}

	return &Graph{n: n, size: size / 2, adj: adj}, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return g.n }

// Size returns the number of distinct undirected edges.
func (g *Graph) Size() int { return g.size }

// HasVertex reports whether v is a valid vertex index.
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.n }

// Neighbors returns the sorted neighbors of v, or nil when v is out of range.
// The returned slice is shared with the Graph and must be treated as read-only.
func (g *Graph) Neighbors(v int) []int {
	if !g.HasVertex(v) {
		return nil
	}

	return g.adj[v]
}

// Degree returns the number of distinct neighbors of v (0 when out of range).
func (g *Graph) Degree(v int) int { return len(g.Neighbors(v)) }

// HasEdge reports whether u and v are adjacent.
// Complexity: O(log deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return false
	}
	_, found := slices.BinarySearch(g.adj[u], v)

	return found
}

// Edges returns every undirected edge once as (U,V) with U < V, ordered by U
// then V.
// Complexity: O(n + m).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.size)
	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}

	return out
}
