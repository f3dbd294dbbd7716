// SPDX-License-Identifier: MIT
// Package: escort/core
//
// types.go - Graph and Edge value types plus the package sentinel errors.

package core

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrNegativeOrder indicates that a negative vertex count was requested.
	ErrNegativeOrder = errors.New("core: negative vertex count")

	// ErrVertexOutOfRange indicates a vertex index outside 0..n-1.
	ErrVertexOutOfRange = errors.New("core: vertex out of range")
)

// Edge is one undirected edge between U and V (0-indexed).
type Edge struct {
	U int
	V int
}

// Graph is an immutable undirected, unweighted graph over vertices 0..n-1.
//
// adj[v] holds the sorted, duplicate-free neighbors of v; it never contains v.
// size counts distinct undirected edges after deduplication.
type Graph struct {
	n    int
	size int
	adj  [][]int
}
