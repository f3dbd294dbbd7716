// Package core provides the immutable, int-indexed undirected Graph that every
// other escort package builds on.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices are the integers 0..n-1; there are no string IDs or metadata.
//   - Edges are undirected and unweighted; (u,v) implies v ∈ N(u) and u ∈ N(v).
//   - Parallel edges collapse into one neighbor entry (idempotent membership).
//   - Self-loops are dropped: every agent may "stay" on its vertex anyway,
//     so a loop never adds a move.
//   - Neighbor slices are sorted ascending, which makes every traversal built
//     on top of core fully deterministic.
//
// A Graph never changes after NewGraph returns, so it can be shared across
// goroutines without locks.
//
// Core Methods:
//
//	NewGraph(n int, edges []Edge) (*Graph, error) // O(n + m log m)
//	Order() int                                   // O(1)
//	Size() int                                    // O(1)
//	HasVertex(v int) bool                         // O(1)
//	Neighbors(v int) []int                        // O(1), read-only view
//	Degree(v int) int                             // O(1)
//	HasEdge(u, v int) bool                        // O(log deg(u))
//	Edges() []Edge                                // O(n + m)
//
// Errors:
//
//	ErrNegativeOrder    - n < 0.
//	ErrVertexOutOfRange - an edge endpoint or query vertex is outside 0..n-1.
package core
