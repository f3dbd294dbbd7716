// Package bfs provides breadth-first hop distances over a core.Graph and the
// all-pairs Distance Oracle built on top of it.
//
// What
//
//   - From(g, src) returns the depth of every vertex from src, in edges, with
//     Unreachable (-1) for vertices outside src's component.
//   - AllPairs(g) runs From once per vertex and packs the rows into a
//     matrix.Dense: dist[u][v] is the unweighted shortest-path hop count.
//   - Supports functional hooks (OnEnqueue, OnVisit), a MaxDepth limit and
//     context cancellation, in the same style for both entry points.
//
// Determinism
//
//	core.Graph neighbors are sorted, and BFS enqueues them in that order,
//	so the visit sequence and every matrix cell are fully reproducible.
//	Calling AllPairs twice on the same graph yields identical matrices.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - From:     Time O(V + E),     Memory O(V)
//   - AllPairs: Time O(V·(V + E)), Memory O(V²) for the result
//
// Usage
//
//	dist, err := bfs.AllPairs(g)
//	if err != nil {
//	    // ErrGraphNil, ErrOptionViolation, or a context error
//	}
//	d, _ := dist.At(u, v) // bfs.Unreachable when u and v are disconnected
//
// Options
//
//   - WithContext(ctx):   cancellation, checked once per dequeued vertex.
//   - WithMaxDepth(d):    stop exploring beyond depth d (>0); 0 means no limit.
//   - WithOnEnqueue(fn):  hook before a vertex is enqueued.
//   - WithOnVisit(fn):    hook when a vertex is dequeued; an error aborts BFS.
package bfs
