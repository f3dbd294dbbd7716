// Package joint implements the turn-alternating breadth-first search over the
// product state space of two agents A and B moving on one core.Graph.
//
// What
//
//   - A round is one A half-move followed by one B half-move. Either agent may
//     stay or step to a neighbor.
//   - A's half-move is unconstrained. B's half-move keeps a candidate vertex
//     only if dist[A][candidate] > D, where A is A's current (already moved)
//     vertex; every other candidate is pruned and never enqueued.
//     Unreachable distances never satisfy the separation.
//   - Rounds increments exactly when B finishes its half-move.
//   - The first dequeued state that sits on the target pair with the round
//     closed is terminal; BFS order over half-moves makes its round count
//     minimal. When the target pair is dequeued while B still owes its move,
//     the round is closed with B staying in place.
//   - States whose round count reached the budget T are not expanded. When
//     no terminal is found, Result.Rounds is T+1.
//
// State deduplication is an explicit choice (DedupKey):
//
//   - PositionsAndTurn: (A, B, whose turn) is expanded at most once. This is
//     the default and yields exact minima.
//   - PositionsOnly: (A, B) is expanded at most once regardless of turn. It
//     visits fewer states but can miss schedules whose half-move parity
//     differs, so its answer is an upper bound at best.
//
// States live in a flat arena (Tree) and point to their parent by index, so
// Reconstruct walks back from the terminal in O(rounds) without any per-node
// allocation.
//
// Complexity (n = |V|, d = max degree + 1)
//
//   - Time:   O(n²·d) state expansions and edge checks
//   - Memory: O(n²) for the visited planes and the arena
//
// Usage
//
//	dist, _ := bfs.AllPairs(g)
//	res, err := joint.Search(g, dist,
//	    joint.Problem{Start: joint.Pair{A: 0, B: 5}, Target: joint.Pair{A: 5, B: 0}},
//	    joint.Config{Budget: 10, Threshold: 1},
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrDistanceShape, ErrVertexOutOfRange, ErrNegativeBudget,
//	    // ErrOptionViolation, or a context error
//	}
//	if res.Found {
//	    path, _ := res.Path() // len(path) == res.Rounds+1
//	}
package joint
