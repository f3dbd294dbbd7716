// Package instance reads and writes the escort problem file format and
// wires the solving pipeline together.
//
// File format (whitespace separated, vertices 1-indexed):
//
//	n m T D
//	startA targetA startB targetB
//	u1 v1
//	...        (m edge lines)
//
// Internally every vertex is 0-indexed; conversion happens only here.
//
// What
//
//   - Parse / ParseFile build an *Instance; malformed input wraps ErrMalformed
//     with the offending line number.
//   - Write emits an Instance in the same format (used by generators).
//   - Solve runs bfs.AllPairs and joint.Search and reconstructs the path.
//   - WriteResult prints the answer: the round count, then A's and B's
//     positions per round (1-indexed), or just T+1 when infeasible.
//   - ReadAnswer / ReadAnswerFile / AnswerPath handle reference ".out" files,
//     each holding the expected minimal round count.
package instance
