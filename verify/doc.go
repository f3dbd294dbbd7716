// Package verify re-checks a produced schedule independently of the search
// that emitted it.
//
// What
//
//   - Verify(claimed, path, dist, D, expected) reports whether the claimed
//     round count is consistent and every pair on the path is separated.
//   - Check applies the same rules but returns a *Failure naming the rule
//     and the offending path index, so batch runs can surface it.
//   - CheckMoves validates the path against the graph: it must start and end
//     at the given pairs and move each agent by at most one edge per round.
//
// Verification never alters a search result; it is observational.
//
// Complexity (L = len(path))
//
//   - Verify / Check: O(L)
//   - CheckMoves:     O(L·log Δ), Δ = maximum degree
package verify
