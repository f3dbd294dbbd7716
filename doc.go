// Package escort computes minimal-round schedules for two agents that move
// alternately on an undirected graph and must keep their distance.
//
// 🚀 What is escort?
//
//	Agent A and agent B take turns: A moves (or stays), then B moves (or
//	stays); that pair of half-moves is one round. Whenever B moves, the
//	shortest-path distance between A and B's new vertex must exceed D.
//	escort finds the fewest rounds that bring both agents to their targets
//	within a budget T, or reports T+1 when no schedule fits.
//
// ✨ Building blocks
//
//   - Distance oracle: all-pairs hop distances by repeated BFS
//   - Joint-state search: BFS over (A, B, whose turn) with the separation
//     rule applied to every B half-move
//   - Path reconstruction: parent-indexed arena, one pair per round
//   - Verifier: independent re-check of round count, separation and moves
//
// Under the hood, everything is organized under these subpackages:
//
//	core/     - immutable int-indexed undirected Graph
//	matrix/   - dense int matrix used as the distance table
//	bfs/      - single-source BFS and AllPairs
//	joint/    - joint-state search, dedup keys, path reconstruction
//	verify/   - answer and path checks
//	builder/  - deterministic topologies (path, cycle, star, grid, complete, random)
//	instance/ - problem file format, reference answers, Solve pipeline
//	batch/    - concurrent batch runner with Prometheus metrics
//	cmd/escort - CLI: solve, batch, gen
//
// Quick ASCII example:
//
//	    0───1───2
//	    │       │
//	    5───4───3
//
//	A at 0 and B at 3 swap places in 3 rounds with D = 1.
//
//	go install github.com/katalvlaran/escort/cmd/escort@latest
package escort
