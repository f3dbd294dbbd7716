// Package builder provides deterministic topology generators for core.Graph.
//
// Constructors (Path, Cycle, Star, Complete, Grid, RandomSparse) each append a
// fresh, disjoint block of vertices to the graph under construction. Composing
// several constructors in one BuildGraph call therefore yields a disconnected
// graph whose components are the individual blocks, in call order:
//
//	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Path(3))
//	// vertices 0..2 form one path, 3..5 another; no edge joins them.
//
// Vertex numbering inside a block is documented per constructor (Grid is
// row-major: r*cols + c). Stochastic constructors require an RNG resolved
// from WithSeed or WithRand; the same seed and call order always produce the
// same edge list.
//
// Guarantees:
//
//   - Never panics at runtime; invalid parameters return sentinel errors.
//     Option constructors (WithRand(nil)) panic, matching the option policy.
//   - Edge emission order is stable and documented per constructor.
package builder
