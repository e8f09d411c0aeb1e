// Package builder produces deterministic core.Graph fixtures for tests,
// examples and benchmarks of the MST solvers.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(n, opts, cons...): allocate an n-vertex graph and apply constructors in order.
//     – Constructor:       a closure that adds edges over the graph's vertices 0..n-1.
//   - Topologies:
//     – Path, Cycle, Star, Wheel, Complete, Grid(rows, cols): fixed shapes.
//     – RandomSparse(p):   Erdős–Rényi-like sampling, each pair kept with probability p.
//     – RandomConnected(extra): random spanning tree plus extra random edges; always connected.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed/WithRand: RNG for stochastic constructors and weights.
//     – WithWeightFn, WithConstantWeight, WithUniformWeight: edge-weight policy.
//
// Guarantees:
//
//   - Determinism: same n, options, seed and constructor order ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with %w.
package builder
