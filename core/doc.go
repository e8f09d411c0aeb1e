// Package core provides the adjacency-list Graph consumed by the MST solvers.
//
// The Graph G = (V, E) is deliberately narrow:
//
//   - Vertices are dense integers 0..n-1, fixed at construction (NewGraph).
//   - Edges are undirected and weighted; AddEdge mirrors every edge into both
//     endpoint lists, so adj[u] holds Edge{v, w} and adj[v] holds Edge{u, w}.
//   - Self-loops and parallel edges are accepted as-is.
//   - Out-of-range vertex ids are rejected with ErrVertexOutOfRange instead of
//     corrupting memory.
//
// Why dense ids?
//
//	Arrays indexed by vertex id keep Prim's bookkeeping (membership set,
//	heap position index) in flat slices with O(1) access and no hashing.
//
// Quick example:
//
//	g, _ := core.NewGraph(3)
//	_ = g.AddEdge(0, 1, 4)
//	_ = g.AddEdge(1, 2, 1)
//	nbrs, _ := g.Neighbors(1) // [{0 4} {2 1}]
//
// Concurrency:
//
//	Graph has no internal locking. Build it on one goroutine, then share it
//	read-only; solvers never mutate it.
package core
