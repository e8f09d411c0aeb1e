// Package mstweight computes the total weight of a minimum spanning tree of a
// weighted, undirected graph.
//
// The work is split across small packages:
//
//	core/          — Graph: dense integer vertices 0..n-1, adjacency lists of Edge{To, Weight}
//	ipq/           — IndexedPQ: binary min-heap with a vertex→slot index for O(log n) decrease-key
//	prim_kruskal/  — Prim (indexed heap, primary) and Kruskal (union-find, reference)
//	builder/       — deterministic graph fixtures for tests and benchmarks
//	cmd/mstweight  — reads "n m" and m "u v w" triples from stdin, prints the weight
//
// Quick example:
//
//	g, _ := core.NewGraph(3)
//	_ = g.AddEdge(0, 1, 4)
//	_ = g.AddEdge(1, 2, 1)
//	_ = g.AddEdge(0, 2, 3)
//	res, _ := prim_kruskal.Prim(g)
//	fmt.Println(res.Weight) // 4
//
// On a disconnected graph Prim returns the weight of the component holding
// the root; pass prim_kruskal.WithRequireConnected() to get ErrDisconnected
// instead.
package mstweight
