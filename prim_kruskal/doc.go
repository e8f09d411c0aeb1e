// Package prim_kruskal computes the total weight of a Minimum Spanning Tree (MST)
// on an undirected, weighted *core.Graph with Prim's algorithm, and offers
// Kruskal's algorithm as an independent reference.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - Only the weight is produced. The solvers do not build or return the edge set.
//
// Algorithms Provided
//
//   - Prim(g *core.Graph, opts ...Option) (Result, error)
//
//   - Strategy: grow a single tree from a root (vertex 0 by default). A frontier of
//     candidate vertices lives in an ipq.IndexedPQ keyed by the cheapest known edge
//     into the tree. Pushing a queued vertex lowers its key in place (decrease-key),
//     so the heap never holds more than |V| entries.
//
//   - Lazy deletion: popped vertices that are already finalized are skipped. With
//     decrease-key this check rarely fires, but it guards the accumulator against
//     counting any vertex twice.
//
//   - Complexity: O(E log V) time, O(V) heap memory.
//
//   - Kruskal(g *core.Graph, opts ...Option) (Result, error)
//
//   - Strategy: stable-sort all edges by weight and merge components with a
//     disjoint-set forest (path halving, union by rank).
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
//
// Disconnected graphs
//
//	Prim silently returns the weight of the root's component; Kruskal returns the
//	weight of the whole spanning forest. Neither reports an error unless
//	WithRequireConnected() is given, in which case both return ErrDisconnected.
//
// Error Conditions
//
//   - ErrNilGraph              – graph is nil.
//   - core.ErrVertexOutOfRange – Prim's root is not a vertex of a non-empty graph.
//   - ErrDisconnected          – only under WithRequireConnected.
//   - ErrUnknownMethod         – Compute with an unrecognised MSTOptions.Method.
//
// The empty graph (|V| == 0) is not an error: both solvers return a zero Result.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
