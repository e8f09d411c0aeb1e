// File: methods.go
// Role: Edge insertion and read-only queries over the adjacency lists.
// Determinism:
//   - Neighbors(u) returns half-edges in insertion order.
//   - Edges() returns catalogue entries in insertion order.

package core

import "fmt"

// AddEdge inserts an undirected edge u—v with the given weight.
//
// Steps:
//  1. Validate both endpoints lie in [0, n).
//  2. Append Edge{v, weight} to adj[u].
//  3. Append Edge{u, weight} to adj[v].
//  4. Record WeightedEdge{u, v, weight} in the catalogue.
//
// Self-loops (u == v) are accepted and produce two entries in adj[u].
// Parallel edges are accepted as well.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight int64) error {
	if err := g.checkVertex(u); err != nil {
		return fmt.Errorf("AddEdge(%d, %d): %w", u, v, err)
	}
	if err := g.checkVertex(v); err != nil {
		return fmt.Errorf("AddEdge(%d, %d): %w", u, v, err)
	}

	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: weight})
	g.adj[v] = append(g.adj[v], Edge{To: u, Weight: weight})
	g.edges = append(g.edges, WeightedEdge{From: u, To: v, Weight: weight})

	return nil
}

// Neighbors returns the half-edges leaving u in insertion order.
//
// The returned slice aliases the graph's storage; treat it as read-only.
// Calling Neighbors again yields the same sequence, so iteration is restartable.
//
// Errors:
//   - ErrVertexOutOfRange if u is outside [0, n).
//
// Complexity: O(1).
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if err := g.checkVertex(u); err != nil {
		return nil, err
	}

	return g.adj[u], nil
}

// Degree reports how many half-edges leave u. A self-loop counts twice.
func (g *Graph) Degree(u int) (int, error) {
	if err := g.checkVertex(u); err != nil {
		return 0, err
	}

	return len(g.adj[u]), nil
}

// VertexCount returns n, the number of vertices fixed at construction.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of AddEdge calls that succeeded.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns a copy of the edge catalogue, one entry per AddEdge call,
// in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []WeightedEdge {
	out := make([]WeightedEdge, len(g.edges))
	copy(out, g.edges)

	return out
}

// HasVertex reports whether id lies in [0, n).
func (g *Graph) HasVertex(id int) bool {
	return id >= 0 && id < len(g.adj)
}

// checkVertex returns ErrVertexOutOfRange (with the offending id) when id is not a vertex.
func (g *Graph) checkVertex(id int) error {
	if !g.HasVertex(id) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrVertexOutOfRange, id, len(g.adj))
	}

	return nil
}
