// Package core defines the dense-integer Graph and Edge types used by the
// MST solvers, together with the sentinel errors they return.
//
// Vertices are identified by integers in [0, n). There is no Vertex object:
// existence is implied by the bounds fixed at construction time.
//
// Errors:
//
//	ErrNegativeVertexCount - NewGraph called with n < 0.
//	ErrTooManyVertices     - NewGraph called with n > MaxVertices.
//	ErrVertexOutOfRange    - a vertex id falls outside [0, n).
package core

import (
	"errors"
	"fmt"
)

// MaxVertices caps the vertex count accepted by NewGraph (2^26 adjacency
// lists, about 1.5 GiB of slice headers).
const MaxVertices = 1 << 26

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexCount indicates NewGraph was asked for fewer than zero vertices.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")

	// ErrTooManyVertices indicates NewGraph was asked for more than MaxVertices vertices.
	ErrTooManyVertices = errors.New("core: too many vertices")

	// ErrVertexOutOfRange indicates an operation referenced a vertex id outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")
)

// Edge is one half of an undirected connection, stored in the adjacency list
// of the vertex it leaves from.
//
// Edges are values: once appended by AddEdge they are never mutated.
type Edge struct {
	// To is the destination vertex id.
	To int

	// Weight is the cost of traversing the edge. Negative values are not rejected.
	Weight int64
}

// WeightedEdge is the catalogue form of an undirected edge, recorded once per
// AddEdge call with both endpoints.
type WeightedEdge struct {
	From   int
	To     int
	Weight int64
}

// Graph is an undirected, weighted adjacency-list graph over vertices 0..n-1.
//
// The vertex count is fixed by NewGraph. Every AddEdge(u, v, w) stores Edge{v, w}
// in adj[u] and Edge{u, w} in adj[v], so the lists stay symmetric.
//
// Graph carries no locks: it is built once and then only read by solvers, which
// run on a single goroutine.
type Graph struct {
	// adj[u] lists the half-edges leaving u in insertion order.
	adj [][]Edge

	// edges keeps one WeightedEdge per AddEdge call, in insertion order.
	edges []WeightedEdge
}

// NewGraph allocates a Graph with n empty adjacency lists.
// n == 0 yields the valid empty graph.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}
	if n > MaxVertices {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyVertices, n, MaxVertices)
	}

	return &Graph{
		adj: make([][]Edge, n),
	}, nil
}
