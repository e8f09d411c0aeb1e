// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It serves as the reference solver that Prim's results are checked against.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mstweight/core"
)

// Kruskal computes the total weight of the minimum spanning forest of graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// On a connected graph the forest is a single tree and its weight equals Prim's.
// On a disconnected graph Kruskal sums every component, whereas Prim only sees
// the root's component.
//
// Error Conditions:
//   - ErrNilGraph    : graph is nil.
//   - ErrDisconnected: only with WithRequireConnected, when the forest has more than one tree.
//
// Steps:
//  1. Validate graph; |V| == 0 → zero Result.
//  2. Collect all edges via graph.Edges(), skipping self-loops.
//  3. Sort edges by ascending weight (stable, so ties keep insertion order).
//  4. Initialize DSU parent[] and rank[] for each vertex.
//  5. For each edge (u,v): if find(u) != find(v), union them and accept the edge.
//  6. Stop early at |V|-1 accepted edges.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph, opts ...Option) (Result, error) {
	// 1. Validate input.
	if graph == nil {
		return Result{}, ErrNilGraph
	}
	cfg := resolve(opts)
	n := graph.VertexCount()
	if n == 0 {
		return Result{}, nil
	}

	// 2. Collect edges, skipping self-loops: they can never join two components.
	all := graph.Edges()
	edges := all[:0]
	for _, e := range all {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	// 3. Stable sort by weight for deterministic tie-breaking.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Disjoint-set forest over dense ids.
	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}

	// Iterative find with path halving.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank; reports whether two sets were merged.
	union := func(u, v int) bool {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return false
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}

		return true
	}

	// 5. Greedily accept the lightest edge joining two components.
	var res Result
	for _, e := range edges {
		if !union(e.From, e.To) {
			continue
		}
		res.Weight += e.Weight
		res.TreeEdges++
		// 6. A spanning tree is complete.
		if res.TreeEdges == n-1 {
			break
		}
	}

	// Isolated vertices are trivial trees, so the forest always covers every vertex.
	res.Spanned = n

	if cfg.RequireConnected && !res.Connected(n) {
		return Result{}, fmt.Errorf("kruskal: forest has %d edges, need %d: %w", res.TreeEdges, n-1, ErrDisconnected)
	}

	return res, nil
}
