// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the tree from a root vertex using an indexed min-heap with decrease-key.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/mstweight/core"
	"github.com/katalvlaran/mstweight/ipq"
)

// Prim computes the total weight of the Minimum Spanning Tree containing the
// root vertex (default 0, see WithRoot).
//
// Error Conditions:
//   - ErrNilGraph             : graph is nil.
//   - core.ErrVertexOutOfRange: root is not a vertex of a non-empty graph.
//   - ErrDisconnected         : only with WithRequireConnected, when some vertex is unreachable.
//
// Steps:
//  1. Validate graph; an empty graph returns a zero Result immediately.
//  2. Validate root; allocate the finalized set and an indexed queue sized to |V|.
//  3. Seed: push (root, 0), the zero-cost connection of the root to itself.
//  4. While the queue is not empty:
//     a. Pop the minimum (weight, vertex).
//     b. If vertex is already finalized, skip it (lazy deletion).
//     c. Otherwise finalize it, add weight, and push every unfinalized neighbour
//     at its edge weight; Push inserts fresh or decreases an existing key.
//  5. Return the accumulated weight.
//
// Vertices unreachable from the root are never visited, so a disconnected
// graph yields the weight of the root's component without an error.
//
// Complexity: O(E log V) time, O(V) memory (at most one heap entry per vertex).
func Prim(graph *core.Graph, opts ...Option) (Result, error) {
	// 1. Validate graph and short-circuit the empty case (no vertex to seed).
	if graph == nil {
		return Result{}, ErrNilGraph
	}
	cfg := resolve(opts)
	n := graph.VertexCount()
	if n == 0 {
		return Result{}, nil
	}

	// 2. Validate root and prepare per-run state.
	if !graph.HasVertex(cfg.Root) {
		return Result{}, fmt.Errorf("prim: root %d not in [0, %d): %w", cfg.Root, n, core.ErrVertexOutOfRange)
	}
	finalized := make([]bool, n) // monotonic: never reset once true
	pq, err := ipq.New(n)
	if err != nil {
		return Result{}, err
	}

	// 3. Seed the root at zero cost.
	if err = pq.Push(cfg.Root, 0); err != nil {
		return Result{}, err
	}

	var res Result
	var nbrs []core.Edge
	for !pq.IsEmpty() {
		// 4a. Smallest frontier entry.
		item := pq.Pop()
		u := item.Vertex

		// 4b. Superseded entry: the vertex is already in the tree.
		if finalized[u] {
			res.StalePops++
			continue
		}

		// 4c. Finalize u and relax its neighbours.
		finalized[u] = true
		res.Weight += item.Weight
		res.Spanned++
		if u != cfg.Root {
			res.TreeEdges++
		}

		if nbrs, err = graph.Neighbors(u); err != nil {
			return Result{}, err
		}
		for _, e := range nbrs {
			if finalized[e.To] {
				continue
			}
			if err = pq.Push(e.To, e.Weight); err != nil {
				return Result{}, err
			}
			res.Relaxations++
		}
	}

	// 5. Optional strict mode.
	if cfg.RequireConnected && !res.Connected(n) {
		return Result{}, fmt.Errorf("prim: spanned %d of %d vertices: %w", res.Spanned, n, ErrDisconnected)
	}

	return res, nil
}
