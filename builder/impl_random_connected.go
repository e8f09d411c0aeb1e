// SPDX-License-Identifier: MIT
// Package: mstweight/builder
//
// impl_random_connected.go - implementation of RandomConnected(extra) constructor.
//
// Model:
//   - Shuffle the vertex ids, then attach each vertex (in shuffled order) to a
//     uniformly chosen earlier one: a random spanning tree with n-1 edges.
//   - Add `extra` further edges between uniformly chosen distinct vertices.
//     Parallel edges may appear; they exercise decrease-key.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - extra ≥ 0 (else ErrConstructFailed); extra > 0 needs n ≥ 2.
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n + extra). Space: O(n) for the permutation.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstweight/core"
)

const (
	methodRandomConnected   = "RandomConnected"
	minRandomConnectedNodes = 1
)

// RandomConnected returns a Constructor that builds a connected random graph
// with exactly n-1+extra edges.
func RandomConnected(extra int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate.
		if err := requireVertices(g, methodRandomConnected, minRandomConnectedNodes); err != nil {
			return err
		}
		n := g.VertexCount()
		if extra < 0 || (extra > 0 && n < 2) {
			return fmt.Errorf("%s: extra=%d with n=%d: %w", methodRandomConnected, extra, n, ErrConstructFailed)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomConnected, ErrNeedRandSource)
		}
		rng := cfg.rng

		// 2) Random spanning tree over a shuffled order.
		order := rng.Perm(n)
		for i := 1; i < n; i++ {
			parent := order[rng.Intn(i)]
			if err := addEdge(g, cfg, methodRandomConnected, parent, order[i]); err != nil {
				return err
			}
		}

		// 3) Extra non-loop edges.
		for added := 0; added < extra; {
			u, v := rng.Intn(n), rng.Intn(n)
			if u == v {
				continue
			}
			if err := addEdge(g, cfg, methodRandomConnected, u, v); err != nil {
				return err
			}
			added++
		}

		return nil
	}
}
