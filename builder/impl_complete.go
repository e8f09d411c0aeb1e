// SPDX-License-Identifier: MIT
// Package: mstweight/builder
//
// impl_complete.go — Complete() constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j}, i<j, exactly once.
//
// Complexity:
//   • Time: O(n²) edges emission.
//
// Determinism:
//   • Pair order: lexicographic by (i,j), i<j.

package builder

import "github.com/katalvlaran/mstweight/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(g, methodComplete, minCompleteNodes); err != nil {
			return err
		}
		n := g.VertexCount()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
