// SPDX-License-Identifier: MIT
// Package: mstweight/builder
//
// impl_path.go — Path() constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Edges 0—1, 1—2, …, (n-2)—(n-1) in that order.

package builder

import "github.com/katalvlaran/mstweight/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that links the graph's vertices into a simple path P_n.
func Path() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(g, methodPath, minPathNodes); err != nil {
			return err
		}
		for i := 1; i < g.VertexCount(); i++ {
			if err := addEdge(g, cfg, methodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
