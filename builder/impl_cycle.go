// SPDX-License-Identifier: MIT
// Package: mstweight/builder
//
// impl_cycle.go — Cycle() constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Edges i—(i+1) mod n for i = 0..n-1, closing edge last.

package builder

import "github.com/katalvlaran/mstweight/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that links the graph's vertices into a simple cycle C_n.
func Cycle() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(g, methodCycle, minCycleNodes); err != nil {
			return err
		}
		n := g.VertexCount()
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
