// SPDX-License-Identifier: MIT
// Package: mstweight/builder
//
// impl_wheel.go — Wheel() constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub: a cycle over vertices 0..n-2 plus hub vertex n-1.
//   • Therefore n ≥ 4 (the outer ring must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Ring edges first (i—(i+1) mod (n-1)), then spokes hub—i for i ascending.
//
// Complexity: O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstweight/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // outer cycle has size (n-1) which must be ≥ 3
)

// Wheel returns a Constructor that builds a wheel over all vertices, using the
// highest id as the hub.
func Wheel() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(g, methodWheel, minWheelNodes); err != nil {
			return err
		}
		n := g.VertexCount()
		rim, hub := n-1, n-1

		// 1) Outer ring over 0..rim-1.
		for i := 0; i < rim; i++ {
			if err := addEdge(g, cfg, methodWheel, i, (i+1)%rim); err != nil {
				return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, rim, err)
			}
		}

		// 2) Spokes in stable order.
		for i := 0; i < rim; i++ {
			if err := addEdge(g, cfg, methodWheel, hub, i); err != nil {
				return err
			}
		}

		return nil
	}
}
