// SPDX-License-Identifier: MIT
// Package: mstweight/builder
//
// impl_star.go — Star(center) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices); center must be a vertex (else core.ErrVertexOutOfRange).
//   • Spokes center—i for every i ≠ center, i ascending.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstweight/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that connects center to every other vertex.
func Star(center int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(g, methodStar, minStarNodes); err != nil {
			return err
		}
		if !g.HasVertex(center) {
			return fmt.Errorf("%s: center=%d: %w", methodStar, center, core.ErrVertexOutOfRange)
		}
		for i := 0; i < g.VertexCount(); i++ {
			if i == center {
				continue
			}
			if err := addEdge(g, cfg, methodStar, center, i); err != nil {
				return err
			}
		}

		return nil
	}
}
