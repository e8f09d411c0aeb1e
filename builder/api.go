// SPDX-License-Identifier: MIT
// Package: mstweight/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Topology factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstweight/core"
)

// Constructor adds edges to g over its vertices 0..g.VertexCount()-1 using the
// resolved builderConfig. Constructors MUST validate early, return sentinel
// errors instead of panicking, and emit edges in a documented, stable order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an n-vertex core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any error is wrapped with
// "BuildGraph: %w" and returned immediately.
//
// Complexity: O(n + len(bopts)) plus the cost of each constructor.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge inserts u—v with the next configured weight, tagging failures with method.
func addEdge(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d—%d, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

// requireVertices returns ErrTooFewVertices when g has fewer than min vertices.
func requireVertices(g *core.Graph, method string, min int) error {
	if n := g.VertexCount(); n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}

	return nil
}
