// SPDX-License-Identifier: MIT
// Package: mstweight/builder
//
// impl_grid.go — Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Cell (r,c) is vertex r*cols + c (row-major).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • rows*cols must equal the graph's vertex count (else ErrConstructFailed).
//   • For each (r,c) in row-major order emit Right then Bottom if present.
//
// Complexity: O(rows*cols) edges, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstweight/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (no partial work).
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if n := g.VertexCount(); rows*cols != n {
			return fmt.Errorf("%s: %d×%d cells for %d vertices: %w",
				methodGrid, rows, cols, n, ErrConstructFailed)
		}

		// 2) Emit Right then Bottom for each cell.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
