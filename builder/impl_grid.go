// SPDX-License-Identifier: MIT
// Package: pathgraph/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows, cols ≥ 1 (else ErrTooFewVertices).
//   - Nodes are labelled "r,c" in row-major order regardless of the ID scheme.
//   - Each cell links to its right and bottom neighbours; links are two-way,
//     even under WithDirected(true).
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathgraph/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor that builds a rows×cols 4-connected lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		base := core.NodeIndex(g.Len())
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddNode(fmt.Sprintf(gridIDFmt, r, c))
			}
		}
		at := func(r, c int) core.NodeIndex { return base + core.NodeIndex(r*cols+c) }

		var w float64
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := at(r, c)
				if c+1 < cols {
					w = cfg.weightFn(cfg.rng)
					if err := g.AddEdge(u, at(r, c+1), w, false); err != nil {
						return fmt.Errorf("%s: AddEdge(%d↔%d, w=%g): %w", methodGrid, u, at(r, c+1), w, err)
					}
				}
				if r+1 < rows {
					w = cfg.weightFn(cfg.rng)
					if err := g.AddEdge(u, at(r+1, c), w, false); err != nil {
						return fmt.Errorf("%s: AddEdge(%d↔%d, w=%g): %w", methodGrid, u, at(r+1, c), w, err)
					}
				}
			}
		}

		return nil
	}
}
