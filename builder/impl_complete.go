// SPDX-License-Identifier: MIT
// Package: pathgraph/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Undirected: one edge per pair i<j. Directed: one edge per ordered pair i≠j.
//   - Emission order is lexicographic in (i, j).
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathgraph/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		base := addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			first := i + 1
			if cfg.directed {
				first = 0
			}
			for j := first; j < n; j++ {
				if i == j {
					continue
				}
				if err := link(g, cfg, methodComplete, base+core.NodeIndex(i), base+core.NodeIndex(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
