// SPDX-License-Identifier: MIT
// Package: pathgraph/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1) → i for i=1..n-1 in increasing order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathgraph/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		base := addNodes(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodPath, base+core.NodeIndex(i-1), base+core.NodeIndex(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
