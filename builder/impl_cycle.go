// SPDX-License-Identifier: MIT
// Package: pathgraph/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits edges i → (i+1)%n for i=0..n-1 in increasing order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathgraph/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-node ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		base := addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			if err := link(g, cfg, methodCycle, base+core.NodeIndex(i), base+core.NodeIndex((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
