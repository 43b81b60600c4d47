// SPDX-License-Identifier: MIT
// Package: pathgraph/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices): one hub labelled CenterVertexID plus n-1 leaves.
//   - Spokes are always two-way, even under WithDirected(true), so every
//     leaf reaches every other leaf through the hub.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathgraph/core"
)

// CenterVertexID labels the hub of a Star.
const CenterVertexID = "Center"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star S_n centred on CenterVertexID.
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		hub := g.AddNode(CenterVertexID)
		leaves := addNodes(g, cfg, n-1)

		var w float64
		for i := 0; i < n-1; i++ {
			leaf := leaves + core.NodeIndex(i)
			w = cfg.weightFn(cfg.rng)
			if err := g.AddEdge(hub, leaf, w, false); err != nil {
				return fmt.Errorf("%s: AddEdge(%d↔%d, w=%g): %w", methodStar, hub, leaf, w, err)
			}
		}

		return nil
	}
}
