// SPDX-License-Identifier: MIT
// Package: pathgraph/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - 0 < p < 1 requires an RNG (else ErrNeedRandSource); p=0 and p=1 are
//     deterministic and need none.
//   - Undirected: pairs i<j. Directed: ordered pairs i≠j. No self-loops.
//   - One draw per candidate pair, in lexicographic (i, j) order, so the
//     result is fixed for a fixed seed.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathgraph/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that builds an Erdős–Rényi G(n, p) graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := addNodes(g, cfg, n)
		keep := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			}
			return cfg.rng.Float64() < p
		}

		for i := 0; i < n; i++ {
			first := i + 1
			if cfg.directed {
				first = 0
			}
			for j := first; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				if err := link(g, cfg, methodRandomSparse, base+core.NodeIndex(i), base+core.NodeIndex(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
