// SPDX-License-Identifier: MIT
// Package: pathgraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn     = DefaultIDFn       ("0","1","2",...)
//   - rng      = nil               (pure unless seeded)
//   - weightFn = DefaultWeightFn   (constant DefaultEdgeWeight)
//   - directed = false

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand // nil means no randomness
	weightFn WeightFn
	directed bool
}

// newBuilderConfig applies opts in order over the defaults (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
