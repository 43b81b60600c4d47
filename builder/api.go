// SPDX-License-Identifier: MIT
// Package: pathgraph/builder
//
// api.go - public entry point and Constructor contract.
//
// Contract:
//   - A Constructor appends its own block of nodes to g; it never touches
//     nodes that were already present.
//   - Node labels come from cfg.idFn applied to the node's global index, so
//     composing constructors with the default scheme keeps labels unique.
//   - Edges are added with cfg.weightFn(cfg.rng) and cfg.directed.
//   - Constructors return sentinel errors wrapped with method context; they
//     never panic at runtime.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathgraph/core"
)

// Constructor mutates g according to one topology recipe.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// BuildGraph creates a graph with gopts, resolves bopts once, and applies
// every constructor in order. The first failing constructor aborts the build.
//
// Complexity: O(len(bopts)) + the sum of the constructors' costs.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	cfg := newBuilderConfig(bopts...)
	g := core.New[string](gopts...)

	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("BuildGraph: constructor #%d is nil: %w", i, ErrConstructFailed)
		}
		if err := c(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addNodes appends n nodes labelled by cfg.idFn and returns the index of the first one.
func addNodes(g *core.Graph[string], cfg builderConfig, n int) core.NodeIndex {
	base := core.NodeIndex(g.Len())
	for i := 0; i < n; i++ {
		g.AddNode(cfg.idFn(int(base) + i))
	}

	return base
}

// link adds u→v (and v→u when undirected) with the next configured weight.
func link(g *core.Graph[string], cfg builderConfig, method string, u, v core.NodeIndex) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w, cfg.directed); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
