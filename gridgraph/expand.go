package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/pathgraph/core"
	"github.com/katalvlaran/pathgraph/shortest"
)

// ExpandIsland finds a minimum-conversion path of water cells connecting any
// cell of component srcComp to any cell of component dstComp, as numbered by
// ConnectedComponents. Entering a water cell costs 1; entering land costs 0.
// It returns the cell path (both land endpoints included) and the number of
// water cells converted.
//
// The search is Dijkstra over a conversion graph with one extra source node
// wired at cost 0 to every srcComp cell. Among equally cheap dstComp cells
// the one with the lowest row-major index wins.
//
// Complexity: O(W·H·d·log(W·H)).
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []core.NodeIndex, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}

	g, source := gg.conversionGraph(comps[srcComp])
	tree, err := shortest.Dijkstra(g, source)
	if err != nil {
		return nil, 0, fmt.Errorf("gridgraph: ExpandIsland: %w", err)
	}

	best := core.NoParent
	for _, i := range comps[dstComp] {
		if !tree.Reachable(i) {
			continue
		}
		if best == core.NoParent || tree.Cost[i] < tree.Cost[best] ||
			(tree.Cost[i] == tree.Cost[best] && i < best) {
			best = i
		}
	}
	if best == core.NoParent {
		return nil, 0, ErrNoPath
	}

	p, err := tree.PathTo(best)
	if err != nil {
		return nil, 0, fmt.Errorf("gridgraph: ExpandIsland: %w", err)
	}

	return p.Nodes[1:], int(p.Cost), nil
}

// conversionGraph links every cell to each in-bounds neighbour, at cost 1 into
// water and 0 into land, and appends a source node wired to src at cost 0.
func (gg *GridGraph) conversionGraph(src []core.NodeIndex) (*core.Graph[Cell], core.NodeIndex) {
	g := gg.addCells(1)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			u := gg.Index(x, y)
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) {
					continue
				}
				step := 0.0
				if !gg.IsLand(nx, ny) {
					step = 1
				}
				_ = g.AddEdge(u, gg.Index(nx, ny), step, true)
			}
		}
	}

	source := g.AddNode(Cell{X: -1, Y: -1})
	for _, i := range src {
		_ = g.AddEdge(source, i, 0, true)
	}

	return g, source
}
