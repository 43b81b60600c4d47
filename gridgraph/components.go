package gridgraph

import (
	"github.com/katalvlaran/pathgraph/bfs"
	"github.com/katalvlaran/pathgraph/core"
)

// ConnectedComponents finds all contiguous regions ("islands") of land cells,
// according to gg.Conn connectivity. Components are ordered by their first
// cell in row-major order; cells within one component are in BFS order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]core.NodeIndex {
	g := gg.landGraph()
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]core.NodeIndex

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.Index(x, y)
			if !gg.IsLand(x, y) || seen[i0] {
				continue
			}
			// the start index is valid, so BFS cannot fail here
			res, err := bfs.BreadthFirstSearch(g, i0, nil)
			if err != nil {
				continue
			}
			for _, i := range res.Order {
				seen[i] = true
			}
			comps = append(comps, res.Order)
		}
	}

	return comps
}
