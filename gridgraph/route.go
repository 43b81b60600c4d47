package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/pathgraph/heuristic"
	"github.com/katalvlaran/pathgraph/shortest"
)

// Route finds the cheapest land path from (fromX,fromY) to (toX,toY) with A*.
// Steps cost their length (see ToCoreGraph). The estimate is Manhattan
// distance under Conn4 and straight-line distance under Conn8, both exact
// lower bounds, so the route is optimal.
//
// Errors:
//   - ErrOutOfBounds for a coordinate outside the grid.
//   - shortest.ErrUnreachable when no land path exists, including when
//     either endpoint is water.
//   - any error from shortest.AStar, e.g. shortest.ErrOptionViolation.
func (gg *GridGraph) Route(fromX, fromY, toX, toY int, opts ...shortest.Option) (shortest.Path[Cell], error) {
	if !gg.InBounds(fromX, fromY) || !gg.InBounds(toX, toY) {
		return shortest.Path[Cell]{}, fmt.Errorf("%w: (%d,%d)→(%d,%d) on %d×%d",
			ErrOutOfBounds, fromX, fromY, toX, toY, gg.Width, gg.Height)
	}

	h := heuristic.Manhattan[Cell](1)
	if gg.Conn == Conn8 {
		h = heuristic.Planar[Cell](1)
	}

	p, err := shortest.AStar(gg.landGraph(), gg.Index(fromX, fromY), gg.Index(toX, toY), h, opts...)
	if err != nil {
		return shortest.Path[Cell]{}, fmt.Errorf("gridgraph: Route: %w", err)
	}

	return p, nil
}
