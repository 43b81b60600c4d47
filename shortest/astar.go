package shortest

import (
	"github.com/katalvlaran/pathgraph/core"
	"github.com/katalvlaran/pathgraph/heuristic"
)

// AStar computes a path from start to end ordering the frontier by
// cost + h(node, end). h is evaluated once per relaxation of a node and cached
// in its scratch Heuristic field.
//
// The path is a shortest one when h is admissible; with an overestimating h
// the result is still a valid path but may cost more. heuristic.Zero makes
// AStar equivalent to DijkstraTo.
//
// Errors: ErrGraphNil, ErrNilHeuristic, ErrOptionViolation,
// core.ErrIndexOutOfRange, core.ErrNodeRemoved, ErrUnreachable.
func AStar[T any](g *core.Graph[T], start, end core.NodeIndex, h heuristic.Func[T], opts ...Option) (Path[T], error) {
	if h == nil {
		return Path[T]{}, ErrNilHeuristic
	}

	return single(g, core.AlgoAStar, start, end, h, opts)
}
