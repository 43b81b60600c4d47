package shortest

import (
	"fmt"

	"github.com/katalvlaran/pathgraph/core"
	"github.com/katalvlaran/pathgraph/heuristic"
)

// Dijkstra computes the shortest-path tree from start to every reachable node.
//
// Weights must be non-negative; they are not validated, and a negative weight
// yields a non-shortest result without an error.
//
// Errors: ErrGraphNil, ErrOptionViolation, core.ErrIndexOutOfRange,
// core.ErrNodeRemoved. An empty graph yields an empty Tree.
//
// Complexity: O((V + E) log V) with adjacency lists and the B-tree frontier.
func Dijkstra[T any](g *core.Graph[T], start core.NodeIndex, opts ...Option) (*Tree[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := options(opts)
	if err != nil {
		return nil, err
	}
	if g.Len() == 0 {
		return &Tree[T]{Start: core.NoParent}, nil
	}
	if err := g.CheckIndex(start); err != nil {
		return nil, fmt.Errorf("shortest: start: %w", err)
	}

	r := newRunner(g, o, core.AlgoDijkstra, start, core.NoParent, nil)
	var t *Tree[T]
	err = r.search(func() (err error) {
		t, err = r.tree()
		return err
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

// DijkstraTo computes the shortest path from start to end. The search stops
// as soon as end is settled.
//
// Errors: ErrGraphNil, ErrOptionViolation, core.ErrIndexOutOfRange,
// core.ErrNodeRemoved, ErrUnreachable.
func DijkstraTo[T any](g *core.Graph[T], start, end core.NodeIndex, opts ...Option) (Path[T], error) {
	return single(g, core.AlgoDijkstraTo, start, end, nil, opts)
}

// single validates input and runs a single-target search.
func single[T any](g *core.Graph[T], algo string, start, end core.NodeIndex, h heuristic.Func[T], opts []Option) (Path[T], error) {
	if g == nil {
		return Path[T]{}, ErrGraphNil
	}
	o, err := options(opts)
	if err != nil {
		return Path[T]{}, err
	}
	if err := g.CheckIndex(start); err != nil {
		return Path[T]{}, fmt.Errorf("shortest: start: %w", err)
	}
	if err := g.CheckIndex(end); err != nil {
		return Path[T]{}, fmt.Errorf("shortest: end: %w", err)
	}

	r := newRunner(g, o, algo, start, end, h)
	var p Path[T]
	err = r.search(func() (err error) {
		p, err = r.walk(end)
		return err
	})

	return p, err
}
