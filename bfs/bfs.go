// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"fmt"
	"time"

	"github.com/katalvlaran/pathgraph/core"
)

// walker encapsulates mutable BFS state.
type walker[T any] struct {
	graph *core.Graph[T]
	opts  Options
	visit Visitor[T]
	queue []core.NodeIndex
	res   *Result
}

// BreadthFirstSearch runs breadth-first search on g from start, calling visit
// once per reachable node in level order. visit may be nil.
//
// Scratch state of g is reset before and after the walk, also on error.
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation.
//   - core.ErrIndexOutOfRange, core.ErrNodeRemoved for a bad start.
//   - the visitor's error, wrapped with the node index.
//
// An empty graph is a no-op: an empty Result and nil error.
//
// Complexity: O(V + E) with adjacency lists, O(V²) with the matrix, O(V·E) with the edge list.
func BreadthFirstSearch[T any](g *core.Graph[T], start core.NodeIndex, visit Visitor[T], opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g.Len() == 0 {
		return &Result{Start: core.NoParent}, nil
	}
	if err := g.CheckIndex(start); err != nil {
		return nil, fmt.Errorf("bfs: start: %w", err)
	}

	release := g.BeginSearch()
	defer release()

	began := time.Now()
	o.Logger.Debug("bfs started", "start", start, "nodes", g.Len())

	w := &walker[T]{
		graph: g,
		opts:  o,
		visit: visit,
		queue: make([]core.NodeIndex, 0, g.Len()),
		res:   newResult(start, g.Len()),
	}
	err := w.run(start)

	stats := core.RunStats{
		Algorithm: core.AlgoBFS,
		Start:     start,
		Target:    core.NoParent,
		Settled:   len(w.res.Order),
		Duration:  time.Since(began),
		Err:       err,
	}
	o.Observer.ObserveRun(stats)
	o.Logger.Debug("bfs finished", "start", start, "visited", stats.Settled, "duration", stats.Duration, "error", err)

	if err != nil {
		return nil, err
	}

	return w.res, nil
}

func newResult(start core.NodeIndex, n int) *Result {
	r := &Result{
		Start:  start,
		Order:  make([]core.NodeIndex, 0, n),
		Depth:  make([]int, n),
		Parent: make([]core.NodeIndex, n),
	}
	for i := range n {
		r.Depth[i] = -1
		r.Parent[i] = core.NoParent
	}

	return r
}

// run seeds the queue with start and expands the front node until it has no
// unvisited neighbor left, then retires it.
func (w *walker[T]) run(start core.NodeIndex) error {
	if err := w.discover(start, core.NoParent, 0); err != nil {
		return err
	}
	for len(w.queue) > 0 {
		curr := w.queue[0]
		nextDepth := w.res.Depth[curr] + 1
		if w.opts.MaxDepth == 0 || nextDepth <= w.opts.MaxDepth {
			for nbr := range w.graph.OutgoingEdges(curr) {
				if w.graph.Scratch(nbr).Visited || !w.opts.FilterNeighbor(curr, nbr) {
					continue
				}
				if err := w.discover(nbr, curr, nextDepth); err != nil {
					return err
				}
			}
		}
		// front node exhausted
		w.queue = w.queue[1:]
	}

	return nil
}

// discover marks i visited, records its depth and parent, invokes the visitor
// and enqueues it.
func (w *walker[T]) discover(i, parent core.NodeIndex, depth int) error {
	sc := w.graph.Scratch(i)
	sc.Visited = true
	sc.Parent = parent

	w.res.Order = append(w.res.Order, i)
	w.res.Depth[i] = depth
	w.res.Parent[i] = parent

	if w.visit != nil {
		data, _ := w.graph.Data(i)
		if err := w.visit(i, data); err != nil {
			return fmt.Errorf("bfs: visit %d: %w", i, err)
		}
	}
	w.queue = append(w.queue, i)

	return nil
}
