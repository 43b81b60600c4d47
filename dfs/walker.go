package dfs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/pathgraph/core"
)

// walker encapsulates state shared by the iterative and recursive traversals.
type walker[T any] struct {
	graph *core.Graph[T]
	opts  Options
	visit Visitor[T]
	res   *Result
}

// prepare validates input and options. A nil walker with nil error means the
// graph is empty and the traversal is a no-op.
func prepare[T any](g *core.Graph[T], start core.NodeIndex, visit Visitor[T], opts []Option) (*walker[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g.Len() == 0 {
		return nil, nil
	}
	if err := g.CheckIndex(start); err != nil {
		return nil, fmt.Errorf("dfs: start: %w", err)
	}

	return &walker[T]{graph: g, opts: o, visit: visit, res: newResult(start, g.Len())}, nil
}

// execute brackets run with BeginSearch, logging and observation.
func (w *walker[T]) execute(algo string, run func() error) (*Result, error) {
	release := w.graph.BeginSearch()
	defer release()

	start := w.res.Start
	began := time.Now()
	w.opts.Logger.Debug("dfs started", slog.String("algorithm", algo), slog.Int("start", int(start)))

	err := run()

	stats := core.RunStats{
		Algorithm: algo,
		Start:     start,
		Target:    core.NoParent,
		Settled:   len(w.res.Order),
		Duration:  time.Since(began),
		Err:       err,
	}
	w.opts.Observer.ObserveRun(stats)
	w.opts.Logger.Debug("dfs finished",
		slog.String("algorithm", algo),
		slog.Int("visited", stats.Settled),
		slog.Duration("duration", stats.Duration),
		slog.Any("error", err))

	if err != nil {
		return nil, err
	}

	return w.res, nil
}

// discover marks i visited, records its depth and parent and invokes the visitor.
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
			return fmt.Errorf("dfs: visit %d: %w", i, err)
		}
	}

	return nil
}

// follow reports whether the edge curr→nbr leads to a node that should be discovered.
func (w *walker[T]) follow(curr, nbr core.NodeIndex) bool {
	if w.graph.Scratch(nbr).Visited {
		return false
	}
	if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(curr, nbr) {
		w.res.SkippedNeighbors++
		return false
	}

	return true
}

// canDescend reports whether children of a node at depth may be discovered.
func (w *walker[T]) canDescend(depth int) bool {
	return w.opts.MaxDepth == 0 || depth < w.opts.MaxDepth
}
