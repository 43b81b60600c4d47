// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pathgraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for a node the walk never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Visitor is invoked once per reachable node, when the node is first marked
// visited. Returning an error aborts the traversal.
type Visitor[T any] func(i core.NodeIndex, data T) error

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor core.NodeIndex) bool

	// Logger receives one Debug record at start and one at finish.
	Logger *slog.Logger

	// Observer receives the RunStats of the run.
	Observer core.Observer

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit, no filtering,
// a discarding logger and a no-op observer.
func DefaultOptions() Options {
	return Options{
		MaxDepth:       0,
		FilterNeighbor: func(_, _ core.NodeIndex) bool { return true },
		Logger:         slog.New(slog.DiscardHandler),
		Observer:       core.NopObserver,
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: nodes deeper than d are neither visited nor recorded
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.NodeIndex) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers a run observer. A nil observer is ignored.
func WithObserver(obs core.Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Start: the start node (core.NoParent for an empty graph).
//   - Order: nodes visited, in visit sequence.
//   - Depth: Depth[i] is the hop count from Start, or -1 if i was not reached.
//   - Parent: Parent[i] is the predecessor in the BFS tree, or core.NoParent.
type Result struct {
	Start  core.NodeIndex
	Order  []core.NodeIndex
	Depth  []int
	Parent []core.NodeIndex
}

// Reached reports whether i was visited.
func (r *Result) Reached(i core.NodeIndex) bool {
	return i >= 0 && int(i) < len(r.Depth) && r.Depth[i] >= 0
}

// PathTo reconstructs the fewest-hop path from Start to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest core.NodeIndex) ([]core.NodeIndex, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	// build reversed path
	path := make([]core.NodeIndex, 0, r.Depth[dest]+1)
	for cur := dest; cur != core.NoParent; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
