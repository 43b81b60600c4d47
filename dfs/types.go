// Package dfs defines types and options for depth-first search traversal,
// including depth limiting, neighbor filtering and basic diagnostics.
package dfs

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pathgraph/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for a node the walk never reached.
	ErrNoPath = errors.New("dfs: no path")
)

// Visitor is invoked once per reachable node in pre-order, when the node is
// first marked visited. Returning an error aborts the traversal.
type Visitor[T any] func(i core.NodeIndex, data T) error

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters are O(1).
type Options struct {
	// MaxDepth, if > 0, limits the DFS tree to the given depth.
	// 0 means no limit.
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each edge curr→neighbor.
	// Return false to skip that neighbor; skips are counted in Result.SkippedNeighbors.
	FilterNeighbor func(curr, neighbor core.NodeIndex) bool

	// Logger receives one Debug record at start and one at finish.
	Logger *slog.Logger

	// Observer receives the RunStats of the run.
	Observer core.Observer

	err error
}

// DefaultOptions returns Options with no depth limit, no filtering,
// a discarding logger and a no-op observer.
func DefaultOptions() Options {
	return Options{
		Logger:   slog.New(slog.DiscardHandler),
		Observer: core.NopObserver,
	}
}

// WithMaxDepth returns an Option that limits traversal depth.
// 0 disables the limit; a negative limit is recorded as ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbors.
func WithFilterNeighbor(fn func(curr, neighbor core.NodeIndex) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
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

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Start is the root of the DFS tree (core.NoParent for an empty graph).
	Start core.NodeIndex

	// Order records nodes in the sequence they were discovered (pre-order).
	Order []core.NodeIndex

	// PostOrder records nodes in the sequence they finished.
	PostOrder []core.NodeIndex

	// Depth[i] is the depth of i in the DFS tree, or -1 if i was not reached.
	Depth []int

	// Parent[i] is the node from which i was first discovered, or core.NoParent.
	Parent []core.NodeIndex

	// SkippedNeighbors reports how many neighbors were skipped
	// due to FilterNeighbor returning false.
	SkippedNeighbors int
}

func newResult(start core.NodeIndex, n int) *Result {
	r := &Result{
		Start:     start,
		Order:     make([]core.NodeIndex, 0, n),
		PostOrder: make([]core.NodeIndex, 0, n),
		Depth:     make([]int, n),
		Parent:    make([]core.NodeIndex, n),
	}
	for i := range n {
		r.Depth[i] = -1
		r.Parent[i] = core.NoParent
	}

	return r
}

// Reached reports whether i was visited.
func (r *Result) Reached(i core.NodeIndex) bool {
	return i >= 0 && int(i) < len(r.Depth) && r.Depth[i] >= 0
}

// PathTo returns the DFS tree path from Start to dest. It is a path in the
// graph, not necessarily a shortest one.
func (r *Result) PathTo(dest core.NodeIndex) ([]core.NodeIndex, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	path := make([]core.NodeIndex, r.Depth[dest]+1)
	for k, cur := len(path)-1, dest; k >= 0; k, cur = k-1, r.Parent[cur] {
		path[k] = cur
	}

	return path, nil
}
