// Package shortest defines result types, configuration options and sentinel
// errors for the weighted shortest-path searches.
package shortest

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/pathgraph/core"
	"github.com/katalvlaran/pathgraph/frontier"
)

// Sentinel errors returned by the searches.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("shortest: graph is nil")

	// ErrUnreachable indicates that no path connects the requested endpoints.
	ErrUnreachable = errors.New("shortest: target unreachable")

	// ErrNilHeuristic indicates that AStar was called without a heuristic.
	ErrNilHeuristic = errors.New("shortest: heuristic is nil")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("shortest: invalid option supplied")
)

// Options configures the searches.
//
// Frontier      – open-set implementation (frontier.KindTree by default).
// MaxDistance   – nodes whose shortest cost exceeds this value are not settled.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// EdgeThreshold – edges with weight ≥ this threshold are treated as walls.
//
//	Must be > 0. Default is +Inf (no walls).
type Options struct {
	Frontier      frontier.Kind
	MaxDistance   float64
	EdgeThreshold float64
	Logger        *slog.Logger
	Observer      core.Observer

	err error
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns Options with a B-tree frontier, no distance cap,
// no walls, a discarding logger and a no-op observer.
func DefaultOptions() Options {
	return Options{
		Frontier:      frontier.KindTree,
		MaxDistance:   math.Inf(1),
		EdgeThreshold: math.Inf(1),
		Logger:        slog.New(slog.DiscardHandler),
		Observer:      core.NopObserver,
	}
}

// WithFrontier selects the open-set implementation.
func WithFrontier(kind frontier.Kind) Option {
	return func(o *Options) {
		o.Frontier = kind
	}
}

// WithMaxDistance stops settling nodes once the cheapest open cost exceeds max.
// Negative values are recorded as ErrOptionViolation.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%g)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithEdgeThreshold skips every edge whose weight is ≥ threshold.
// Non-positive values are recorded as ErrOptionViolation.
func WithEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			o.err = fmt.Errorf("%w: EdgeThreshold must be positive (%g)", ErrOptionViolation, threshold)
			return
		}
		o.EdgeThreshold = threshold
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

// Path is an ordered route from a start node to an end node, inclusive.
//
// Data holds copies of the node payloads taken when the path was built, so a
// Path stays valid after the graph is mutated. For pointer payloads only the
// pointer is copied.
type Path[T any] struct {
	Nodes []core.NodeIndex
	Data  []T
	Cost  float64
}

// Len returns the number of nodes on the path.
func (p Path[T]) Len() int { return len(p.Nodes) }

// Tree is the shortest-path tree produced by Dijkstra.
//
// Cost[i] is the shortest cost from Start to i (+Inf if unreachable),
// Parent[i] its predecessor (core.NoParent for Start and unreachable nodes)
// and Paths[i] the route itself (empty if unreachable; [Start] for Start).
type Tree[T any] struct {
	Start  core.NodeIndex
	Cost   []float64
	Parent []core.NodeIndex
	Paths  []Path[T]
}

// Reachable reports whether i has a finite cost.
func (t *Tree[T]) Reachable(i core.NodeIndex) bool {
	return i >= 0 && int(i) < len(t.Cost) && !math.IsInf(t.Cost[i], 1)
}

// PathTo returns the shortest path from Start to dest.
// Returns core.ErrIndexOutOfRange for a bad index and ErrUnreachable if dest
// has no path.
func (t *Tree[T]) PathTo(dest core.NodeIndex) (Path[T], error) {
	if dest < 0 || int(dest) >= len(t.Cost) {
		return Path[T]{}, fmt.Errorf("shortest: PathTo(%d): %w", dest, core.ErrIndexOutOfRange)
	}
	if !t.Reachable(dest) {
		return Path[T]{}, fmt.Errorf("%w: %d → %d", ErrUnreachable, t.Start, dest)
	}

	return t.Paths[dest], nil
}
