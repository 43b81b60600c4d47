package shortest

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/pathgraph/core"
	"github.com/katalvlaran/pathgraph/frontier"
	"github.com/katalvlaran/pathgraph/heuristic"
)

// runner holds the mutable state of one search. All per-node state lives in
// the graph's scratch records.
type runner[T any] struct {
	g      *core.Graph[T]
	opts   Options
	algo   string
	start  core.NodeIndex
	target core.NodeIndex // core.NoParent: settle everything
	h      heuristic.Func[T]
	open   frontier.Frontier[core.NodeIndex]

	settled     int
	relaxations int
}

// options applies opts over the defaults.
func options(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

func newRunner[T any](g *core.Graph[T], o Options, algo string, start, target core.NodeIndex, h heuristic.Func[T]) *runner[T] {
	r := &runner[T]{g: g, opts: o, algo: algo, start: start, target: target, h: h}
	r.open = frontier.New(o.Frontier, r.less)

	return r
}

// less orders open nodes by Cost + Heuristic, ties by ascending index.
// Keys only change while a node is outside the frontier.
func (r *runner[T]) less(a, b core.NodeIndex) bool {
	sa, sb := r.g.Scratch(a), r.g.Scratch(b)
	ka, kb := sa.Cost+sa.Heuristic, sb.Cost+sb.Heuristic
	if ka != kb {
		return ka < kb
	}

	return a < b
}

// estimate returns the heuristic for i, 0 for plain Dijkstra. Negative and
// NaN estimates are clamped to 0; a NaN key would compare equal to every
// frontier entry.
func (r *runner[T]) estimate(i core.NodeIndex) float64 {
	if r.h == nil || r.target == core.NoParent {
		return 0
	}
	h := r.h(r.g, i, r.target)
	if !(h > 0) {
		return 0
	}

	return h
}

// search runs the relaxation loop under BeginSearch and hands the settled
// scratch state to collect before it is reset.
func (r *runner[T]) search(collect func() error) error {
	release := r.g.BeginSearch()
	defer release()

	began := time.Now()
	r.opts.Logger.Debug("search started",
		slog.String("algorithm", r.algo),
		slog.Int("start", int(r.start)),
		slog.Int("target", int(r.target)),
		slog.String("frontier", r.opts.Frontier.String()))

	err := r.relax()
	if err == nil {
		err = collect()
	}

	stats := core.RunStats{
		Algorithm:   r.algo,
		Start:       r.start,
		Target:      r.target,
		Settled:     r.settled,
		Relaxations: r.relaxations,
		Duration:    time.Since(began),
		Err:         err,
	}
	r.opts.Observer.ObserveRun(stats)
	r.opts.Logger.Debug("search finished",
		slog.String("algorithm", r.algo),
		slog.Int("settled", r.settled),
		slog.Int("relaxations", r.relaxations),
		slog.Duration("duration", stats.Duration),
		slog.Any("error", err))

	return err
}

// relax is the shared Dijkstra/A* loop with the remove-then-insert policy:
// a node's frontier entry is removed before its key changes, so the frontier
// never holds stale duplicates.
func (r *runner[T]) relax() error {
	s := r.g.Scratch(r.start)
	s.Cost = 0
	s.Heuristic = r.estimate(r.start)
	r.open.Insert(r.start)
	s.InFrontier = true

	for r.open.Len() > 0 {
		u, err := r.open.RemoveMin()
		if err != nil {
			return fmt.Errorf("shortest: %w", err)
		}
		su := r.g.Scratch(u)
		su.InFrontier = false
		if su.Cost > r.opts.MaxDistance {
			// every remaining entry costs at least as much
			break
		}
		su.Visited = true
		r.settled++
		if u == r.target {
			return nil
		}

		for v, w := range r.g.OutgoingEdges(u) {
			if w >= r.opts.EdgeThreshold {
				continue
			}
			sv := r.g.Scratch(v)
			if sv.Visited {
				continue
			}
			next := su.Cost + w
			if !(next < sv.Cost) {
				continue
			}
			if sv.InFrontier {
				r.open.Remove(v)
			}
			sv.Cost = next
			sv.Parent = u
			sv.Heuristic = r.estimate(v)
			r.open.Insert(v)
			sv.InFrontier = true
			r.relaxations++
		}
	}

	return nil
}

// walk rebuilds the path to dest from Parent links. It stops with
// ErrUnreachable at a parentless node other than start, or after Len() steps.
func (r *runner[T]) walk(dest core.NodeIndex) (Path[T], error) {
	if !r.g.Scratch(dest).Visited {
		return Path[T]{}, fmt.Errorf("%w: %d → %d", ErrUnreachable, r.start, dest)
	}
	limit := r.g.Len()
	rev := make([]core.NodeIndex, 0, 8)
	for cur := dest; ; {
		rev = append(rev, cur)
		if cur == r.start {
			break
		}
		cur = r.g.Scratch(cur).Parent
		if cur == core.NoParent || len(rev) > limit {
			return Path[T]{}, fmt.Errorf("%w: %d → %d", ErrUnreachable, r.start, dest)
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return Path[T]{Nodes: rev, Data: r.g.Collect(rev), Cost: r.g.Scratch(dest).Cost}, nil
}

// tree snapshots every settled node into a Tree.
func (r *runner[T]) tree() (*Tree[T], error) {
	n := r.g.Len()
	t := &Tree[T]{
		Start:  r.start,
		Cost:   make([]float64, n),
		Parent: make([]core.NodeIndex, n),
		Paths:  make([]Path[T], n),
	}
	for i := range n {
		idx := core.NodeIndex(i)
		t.Cost[i], t.Parent[i] = math.Inf(1), core.NoParent
		s := r.g.Scratch(idx)
		if !s.Visited {
			continue
		}
		p, err := r.walk(idx)
		if err != nil {
			return nil, err
		}
		t.Cost[i], t.Parent[i], t.Paths[i] = s.Cost, s.Parent, p
	}

	return t, nil
}
