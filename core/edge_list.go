package core

import (
	"iter"
	"slices"
)

// edgeRecord is one directed entry of an edge list.
type edgeRecord struct {
	from, to NodeIndex
	weight   float64
}

// edgeList keeps every directed edge in one insertion-ordered slice.
// Every query scans the whole slice: outgoing and connected are O(E).
type edgeList struct {
	edges []edgeRecord
}

func newEdgeList(capacity int) *edgeList {
	return &edgeList{edges: make([]edgeRecord, 0, capacity)}
}

// grow is a no-op: the edge list has no per-node storage.
func (l *edgeList) grow(int) {}

func (l *edgeList) add(u, v NodeIndex, w float64) {
	l.edges = append(l.edges, edgeRecord{from: u, to: v, weight: w})
}

func (l *edgeList) outgoing(u NodeIndex) iter.Seq2[NodeIndex, float64] {
	return func(yield func(NodeIndex, float64) bool) {
		for _, e := range l.edges {
			if e.from != u {
				continue
			}
			if !yield(e.to, e.weight) {
				return
			}
		}
	}
}

func (l *edgeList) connected(u, v NodeIndex) bool {
	return slices.ContainsFunc(l.edges, func(e edgeRecord) bool { return e.from == u && e.to == v })
}

func (l *edgeList) detach(u NodeIndex) {
	l.edges = slices.DeleteFunc(l.edges, func(e edgeRecord) bool { return e.from == u || e.to == u })
}

func (l *edgeList) edgeCount() int { return len(l.edges) }

func (l *edgeList) clear() { l.edges = l.edges[:0] }
