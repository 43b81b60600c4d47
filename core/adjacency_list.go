package core

import (
	"iter"
	"slices"
)

// arc is one outgoing entry of an adjacency list.
type arc struct {
	to     NodeIndex
	weight float64
}

// adjacencyList stores out[u] = ordered arcs leaving u.
// Parallel edges and self-loops are kept as inserted.
type adjacencyList struct {
	out   [][]arc
	count int
}

func newAdjacencyList(capacity int) *adjacencyList {
	return &adjacencyList{out: make([][]arc, 0, capacity)}
}

func (l *adjacencyList) grow(n int) {
	for len(l.out) < n {
		l.out = append(l.out, nil)
	}
}

func (l *adjacencyList) add(u, v NodeIndex, w float64) {
	l.out[u] = append(l.out[u], arc{to: v, weight: w})
	l.count++
}

func (l *adjacencyList) outgoing(u NodeIndex) iter.Seq2[NodeIndex, float64] {
	return func(yield func(NodeIndex, float64) bool) {
		for _, a := range l.out[u] {
			if !yield(a.to, a.weight) {
				return
			}
		}
	}
}

// connected is O(deg(u)).
func (l *adjacencyList) connected(u, v NodeIndex) bool {
	return slices.ContainsFunc(l.out[u], func(a arc) bool { return a.to == v })
}

func (l *adjacencyList) detach(u NodeIndex) {
	l.count -= len(l.out[u])
	l.out[u] = nil
	for i := range l.out {
		before := len(l.out[i])
		l.out[i] = slices.DeleteFunc(l.out[i], func(a arc) bool { return a.to == u })
		l.count -= before - len(l.out[i])
	}
}

func (l *adjacencyList) edgeCount() int { return l.count }

func (l *adjacencyList) clear() {
	l.out = l.out[:0]
	l.count = 0
}
