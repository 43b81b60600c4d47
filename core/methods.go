// File: methods.go
// Role: Node/edge lifecycle and topology queries on Graph.
// Determinism:
//   - NodeIndex values follow insertion order and are never reused.
//   - OutgoingEdges order is defined by the representation (see adjacency.go).
// Concurrency:
//   - None of these methods lock. Mutation must not overlap a running search.

package core

import (
	"fmt"
	"iter"
	"math"
)

// Len returns the number of node slots, including removed (tombstoned) nodes.
// Valid indices are [0, Len()).
func (g *Graph[T]) Len() int { return len(g.nodes) }

// Representation reports the adjacency layout selected at construction.
func (g *Graph[T]) Representation() Representation { return g.repr }

// EdgeCount returns the number of stored directed edges.
// An undirected edge counts twice; a matrix overwrite does not add a new edge.
func (g *Graph[T]) EdgeCount() int { return g.adj.edgeCount() }

// AddNode appends a node with clean scratch state and returns its index.
// Adjacency storage grows in lock-step. It never fails.
//
// Complexity: O(1) amortized (list, edge list), amortized O(n) (matrix).
func (g *Graph[T]) AddNode(data T) NodeIndex {
	idx := NodeIndex(len(g.nodes))
	g.nodes = append(g.nodes, node[T]{data: data})
	g.scratch = append(g.scratch, cleanScratch())
	g.adj.grow(len(g.nodes))

	return idx
}

// AddEdge inserts the edge u→v with the given weight. If directed is false the
// reverse edge v→u is inserted as well, with the same weight.
//
// Weights must be finite: +Inf is the matrix "no edge" sentinel, so it is
// rejected in every layout. The sign is not checked. Dijkstra and A* assume
// weight ≥ 0; a negative weight silently yields a non-shortest result.
//
// Errors:
//   - ErrIndexOutOfRange: u or v is outside [0, Len()).
//   - ErrNodeRemoved: u or v was removed.
//   - ErrInvalidWeight: weight is NaN or ±Inf.
//
// Complexity: O(1).
func (g *Graph[T]) AddEdge(u, v NodeIndex, weight float64, directed bool) error {
	if err := g.CheckIndex(u); err != nil {
		return fmt.Errorf("core: AddEdge(%d→%d): %w", u, v, err)
	}
	if err := g.CheckIndex(v); err != nil {
		return fmt.Errorf("core: AddEdge(%d→%d): %w", u, v, err)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("core: AddEdge(%d→%d): %w: %g", u, v, ErrInvalidWeight, weight)
	}

	g.adj.add(u, v, weight)
	if !directed {
		g.adj.add(v, u, weight)
	}

	return nil
}

// RemoveNode tombstones node i: its index and payload stay in place, every
// incident edge is dropped, and traversals never reach it again. Indices of
// other nodes are unaffected.
//
// Errors:
//   - ErrIndexOutOfRange: i is outside [0, Len()).
//   - ErrNodeRemoved: i was already removed.
//
// Complexity: O(V+E) for list and edge list, O(V) for matrix.
func (g *Graph[T]) RemoveNode(i NodeIndex) error {
	if err := g.CheckIndex(i); err != nil {
		return fmt.Errorf("core: RemoveNode(%d): %w", i, err)
	}
	g.adj.detach(i)
	g.nodes[i].removed = true

	return nil
}

// IsRemoved reports whether i is a tombstoned node. Out-of-range indices report false.
func (g *Graph[T]) IsRemoved(i NodeIndex) bool {
	return g.inRange(i) && g.nodes[i].removed
}

// CheckIndex validates i as a live node index.
// It returns nil, ErrIndexOutOfRange or ErrNodeRemoved (wrapped with the index).
func (g *Graph[T]) CheckIndex(i NodeIndex) error {
	if !g.inRange(i) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(g.nodes))
	}
	if g.nodes[i].removed {
		return fmt.Errorf("%w: %d", ErrNodeRemoved, i)
	}

	return nil
}

func (g *Graph[T]) inRange(i NodeIndex) bool {
	return i >= 0 && int(i) < len(g.nodes)
}

// Data returns the payload of node i. Removed nodes still return their payload.
func (g *Graph[T]) Data(i NodeIndex) (T, error) {
	if !g.inRange(i) {
		var zero T
		return zero, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(g.nodes))
	}

	return g.nodes[i].data, nil
}

// Collect copies the payloads of the given indices into a new slice.
// Out-of-range indices yield the zero value of T.
func (g *Graph[T]) Collect(indices []NodeIndex) []T {
	out := make([]T, len(indices))
	for k, i := range indices {
		if g.inRange(i) {
			out[k] = g.nodes[i].data
		}
	}

	return out
}

// OutgoingEdges returns a lazy, finite, restartable sequence of
// (destination, weight) pairs leaving u. Order is insertion order for
// AdjacencyList and EdgeList and ascending destination index for
// AdjacencyMatrix. Invalid or removed u yields an empty sequence.
func (g *Graph[T]) OutgoingEdges(u NodeIndex) iter.Seq2[NodeIndex, float64] {
	if g.CheckIndex(u) != nil {
		return func(func(NodeIndex, float64) bool) {}
	}

	return g.adj.outgoing(u)
}

// Connected reports whether an edge u→v exists. Invalid indices report false.
//
// Complexity: O(1) matrix, O(deg(u)) list, O(E) edge list.
func (g *Graph[T]) Connected(u, v NodeIndex) bool {
	if g.CheckIndex(u) != nil || g.CheckIndex(v) != nil {
		return false
	}

	return g.adj.connected(u, v)
}

// Clear drops every node and edge; the representation is preserved.
func (g *Graph[T]) Clear() {
	g.nodes = g.nodes[:0]
	g.scratch = g.scratch[:0]
	g.adj.clear()
}
