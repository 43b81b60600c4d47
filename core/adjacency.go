// File: adjacency.go
// Role: The adjacency contract shared by the three physical representations.
// Determinism:
//   - outgoing() yields in insertion order (list, edges) or index order (matrix).
// Invariants:
//   - Indices passed in are already validated by Graph; implementations never
//     bounds-check user input themselves.

package core

import "iter"

// adjacency is the storage contract behind Graph. Each implementation must
// keep its node dimension in lock-step with Graph.nodes via grow.
type adjacency interface {
	// grow extends storage so that indices [0, n) are addressable.
	grow(n int)

	// add stores the directed edge u→v with weight w.
	add(u, v NodeIndex, w float64)

	// outgoing yields (destination, weight) pairs of u.
	outgoing(u NodeIndex) iter.Seq2[NodeIndex, float64]

	// connected reports whether at least one u→v edge exists.
	connected(u, v NodeIndex) bool

	// detach drops every edge that starts or ends at u.
	detach(u NodeIndex)

	// edgeCount returns the number of stored directed edges.
	edgeCount() int

	// clear drops all nodes and edges.
	clear()
}

// newAdjacency returns the storage for r, pre-sized for capacity nodes.
func newAdjacency(r Representation, capacity int) adjacency {
	switch r {
	case AdjacencyMatrix:
		return newAdjacencyMatrix(capacity)
	case EdgeList:
		return newEdgeList(capacity)
	default:
		return newAdjacencyList(capacity)
	}
}
