// Package core provides the index-addressed Graph shared by every traversal
// and shortest-path package of pathgraph.
//
// A Graph[T] stores nodes carrying a payload of type T and weighted directed
// edges between them. Nodes are addressed by NodeIndex, assigned in insertion
// order starting at 0 and never reused, so an index stays valid for the whole
// lifetime of the graph (RemoveNode tombstones instead of compacting).
//
// Representations (GraphOption):
//
//	– WithRepresentation(AdjacencyList)   default; per-node ordered arc slices
//	– WithRepresentation(AdjacencyMatrix) N×N weight grid, +Inf = no edge,
//	                                      a repeated edge overwrites its weight
//	– WithRepresentation(EdgeList)        one flat ordered edge slice
//
// All three answer the same queries (OutgoingEdges, Connected) and every
// algorithm produces the same result on each of them, up to edge ordering.
//
// Scratch state:
//
// Each node owns a Scratch record {Visited, InFrontier, Cost, Parent,
// Heuristic} written by algorithms through Graph.Scratch. Scratch is kept
// apart from topology: BeginSearch serializes runs, resets every record before
// the run and again on release, so repeated and interleaved calls never see
// stale marks.
//
// AddEdge rejects NaN and infinite weights (ErrInvalidWeight); the sign is not
// checked. Dijkstra and A* require non-negative weights; negative weights
// produce non-shortest results without an error.
//
// Observability:
//
// Algorithms report a RunStats to an optional Observer after each run; see
// package metrics for a Prometheus implementation.
//
// Complexity:
//
//	AddNode        O(1) amortized (list, edges), amortized O(V) (matrix)
//	AddEdge        O(1)
//	OutgoingEdges  O(deg) list, O(V) matrix, O(E) edges
//	Connected      O(deg) list, O(1) matrix, O(E) edges
//	Reset          O(V)
package core
