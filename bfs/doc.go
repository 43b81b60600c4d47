// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node.
//   - Invoke a Visitor exactly once per reachable node, at the moment the
//     node is first marked visited (level order). Unreachable nodes are
//     never visited.
//   - Return a Result containing:
//   - Order: visit sequence
//   - Depth: hop distance per node (-1 if unreached)
//   - Parent: predecessor in the BFS tree (core.NoParent if none)
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Algorithm
//
//	mark start visited, visit it, enqueue it
//	while the queue is non-empty:
//	    expand the front node: every unvisited outgoing neighbor is marked,
//	    visited and enqueued while the front node stays in place
//	    once the front node has no unvisited neighbor left, dequeue it
//
// Determinism
//
//	Neighbors are expanded in core.Graph.OutgoingEdges order: insertion order
//	for adjacency and edge lists, ascending index for the matrix.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E) with adjacency lists, O(V²) with the matrix
//   - Memory: O(V)     (queue, Depth, Parent)
//
// Usage
//
//	res, err := bfs.BreadthFirstSearch(g, start, func(i core.NodeIndex, name string) error {
//	    fmt.Println(name)
//	    return nil
//	}, bfs.WithMaxDepth(3))
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - core.ErrIndexOutOfRange if start is outside [0, Len()).
//   - core.ErrNodeRemoved     if start was removed.
//   - Wrapped Visitor errors.
//
// Every call resets the graph's scratch state before and after the walk, so
// consecutive calls are independent.
package bfs
