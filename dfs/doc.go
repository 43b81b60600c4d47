// Package dfs implements depth-first search on core.Graph, iteratively with an
// explicit stack and recursively through the call stack.
//
// Key features:
//   - DepthFirstSearch(g, start, visit, opts...): explicit stack of edge cursors
//   - DepthFirstSearchRecursive(g, start, visit, opts...): same visit order via recursion
//   - Visitor is invoked exactly once per reachable node, in pre-order
//   - Result reports pre-order, post-order, tree depths and parent links
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//
// Complexity:
//
//   - Time:   O(V + E) with adjacency lists (O(V²) matrix, O(V·E) edge list).
//   - Memory: O(V) for the stack (or recursion) and result slices.
//
// Options:
//
//   - WithMaxDepth(limit)       stops descending beyond the given depth (>0).
//   - WithFilterNeighbor(fn)    filters edges; return false to skip.
//   - WithLogger(l)             Debug records at start and finish.
//   - WithObserver(obs)         receives core.RunStats after the run.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrOptionViolation        if an Option is invalid.
//   - core.ErrIndexOutOfRange   if start is outside [0, Len()).
//   - core.ErrNodeRemoved       if start was removed.
//   - any error returned by the Visitor, wrapped.
package dfs
