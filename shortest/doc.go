// Package shortest implements Dijkstra's algorithm (all destinations and
// single pair) and A* search over core.Graph.
//
// All three searches share one relaxation loop:
//
//	cost[start] = 0; open = {start}
//	while open is non-empty:
//	    u = open.RemoveMin(); mark u settled
//	    if u is the target: stop
//	    for each edge u→v (weight w) with v not settled:
//	        if cost[u]+w < cost[v]:
//	            remove v from open if present   // before its key changes
//	            cost[v] = cost[u]+w; parent[v] = u
//	            open.Insert(v)
//
// The open set is a frontier.Frontier ordered by cost (Dijkstra) or
// cost + heuristic (A*), ties broken by ascending node index so results are
// deterministic. Keeping exactly one entry per node (remove, then reinsert)
// is the stale-entry policy; the alternative of tolerating duplicates and
// skipping settled nodes on pop is not used.
//
// Preconditions:
//
//   - Edge weights must be non-negative. They are not validated: a negative
//     weight silently produces a non-shortest result.
//   - A* returns a shortest path only for an admissible heuristic.
//
// Complexity (V = nodes, E = edges, adjacency lists, B-tree frontier):
//
//   - Time:  O((V + E) log V)
//   - Space: O(V) for scratch and frontier; Dijkstra's Tree adds the paths.
//
// Options:
//
//   - WithFrontier(kind)          frontier.KindTree (default) or frontier.KindHeap.
//   - WithMaxDistance(d)          stop once the cheapest open cost exceeds d.
//   - WithEdgeThreshold(t)        edges with weight ≥ t are impassable.
//   - WithLogger(l), WithObserver(obs).
//
// Errors (sentinel):
//
//   - ErrGraphNil, ErrNilHeuristic, ErrOptionViolation.
//   - ErrUnreachable              no path between the requested endpoints.
//   - core.ErrIndexOutOfRange     endpoint outside [0, Len()), including any
//     endpoint of a single-pair search on an empty graph.
//   - core.ErrNodeRemoved         endpoint was removed.
//
// Example usage:
//
//	p, err := shortest.DijkstraTo(g, a, d)
//	if errors.Is(err, shortest.ErrUnreachable) {
//	    // no route
//	}
//	fmt.Println(p.Data, p.Cost)
package shortest
