// Package pathgraph is an in-memory engine for traversing graphs and finding
// shortest paths over generic node payloads.
//
// 🚀 What is pathgraph?
//
//	A small, deterministic library that brings together:
//		• Core store: nodes addressed by stable NodeIndex, weighted directed
//		  edges, three interchangeable adjacency layouts (list, matrix, edges)
//		• Traversals: BFS, iterative and recursive DFS (pre- and post-order)
//		• Shortest paths: Dijkstra (all destinations or one target) and A*
//		• Heuristics: planar, Manhattan, 3-D and n-dimensional estimates
//		• Frontiers: B-tree or binary heap, with identical settle order
//		• Grids: land/water cell grids with islands, routing and island expansion
//		• Builders: path, cycle, star, complete, grid and random sparse graphs
//
// ✨ Why choose pathgraph?
//
//   - Deterministic – equal keys settle in ascending index order
//   - Observable – every run reports RunStats to an optional Observer and
//     logs through log/slog; metrics.Collector exports them to Prometheus
//   - Configurable – config loads YAML and turns it into search options
//
// Packages:
//
//	core/          Graph[T], NodeIndex, per-node scratch state, RunStats
//	frontier/      priority frontier contract and its two implementations
//	bfs/           breadth-first traversal
//	dfs/           depth-first traversal, iterative and recursive
//	heuristic/     A* estimates and the Site payload
//	shortest/      Dijkstra, DijkstraTo, AStar
//	gridgraph/     2-D cell grids on top of core
//	builder/       deterministic graph constructors
//	metrics/       Prometheus collector for RunStats
//	config/        YAML configuration
//	cmd/pathgraph  command-line front end
//	examples/      runnable end-to-end scenarios
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four nodes and eight directed edges (each side
//	stored in both directions).
//
//	go get github.com/katalvlaran/pathgraph
package pathgraph
