// Package gridgraph treats a 2D grid of cells as a graph: island detection,
// minimal-cost island bridging and A* routing over land.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - ToCoreGraph converts land adjacency into a *core.Graph[Cell] whose
//     node indices are the row-major cell indices.
//   - ConnectedComponents finds islands with bfs.BreadthFirstSearch.
//   - ExpandIsland counts the water cells to convert to join two islands,
//     using shortest.Dijkstra over a 0/1-weighted conversion graph.
//   - Route finds the cheapest land path with shortest.AStar; Cell exposes
//     Point() so the heuristic package can estimate distances.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ExpandIsland:        O(W×H×d×log(W×H)), Memory: O(W×H×d).
//   - Route:               O(W×H×d×log(W×H)) worst case.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
//   - ErrOutOfBounds: a Route endpoint lies outside the grid.
package gridgraph
