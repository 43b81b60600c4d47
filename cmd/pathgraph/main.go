// Command pathgraph runs traversals and shortest-path searches over demo
// graphs, generated fixtures and grid files.
//
//	pathgraph bfs --from A --to G
//	pathgraph dfs --recursive
//	pathgraph dijkstra --scenario random --size 40 --seed 7 --from 0
//	pathgraph astar --from n0 --to n8
//	pathgraph route --grid map.txt --from 0,0 --to 9,4 --conn 8
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
