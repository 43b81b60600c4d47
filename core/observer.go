package core

import "time"

// Algorithm names reported in RunStats.Algorithm.
const (
	AlgoBFS          = "bfs"
	AlgoDFS          = "dfs"
	AlgoDFSRecursive = "dfs_recursive"
	AlgoDijkstra     = "dijkstra"
	AlgoDijkstraTo   = "dijkstra_to"
	AlgoAStar        = "astar"
)

// RunStats summarizes one traversal or search run.
type RunStats struct {
	// Algorithm is one of the Algo* constants.
	Algorithm string

	// Start and Target are the endpoints; Target is NoParent for
	// traversals and all-destinations Dijkstra.
	Start, Target NodeIndex

	// Settled counts nodes visited (traversals) or popped from the frontier (searches).
	Settled int

	// Relaxations counts successful cost improvements. Zero for traversals.
	Relaxations int

	Duration time.Duration

	// Err is the error returned to the caller, if any.
	Err error
}

// Observer receives a RunStats after every run. Implementations must be safe
// for concurrent use when the same Observer is shared across graphs.
type Observer interface {
	ObserveRun(RunStats)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(RunStats)

// ObserveRun calls f(s).
func (f ObserverFunc) ObserveRun(s RunStats) { f(s) }

// NopObserver discards every RunStats.
var NopObserver Observer = ObserverFunc(func(RunStats) {})
