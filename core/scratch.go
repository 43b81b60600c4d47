// File: scratch.go
// Role: Mutable per-node search state and the search bracket.
// Invariants:
//   - Outside a search every Scratch entry equals cleanScratch().
//   - At most one search runs on a Graph at a time (searchMu).

package core

// Scratch returns a pointer to the mutable scratch state of node i.
// The pointer is valid until the next AddNode or Clear.
// It panics if i is outside [0, Len()); callers validate indices first.
func (g *Graph[T]) Scratch(i NodeIndex) *Scratch {
	return &g.scratch[i]
}

// Reset restores every node's scratch state to the clean value.
//
// Complexity: O(V).
func (g *Graph[T]) Reset() {
	clean := cleanScratch()
	for i := range g.scratch {
		g.scratch[i] = clean
	}
}

// BeginSearch claims the graph's scratch state for one traversal or search.
// It blocks until any running search finishes, resets scratch, and returns a
// release func that resets scratch again and hands the graph to the next caller.
// The release func must be called exactly once, typically via defer:
//
//	release := g.BeginSearch()
//	defer release()
func (g *Graph[T]) BeginSearch() (release func()) {
	g.searchMu.Lock()
	g.Reset()

	return func() {
		g.Reset()
		g.searchMu.Unlock()
	}
}
