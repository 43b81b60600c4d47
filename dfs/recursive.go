package dfs

import "github.com/katalvlaran/pathgraph/core"

// DepthFirstSearchRecursive is DepthFirstSearch expressed through call-stack
// recursion. It visits nodes in the same order. Recursion depth grows with the
// longest DFS tree path, so prefer DepthFirstSearch on long chains.
//
// Scratch state is reset once by this entry point, never by the recursive
// helper, so nested calls cannot clear marks of an outer one.
func DepthFirstSearchRecursive[T any](g *core.Graph[T], start core.NodeIndex, visit Visitor[T], opts ...Option) (*Result, error) {
	w, err := prepare(g, start, visit, opts)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return &Result{Start: core.NoParent}, nil
	}

	return w.execute(core.AlgoDFSRecursive, func() error {
		if err := w.discover(start, core.NoParent, 0); err != nil {
			return err
		}

		return w.descend(start, 0)
	})
}

// descend explores every unvisited neighbor of u, depth-first.
func (w *walker[T]) descend(u core.NodeIndex, depth int) error {
	if w.canDescend(depth) {
		for nbr := range w.graph.OutgoingEdges(u) {
			if !w.follow(u, nbr) {
				continue
			}
			if err := w.discover(nbr, u, depth+1); err != nil {
				return err
			}
			if err := w.descend(nbr, depth+1); err != nil {
				return err
			}
		}
	}
	w.res.PostOrder = append(w.res.PostOrder, u)

	return nil
}
