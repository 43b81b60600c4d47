package dfs

import "github.com/katalvlaran/pathgraph/core"

// frame is one explicit-stack entry: a node, a snapshot of its outgoing
// neighbors and a resume position, so the node is resumed rather than
// rescanned after a child is popped. Visited marks are checked at resume time.
type frame struct {
	node  core.NodeIndex
	depth int
	nbrs  []core.NodeIndex
	pos   int
}

// DepthFirstSearch runs an iterative depth-first search on g from start,
// calling visit once per reachable node in pre-order. visit may be nil.
//
// The top of the stack is expanded one unvisited neighbor at a time: the
// neighbor is marked, visited and pushed while the top stays in place; a node
// with no unvisited neighbor left is popped.
//
// Errors: ErrGraphNil, ErrOptionViolation, core.ErrIndexOutOfRange,
// core.ErrNodeRemoved, or the visitor's wrapped error.
// An empty graph is a no-op: an empty Result and nil error.
func DepthFirstSearch[T any](g *core.Graph[T], start core.NodeIndex, visit Visitor[T], opts ...Option) (*Result, error) {
	w, err := prepare(g, start, visit, opts)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return &Result{Start: core.NoParent}, nil
	}

	return w.execute(core.AlgoDFS, func() error { return w.iterate(start) })
}

func (w *walker[T]) push(stack []frame, i core.NodeIndex, depth int) []frame {
	f := frame{node: i, depth: depth}
	if w.canDescend(depth) {
		for nbr := range w.graph.OutgoingEdges(i) {
			f.nbrs = append(f.nbrs, nbr)
		}
	}

	return append(stack, f)
}

func (w *walker[T]) iterate(start core.NodeIndex) error {
	if err := w.discover(start, core.NoParent, 0); err != nil {
		return err
	}
	stack := w.push(nil, start, 0)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		child := core.NoParent
		for top.pos < len(top.nbrs) {
			nbr := top.nbrs[top.pos]
			top.pos++
			if w.follow(top.node, nbr) {
				child = nbr
				break
			}
		}
		if child == core.NoParent {
			// top exhausted
			w.res.PostOrder = append(w.res.PostOrder, top.node)
			stack = stack[:len(stack)-1]
			continue
		}
		if err := w.discover(child, top.node, top.depth+1); err != nil {
			return err
		}
		stack = w.push(stack, child, top.depth+1)
	}

	return nil
}
