// Package heuristic provides remaining-cost estimates for A* search.
//
// A Func estimates the cost from node to target. It only reads payloads via
// core.Graph.Data and never touches scratch state. A* returns optimal paths
// only when the estimate is admissible (never above the true remaining cost);
// the search does not check this.
//
// Built-in estimates:
//
//	Zero       0 everywhere; A* degrades to Dijkstra
//	Euclidean  3-D straight-line distance (gonum spatial/r3)
//	Planar     2-D straight-line distance (gonum spatial/r2)
//	Manhattan  2-D |dx|+|dy|, admissible on 4-connected unit grids
//	Vector     n-D L2 distance between embeddings (gonum floats)
//
// Each spatial estimate takes a scale factor. DefaultScale (0.01) keeps the
// estimate well under edge weights measured in the same units as positions.
package heuristic

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/pathgraph/core"
)

// DefaultScale is the underestimating factor applied by the spatial estimates.
const DefaultScale = 0.01

// Func estimates the remaining cost from node to target. It should return a
// non-negative value and must not mutate g. A* treats negative and NaN
// estimates as 0.
type Func[T any] func(g *core.Graph[T], node, target core.NodeIndex) float64

// Spatial payloads expose a 3-D position.
type Spatial interface {
	Position() r3.Vec
}

// Located payloads expose a 2-D position.
type Located interface {
	Point() r2.Vec
}

// Embedded payloads expose an n-dimensional coordinate vector.
type Embedded interface {
	Embedding() []float64
}

// Zero returns an estimate of 0 for every node.
func Zero[T any]() Func[T] {
	return func(*core.Graph[T], core.NodeIndex, core.NodeIndex) float64 { return 0 }
}

// pair loads the payloads of node and target. Indices handed out by the
// search are always in range, so the error is ignored.
func pair[T any](g *core.Graph[T], node, target core.NodeIndex) (T, T) {
	a, _ := g.Data(node)
	b, _ := g.Data(target)

	return a, b
}

// Euclidean returns |pos(node) - pos(target)| * scale.
func Euclidean[T Spatial](scale float64) Func[T] {
	return func(g *core.Graph[T], node, target core.NodeIndex) float64 {
		a, b := pair(g, node, target)

		return r3.Norm(r3.Sub(a.Position(), b.Position())) * scale
	}
}

// Planar returns |pt(node) - pt(target)| * scale.
func Planar[T Located](scale float64) Func[T] {
	return func(g *core.Graph[T], node, target core.NodeIndex) float64 {
		a, b := pair(g, node, target)

		return r2.Norm(r2.Sub(a.Point(), b.Point())) * scale
	}
}

// Manhattan returns (|dx| + |dy|) * scale.
func Manhattan[T Located](scale float64) Func[T] {
	return func(g *core.Graph[T], node, target core.NodeIndex) float64 {
		a, b := pair(g, node, target)
		d := r2.Sub(a.Point(), b.Point())

		return (math.Abs(d.X) + math.Abs(d.Y)) * scale
	}
}

// Vector returns the L2 distance between the embeddings of node and target,
// times scale. Embeddings of different length estimate 0.
func Vector[T Embedded](scale float64) Func[T] {
	return func(g *core.Graph[T], node, target core.NodeIndex) float64 {
		a, b := pair(g, node, target)
		ea, eb := a.Embedding(), b.Embedding()
		if len(ea) != len(eb) {
			return 0
		}

		return floats.Distance(ea, eb, 2) * scale
	}
}

// Scaled multiplies the estimate of h by factor. A negative or NaN factor
// yields estimates that A* treats as 0.
func Scaled[T any](h Func[T], factor float64) Func[T] {
	return func(g *core.Graph[T], node, target core.NodeIndex) float64 {
		return h(g, node, target) * factor
	}
}
