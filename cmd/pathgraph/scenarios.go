package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/pathgraph/builder"
	"github.com/katalvlaran/pathgraph/core"
	"github.com/katalvlaran/pathgraph/heuristic"
)

// Scenario names accepted by --scenario.
const (
	scenarioLetters  = "letters"
	scenarioGrid     = "grid"
	scenarioRandom   = "random"
	scenarioComplete = "complete"
	scenarioCycle    = "cycle"
)

// graphFlags selects and parameterizes the labelled graph a command runs on.
type graphFlags struct {
	scenario string
	size     int
	seed     int64
	p        float64
	directed bool
}

func (f *graphFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.scenario, "scenario", scenarioLetters, "graph: letters, grid, random, complete or cycle")
	fs.IntVar(&f.size, "size", 5, "node count (grid: side length) for generated graphs")
	fs.Int64Var(&f.seed, "seed", 1, "seed for random topology and weights")
	fs.Float64Var(&f.p, "p", 0.2, "edge probability for the random scenario")
	fs.BoolVar(&f.directed, "directed", false, "generate one-way edges")
}

// build returns the selected graph in the configured representation.
func (f *graphFlags) build(e *env) (*core.Graph[string], error) {
	if f.scenario == scenarioLetters {
		return letters(e.graphOptions())
	}

	bopts := []builder.BuilderOption{
		builder.WithSeed(f.seed),
		builder.WithUniformWeight(1, 10),
		builder.WithDirected(f.directed),
	}
	var c builder.Constructor
	switch f.scenario {
	case scenarioGrid:
		c = builder.Grid(f.size, f.size)
	case scenarioRandom:
		c = builder.RandomSparse(f.size, f.p)
	case scenarioComplete:
		c = builder.Complete(f.size)
	case scenarioCycle:
		c = builder.Cycle(f.size)
	default:
		return nil, fmt.Errorf("unknown scenario %q", f.scenario)
	}

	return builder.BuildGraph(e.graphOptions(), bopts, c)
}

// letters is the seven-node demo graph: A links to B, C, D and E; B to E and
// F; G closes D and E. All edges are undirected with weight 1.
func letters(opts []core.GraphOption) (*core.Graph[string], error) {
	g := core.New[string](opts...)
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		g.AddNode(name)
	}
	for _, e := range [][2]core.NodeIndex{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 4}, {1, 5}, {3, 6}, {4, 6}} {
		if err := g.AddEdge(e[0], e[1], 1, false); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// lattice is the 3×3 directed demo lattice: sites n0..n8 at (x,y) with
// n = 3y + x, edges weighted by their Euclidean length.
func lattice(opts []core.GraphOption) (*core.Graph[heuristic.Site], error) {
	g := core.New[heuristic.Site](opts...)
	for i := 0; i < 9; i++ {
		g.AddNode(heuristic.Site{
			Name: fmt.Sprintf("n%d", i),
			Pos:  r3.Vec{X: float64(i % 3), Y: float64(i / 3)},
		})
	}
	edges := [][2]core.NodeIndex{
		{0, 1}, {0, 3}, {1, 2}, {1, 4}, {2, 5}, {3, 6}, {3, 4}, {4, 5},
		{4, 7}, {5, 8}, {6, 7}, {7, 8}, {7, 4}, {4, 1}, {5, 2},
	}
	for _, e := range edges {
		a, _ := g.Data(e[0])
		b, _ := g.Data(e[1])
		if err := g.AddEdge(e[0], e[1], r3.Norm(r3.Sub(b.Pos, a.Pos)), true); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// lookup finds the first live node whose label equals name.
func lookup[T any](g *core.Graph[T], name string, label func(T) string) (core.NodeIndex, error) {
	for i := core.NodeIndex(0); int(i) < g.Len(); i++ {
		if g.IsRemoved(i) {
			continue
		}
		if d, _ := g.Data(i); label(d) == name {
			return i, nil
		}
	}

	return core.NoParent, fmt.Errorf("no node labelled %q", name)
}

func identity(s string) string { return s }

func siteName(s heuristic.Site) string { return s.Name }

// formatCost prints integral costs without a fraction.
func formatCost(c float64) string {
	if c == math.Trunc(c) && !math.IsInf(c, 0) {
		return fmt.Sprintf("%.0f", c)
	}

	return fmt.Sprintf("%.4f", c)
}
