package shortest_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgraph/core"
	"github.com/katalvlaran/pathgraph/frontier"
)

var (
	representations = []core.Representation{core.AdjacencyList, core.AdjacencyMatrix, core.EdgeList}
	frontiers       = []frontier.Kind{frontier.KindTree, frontier.KindHeap}
)

// combos runs fn for every representation × frontier pair.
func combos(t *testing.T, fn func(t *testing.T, r core.Representation, k frontier.Kind)) {
	for _, r := range representations {
		for _, k := range frontiers {
			t.Run(r.String()+"/"+k.String(), func(t *testing.T) { fn(t, r, k) })
		}
	}
}

type wedge struct {
	from, to int
	w        float64
}

// letters builds a graph with one node per letter of names.
func letters(t testing.TB, r core.Representation, directed bool, names string, edges ...wedge) *core.Graph[string] {
	t.Helper()
	g := core.New[string](core.WithRepresentation(r))
	for i := 0; i < len(names); i++ {
		g.AddNode(string(names[i]))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(core.NodeIndex(e.from), core.NodeIndex(e.to), e.w, directed))
	}

	return g
}

// scenarioABCDE is A–B(1), A–C(4), B–C(2), B–D(5), C–D(1), undirected.
func scenarioABCDE(t testing.TB, r core.Representation) *core.Graph[string] {
	return letters(t, r, false, "ABCDE",
		wedge{0, 1, 1}, wedge{0, 2, 4}, wedge{1, 2, 2}, wedge{1, 3, 5}, wedge{2, 3, 1})
}

// randomEdges returns m distinct directed edges over n nodes without
// self-loops, with integer weights in [1, 20] so path sums are exact.
func randomEdges(seed int64, n, m int) []wedge {
	rng := rand.New(rand.NewSource(seed))
	seen := map[[2]int]bool{}
	var out []wedge
	for len(out) < m {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v || seen[[2]int{u, v}] {
			continue
		}
		seen[[2]int{u, v}] = true
		out = append(out, wedge{u, v, float64(1 + rng.Intn(20))})
	}

	return out
}

func numbered(t testing.TB, r core.Representation, n int, edges []wedge) *core.Graph[int] {
	t.Helper()
	g := core.New[int](core.WithRepresentation(r))
	for i := range n {
		g.AddNode(i)
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(core.NodeIndex(e.from), core.NodeIndex(e.to), e.w, true))
	}

	return g
}

// bellmanFord is the brute-force reference: relax every edge n-1 times.
func bellmanFord(n int, edges []wedge, src int) []float64 {
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[src] = 0
	for range n - 1 {
		for _, e := range edges {
			if d := dist[e.from] + e.w; d < dist[e.to] {
				dist[e.to] = d
			}
		}
	}

	return dist
}

// requireValidPath checks endpoints, edge existence and the cost sum.
func requireValidPath[T any](t *testing.T, g *core.Graph[T], nodes []core.NodeIndex, cost float64, from, to core.NodeIndex) {
	t.Helper()
	require.NotEmpty(t, nodes)
	require.Equal(t, from, nodes[0])
	require.Equal(t, to, nodes[len(nodes)-1])
	sum := 0.0
	for k := 1; k < len(nodes); k++ {
		best := math.Inf(1)
		for v, w := range g.OutgoingEdges(nodes[k-1]) {
			if v == nodes[k] && w < best {
				best = w
			}
		}
		require.False(t, math.IsInf(best, 1), "no edge %d→%d", nodes[k-1], nodes[k])
		sum += best
	}
	require.InDelta(t, cost, sum, 1e-9)
}
