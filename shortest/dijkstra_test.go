package shortest_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/pathgraph/core"
	"github.com/katalvlaran/pathgraph/frontier"
	"github.com/katalvlaran/pathgraph/shortest"
)

func TestDijkstraTo_ScenarioABCDE(t *testing.T) {
	combos(t, func(t *testing.T, r core.Representation, k frontier.Kind) {
		g := scenarioABCDE(t, r)
		p, err := shortest.DijkstraTo(g, 0, 3, shortest.WithFrontier(k))
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C", "D"}, p.Data)
		assert.Equal(t, []core.NodeIndex{0, 1, 2, 3}, p.Nodes)
		assert.Equal(t, 4.0, p.Cost)
		assert.Equal(t, 4, p.Len())
	})
}

func TestDijkstraTo_DirectedWeighted(t *testing.T) {
	// A→B 50, A→D 80, B→C 60, B→D 90, C→E 40, D→C 20, D→E 70
	combos(t, func(t *testing.T, r core.Representation, k frontier.Kind) {
		g := letters(t, r, true, "ABCDE",
			wedge{0, 1, 50}, wedge{0, 3, 80}, wedge{1, 2, 60}, wedge{1, 3, 90},
			wedge{2, 4, 40}, wedge{3, 2, 20}, wedge{3, 4, 70})
		p, err := shortest.DijkstraTo(g, 0, 4, shortest.WithFrontier(k))
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "D", "C", "E"}, p.Data)
		assert.Equal(t, 140.0, p.Cost)

		_, err = shortest.DijkstraTo(g, 4, 0, shortest.WithFrontier(k))
		assert.ErrorIs(t, err, shortest.ErrUnreachable, "edges are one-way")
	})
}

func TestDijkstraTo_Unreachable(t *testing.T) {
	combos(t, func(t *testing.T, r core.Representation, k frontier.Kind) {
		g := letters(t, r, false, "AB")
		_, err := shortest.DijkstraTo(g, 0, 1, shortest.WithFrontier(k))
		require.ErrorIs(t, err, shortest.ErrUnreachable)
		for i := range g.Len() {
			require.False(t, g.Scratch(core.NodeIndex(i)).Visited, "scratch reset after failure")
		}
	})
}

func TestDijkstraTo_SameNode(t *testing.T) {
	g := scenarioABCDE(t, core.AdjacencyList)
	p, err := shortest.DijkstraTo(g, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeIndex{2}, p.Nodes)
	assert.Zero(t, p.Cost)
}

func TestSearch_Errors(t *testing.T) {
	_, err := shortest.Dijkstra[string](nil, 0)
	assert.ErrorIs(t, err, shortest.ErrGraphNil)
	_, err = shortest.DijkstraTo[string](nil, 0, 1)
	assert.ErrorIs(t, err, shortest.ErrGraphNil)

	g := scenarioABCDE(t, core.AdjacencyList)
	_, err = shortest.Dijkstra(g, 7)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
	_, err = shortest.DijkstraTo(g, 0, 7)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
	_, err = shortest.DijkstraTo(g, -3, 0)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
	_, err = shortest.Dijkstra(g, 0, shortest.WithMaxDistance(-1))
	assert.ErrorIs(t, err, shortest.ErrOptionViolation)
	_, err = shortest.DijkstraTo(g, 0, 1, shortest.WithEdgeThreshold(0))
	assert.ErrorIs(t, err, shortest.ErrOptionViolation)

	require.NoError(t, g.RemoveNode(4))
	_, err = shortest.DijkstraTo(g, 0, 4)
	assert.ErrorIs(t, err, core.ErrNodeRemoved)
}

func TestSearch_EmptyGraph(t *testing.T) {
	g := core.New[string]()
	tree, err := shortest.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Empty(t, tree.Cost)
	assert.Equal(t, core.NoParent, tree.Start)

	_, err = shortest.DijkstraTo(g, 0, 0)
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
}

func TestDijkstra_Tree(t *testing.T) {
	combos(t, func(t *testing.T, r core.Representation, k frontier.Kind) {
		g := scenarioABCDE(t, r)
		tree, err := shortest.Dijkstra(g, 0, shortest.WithFrontier(k))
		require.NoError(t, err)

		assert.Equal(t, []float64{0, 1, 3, 4, math.Inf(1)}, tree.Cost)
		assert.Equal(t, []core.NodeIndex{core.NoParent, 0, 1, 2, core.NoParent}, tree.Parent)
		assert.Equal(t, []string{"A"}, tree.Paths[0].Data, "start's own path is [start]")
		assert.Equal(t, []string{"A", "B", "C"}, tree.Paths[2].Data)
		assert.Empty(t, tree.Paths[4].Nodes)

		p, err := tree.PathTo(3)
		require.NoError(t, err)
		assert.Equal(t, 4.0, p.Cost)

		_, err = tree.PathTo(4)
		assert.ErrorIs(t, err, shortest.ErrUnreachable)
		_, err = tree.PathTo(11)
		assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
	})
}

// TestDijkstra_MatchesBruteForce compares against Bellman-Ford on random graphs.
func TestDijkstra_MatchesBruteForce(t *testing.T) {
	const n = 40
	for seed := int64(1); seed <= 5; seed++ {
		edges := randomEdges(seed, n, 160)
		want := bellmanFord(n, edges, 0)
		combos(t, func(t *testing.T, r core.Representation, k frontier.Kind) {
			g := numbered(t, r, n, edges)
			tree, err := shortest.Dijkstra(g, 0, shortest.WithFrontier(k))
			require.NoError(t, err)
			require.Equal(t, want, tree.Cost)
			for i := range n {
				if tree.Reachable(core.NodeIndex(i)) {
					requireValidPath(t, g, tree.Paths[i].Nodes, tree.Cost[i], 0, core.NodeIndex(i))
				}
			}
		})
	}
}

// TestDijkstra_MatchesGonum cross-checks distances with gonum's implementation.
func TestDijkstra_MatchesGonum(t *testing.T) {
	const n = 60
	edges := randomEdges(99, n, 300)

	ref := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i := range n {
		ref.AddNode(simple.Node(i))
	}
	for _, e := range edges {
		ref.SetWeightedEdge(ref.NewWeightedEdge(simple.Node(e.from), simple.Node(e.to), e.w))
	}

	for src := 0; src < n; src += 7 {
		oracle := path.DijkstraFrom(simple.Node(src), ref)
		g := numbered(t, core.AdjacencyList, n, edges)
		tree, err := shortest.Dijkstra(g, core.NodeIndex(src))
		require.NoError(t, err)
		for i := range n {
			assert.Equal(t, oracle.WeightTo(int64(i)), tree.Cost[i], "src=%d dst=%d", src, i)
		}
	}
}

// TestDijkstraTo_AgreesWithTree checks the early-exit search against the full tree.
func TestDijkstraTo_AgreesWithTree(t *testing.T) {
	const n = 30
	edges := randomEdges(7, n, 90)
	g := numbered(t, core.AdjacencyMatrix, n, edges)
	tree, err := shortest.Dijkstra(g, 0)
	require.NoError(t, err)
	for i := range n {
		p, err := shortest.DijkstraTo(g, 0, core.NodeIndex(i))
		if !tree.Reachable(core.NodeIndex(i)) {
			require.ErrorIs(t, err, shortest.ErrUnreachable)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tree.Cost[i], p.Cost)
		require.Equal(t, tree.Paths[i].Nodes, p.Nodes, "deterministic tie-breaking")
	}
}

func TestDijkstra_Idempotent(t *testing.T) {
	g := scenarioABCDE(t, core.EdgeList)
	first, err := shortest.Dijkstra(g, 0)
	require.NoError(t, err)
	second, err := shortest.Dijkstra(g, 0)
	require.NoError(t, err)
	require.Equal(t, first, second)

	p1, err := shortest.DijkstraTo(g, 0, 3)
	require.NoError(t, err)
	p2, err := shortest.DijkstraTo(g, 0, 3)
	require.NoError(t, err)
	require.Equal(t, p1, p2)
}

func TestDijkstra_SkipsRemovedNodes(t *testing.T) {
	combos(t, func(t *testing.T, r core.Representation, k frontier.Kind) {
		g := scenarioABCDE(t, r)
		require.NoError(t, g.RemoveNode(2)) // C
		p, err := shortest.DijkstraTo(g, 0, 3, shortest.WithFrontier(k))
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "D"}, p.Data)
		assert.Equal(t, 6.0, p.Cost)
	})
}

func TestPath_DataSurvivesMutation(t *testing.T) {
	g := scenarioABCDE(t, core.AdjacencyList)
	p, err := shortest.DijkstraTo(g, 0, 3)
	require.NoError(t, err)

	g.Clear()
	for range 100 {
		g.AddNode("x")
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, p.Data)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := scenarioABCDE(t, core.AdjacencyList)
	tree, err := shortest.Dijkstra(g, 0, shortest.WithMaxDistance(3))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 3, math.Inf(1), math.Inf(1)}, tree.Cost)

	_, err = shortest.DijkstraTo(g, 0, 3, shortest.WithMaxDistance(3))
	assert.ErrorIs(t, err, shortest.ErrUnreachable)
}

func TestDijkstra_EdgeThreshold(t *testing.T) {
	g := scenarioABCDE(t, core.AdjacencyList)
	// walls: A–C(4), B–D(5); A→D still goes A,B,C,D
	p, err := shortest.DijkstraTo(g, 0, 3, shortest.WithEdgeThreshold(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, p.Data)

	// walls: every edge of weight ≥ 2, which cuts B from C
	tree, err := shortest.Dijkstra(g, 0, shortest.WithEdgeThreshold(2))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, math.Inf(1), math.Inf(1), math.Inf(1)}, tree.Cost)
	_, err = shortest.DijkstraTo(g, 0, 3, shortest.WithEdgeThreshold(2))
	assert.ErrorIs(t, err, shortest.ErrUnreachable)
}

// TestDijkstra_ZeroWeightEdges checks that zero weights are legal.
func TestDijkstra_ZeroWeightEdges(t *testing.T) {
	g := letters(t, core.AdjacencyList, true, "ABC", wedge{0, 1, 0}, wedge{1, 2, 0}, wedge{0, 2, 1})
	p, err := shortest.DijkstraTo(g, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, p.Data)
	assert.Zero(t, p.Cost)
}

func TestSearch_Observer(t *testing.T) {
	g := scenarioABCDE(t, core.AdjacencyList)
	var stats []core.RunStats
	obs := core.ObserverFunc(func(s core.RunStats) { stats = append(stats, s) })

	_, err := shortest.Dijkstra(g, 0, shortest.WithObserver(obs))
	require.NoError(t, err)
	_, err = shortest.DijkstraTo(g, 0, 4, shortest.WithObserver(obs))
	require.Error(t, err)

	require.Len(t, stats, 2)
	assert.Equal(t, core.AlgoDijkstra, stats[0].Algorithm)
	assert.Equal(t, 4, stats[0].Settled)
	assert.Positive(t, stats[0].Relaxations)
	assert.Equal(t, core.AlgoDijkstraTo, stats[1].Algorithm)
	assert.Equal(t, core.NodeIndex(4), stats[1].Target)
	assert.True(t, errors.Is(stats[1].Err, shortest.ErrUnreachable))
}

func TestSearch_ConcurrentCallsAreSerialized(t *testing.T) {
	g := numbered(t, core.AdjacencyList, 50, randomEdges(3, 50, 200))
	want, err := shortest.Dijkstra(g, 0)
	require.NoError(t, err)

	const workers = 8
	var wg sync.WaitGroup
	got := make([]*shortest.Tree[int], workers)
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i], _ = shortest.Dijkstra(g, 0)
		}(i)
	}
	wg.Wait()
	for i := range workers {
		require.Equal(t, want.Cost, got[i].Cost)
	}
}
