package core_test

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathgraph/core"
)

// outgoing drains OutgoingEdges(u) into two parallel slices.
func outgoing[T any](g *core.Graph[T], u core.NodeIndex) ([]core.NodeIndex, []float64) {
	var to []core.NodeIndex
	var w []float64
	for v, weight := range g.OutgoingEdges(u) {
		to = append(to, v)
		w = append(w, weight)
	}

	return to, w
}

// GraphSuite runs the same checks against one Representation.
type GraphSuite struct {
	suite.Suite
	repr core.Representation
	g    *core.Graph[string]
}

func (s *GraphSuite) SetupTest() {
	s.g = core.New[string](core.WithRepresentation(s.repr))
}

func TestGraphSuite_List(t *testing.T) {
	suite.Run(t, &GraphSuite{repr: core.AdjacencyList})
}

func TestGraphSuite_Matrix(t *testing.T) {
	suite.Run(t, &GraphSuite{repr: core.AdjacencyMatrix})
}

func TestGraphSuite_EdgeList(t *testing.T) {
	suite.Run(t, &GraphSuite{repr: core.EdgeList})
}

func (s *GraphSuite) TestAddNodeAssignsSequentialIndices() {
	require := require.New(s.T())
	require.Equal(0, s.g.Len())
	for i, name := range []string{"A", "B", "C"} {
		idx := s.g.AddNode(name)
		require.Equal(core.NodeIndex(i), idx)
	}
	require.Equal(3, s.g.Len())
	require.Equal(s.repr, s.g.Representation())

	data, err := s.g.Data(1)
	require.NoError(err)
	require.Equal("B", data)

	// every new node starts with clean scratch
	sc := s.g.Scratch(2)
	require.False(sc.Visited)
	require.False(sc.InFrontier)
	require.True(math.IsInf(sc.Cost, 1))
	require.Equal(core.NoParent, sc.Parent)
	require.Zero(sc.Heuristic)
}

func (s *GraphSuite) TestAddEdgeDirectedAndUndirected() {
	require := require.New(s.T())
	a, b, c := s.g.AddNode("A"), s.g.AddNode("B"), s.g.AddNode("C")

	require.NoError(s.g.AddEdge(a, b, 2, true))
	require.True(s.g.Connected(a, b))
	require.False(s.g.Connected(b, a), "directed edge must not be mirrored")

	require.NoError(s.g.AddEdge(b, c, 3, false))
	require.True(s.g.Connected(b, c))
	require.True(s.g.Connected(c, b))
	require.Equal(3, s.g.EdgeCount())

	to, w := outgoing(s.g, c)
	require.Equal([]core.NodeIndex{b}, to)
	require.Equal([]float64{3}, w)
}

func (s *GraphSuite) TestAddEdgeRejectsBadIndices() {
	require := require.New(s.T())
	a := s.g.AddNode("A")

	require.ErrorIs(s.g.AddEdge(a, 5, 1, true), core.ErrIndexOutOfRange)
	require.ErrorIs(s.g.AddEdge(-1, a, 1, true), core.ErrIndexOutOfRange)
	require.Zero(s.g.EdgeCount(), "failed AddEdge must not mutate")

	_, err := s.g.Data(7)
	require.ErrorIs(err, core.ErrIndexOutOfRange)
}

func (s *GraphSuite) TestAddEdgeRejectsNonFiniteWeights() {
	require := require.New(s.T())
	a, b := s.g.AddNode("A"), s.g.AddNode("B")
	require.NoError(s.g.AddEdge(a, b, 3, false))

	for _, w := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		err := s.g.AddEdge(a, b, w, false)
		require.ErrorIs(err, core.ErrInvalidWeight, "weight %g", w)
	}

	// the earlier edge survives unchanged in every layout
	require.True(s.g.Connected(a, b))
	require.True(s.g.Connected(b, a))
	require.Equal(2, s.g.EdgeCount())
	to, w := outgoing(s.g, a)
	require.Equal([]core.NodeIndex{b}, to)
	require.Equal([]float64{3}, w)
}

func (s *GraphSuite) TestOutgoingEdgesIsRestartable() {
	require := require.New(s.T())
	a, b, c := s.g.AddNode("A"), s.g.AddNode("B"), s.g.AddNode("C")
	require.NoError(s.g.AddEdge(a, c, 1, true))
	require.NoError(s.g.AddEdge(a, b, 4, true))

	first, _ := outgoing(s.g, a)
	second, _ := outgoing(s.g, a)
	require.Equal(first, second)
	require.ElementsMatch([]core.NodeIndex{b, c}, first)

	// early break stops the sequence
	n := 0
	for range s.g.OutgoingEdges(a) {
		n++
		break
	}
	require.Equal(1, n)

	// invalid index yields nothing
	to, _ := outgoing(s.g, 42)
	require.Empty(to)
}

func (s *GraphSuite) TestRemoveNodeTombstones() {
	require := require.New(s.T())
	a, b, c := s.g.AddNode("A"), s.g.AddNode("B"), s.g.AddNode("C")
	require.NoError(s.g.AddEdge(a, b, 1, false))
	require.NoError(s.g.AddEdge(b, c, 1, false))
	require.NoError(s.g.AddEdge(a, c, 1, true))

	require.NoError(s.g.RemoveNode(b))
	require.True(s.g.IsRemoved(b))
	require.Equal(3, s.g.Len(), "indices stay stable")
	require.False(s.g.Connected(a, b))
	require.False(s.g.Connected(c, b))
	require.True(s.g.Connected(a, c))
	require.Equal(1, s.g.EdgeCount())

	data, err := s.g.Data(b)
	require.NoError(err)
	require.Equal("B", data, "payload is kept")

	require.ErrorIs(s.g.RemoveNode(b), core.ErrNodeRemoved)
	require.ErrorIs(s.g.AddEdge(a, b, 1, true), core.ErrNodeRemoved)
	require.ErrorIs(s.g.CheckIndex(b), core.ErrNodeRemoved)

	to, _ := outgoing(s.g, b)
	require.Empty(to)

	// new nodes never reuse the tombstoned slot
	require.Equal(core.NodeIndex(3), s.g.AddNode("D"))
}

func (s *GraphSuite) TestSelfLoop() {
	require := require.New(s.T())
	a := s.g.AddNode("A")
	require.NoError(s.g.AddEdge(a, a, 1, true))
	require.True(s.g.Connected(a, a))

	to, _ := outgoing(s.g, a)
	require.Equal([]core.NodeIndex{a}, to)
}

func (s *GraphSuite) TestResetRestoresCleanScratch() {
	require := require.New(s.T())
	a := s.g.AddNode("A")
	sc := s.g.Scratch(a)
	sc.Visited, sc.InFrontier, sc.Cost, sc.Parent, sc.Heuristic = true, true, 3, 0, 1.5

	s.g.Reset()
	sc = s.g.Scratch(a)
	require.False(sc.Visited)
	require.False(sc.InFrontier)
	require.True(math.IsInf(sc.Cost, 1))
	require.Equal(core.NoParent, sc.Parent)
	require.Zero(sc.Heuristic)
}

func (s *GraphSuite) TestBeginSearchResetsOnRelease() {
	require := require.New(s.T())
	a := s.g.AddNode("A")

	release := s.g.BeginSearch()
	s.g.Scratch(a).Visited = true
	release()

	require.False(s.g.Scratch(a).Visited)
}

func (s *GraphSuite) TestClear() {
	require := require.New(s.T())
	a, b := s.g.AddNode("A"), s.g.AddNode("B")
	require.NoError(s.g.AddEdge(a, b, 1, false))

	s.g.Clear()
	require.Zero(s.g.Len())
	require.Zero(s.g.EdgeCount())
	require.Equal(s.repr, s.g.Representation())

	// graph is reusable after Clear
	x, y := s.g.AddNode("X"), s.g.AddNode("Y")
	require.NoError(s.g.AddEdge(x, y, 2, true))
	require.True(s.g.Connected(x, y))
	require.False(s.g.Connected(y, x))
}

func (s *GraphSuite) TestGrowthKeepsEdges() {
	require := require.New(s.T())
	first := s.g.AddNode("n0")
	prev := first
	// enough nodes to force several matrix reallocations
	for i := 1; i < 40; i++ {
		cur := s.g.AddNode("n")
		require.NoError(s.g.AddEdge(prev, cur, float64(i), true))
		prev = cur
	}
	for i := 1; i < 40; i++ {
		to, w := outgoing(s.g, core.NodeIndex(i-1))
		require.Equal([]core.NodeIndex{core.NodeIndex(i)}, to)
		require.Equal([]float64{float64(i)}, w)
	}
	require.Equal(39, s.g.EdgeCount())
}

func TestOutgoingOrderByRepresentation(t *testing.T) {
	build := func(r core.Representation) *core.Graph[int] {
		g := core.New[int](core.WithRepresentation(r))
		for i := range 4 {
			g.AddNode(i)
		}
		require.NoError(t, g.AddEdge(0, 3, 1, true))
		require.NoError(t, g.AddEdge(0, 1, 1, true))
		require.NoError(t, g.AddEdge(0, 2, 1, true))

		return g
	}

	list, _ := outgoing(build(core.AdjacencyList), 0)
	require.Equal(t, []core.NodeIndex{3, 1, 2}, list, "list keeps insertion order")

	edges, _ := outgoing(build(core.EdgeList), 0)
	require.Equal(t, []core.NodeIndex{3, 1, 2}, edges, "edge list keeps insertion order")

	matrix, _ := outgoing(build(core.AdjacencyMatrix), 0)
	require.Equal(t, []core.NodeIndex{1, 2, 3}, matrix, "matrix yields ascending index")
}

func TestParallelEdges(t *testing.T) {
	list := core.New[string]()
	a, b := list.AddNode("A"), list.AddNode("B")
	require.NoError(t, list.AddEdge(a, b, 5, true))
	require.NoError(t, list.AddEdge(a, b, 2, true))
	_, w := outgoing(list, a)
	require.Equal(t, []float64{5, 2}, w, "list keeps parallel edges")

	matrix := core.New[string](core.WithRepresentation(core.AdjacencyMatrix))
	a, b = matrix.AddNode("A"), matrix.AddNode("B")
	require.NoError(t, matrix.AddEdge(a, b, 5, true))
	require.NoError(t, matrix.AddEdge(a, b, 2, true))
	_, w = outgoing(matrix, a)
	require.Equal(t, []float64{2}, w, "matrix overwrites")
	require.Equal(t, 1, matrix.EdgeCount())
}

func TestParseRepresentation(t *testing.T) {
	cases := []struct {
		in   string
		want core.Representation
	}{
		{"list", core.AdjacencyList},
		{"MATRIX", core.AdjacencyMatrix},
		{" edges ", core.EdgeList},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := core.ParseRepresentation(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Equal(t, strings.TrimSpace(strings.ToLower(tc.in)), got.String())
		})
	}

	_, err := core.ParseRepresentation("csr")
	require.ErrorIs(t, err, core.ErrUnknownRepresentation)
	require.Equal(t, "Representation(9)", core.Representation(9).String())
}

func TestWithRepresentationIgnoresUnknown(t *testing.T) {
	g := core.New[int](core.WithRepresentation(core.Representation(9)), core.WithCapacity(8))
	require.Equal(t, core.AdjacencyList, g.Representation())
}

func TestCollect(t *testing.T) {
	g := core.New[string]()
	g.AddNode("A")
	g.AddNode("B")
	got := g.Collect([]core.NodeIndex{1, 0, 5})
	require.True(t, slices.Equal([]string{"B", "A", ""}, got))
}
