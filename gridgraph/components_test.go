package gridgraph_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgraph/core"
	"github.com/katalvlaran/pathgraph/gridgraph"
)

// TestConnectedComponents_Simple4: two islands of sizes 4 and 2 under Conn4.
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
func TestConnectedComponents_Simple4(t *testing.T) {
	grid := [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 2)
	assert.Equal(t, []core.NodeIndex{1, 2, 5, 4}, comps[0])
	assert.Equal(t, []core.NodeIndex{10, 11}, comps[1])
}

// TestConnectedComponents_Diagonal8: corner-touching cells form one island
// under Conn8 and nine under Conn4.
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
func TestConnectedComponents_Diagonal8(t *testing.T) {
	grid := [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	gg8, err := gridgraph.From2D(grid, gridgraph.Conn8)
	require.NoError(t, err)
	comps := gg8.ConnectedComponents()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 9)

	gg4, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)
	assert.Len(t, gg4.ConnectedComponents(), 9)
}

func TestConnectedComponents_AllWater(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{0, 0}, {0, 0}}, gridgraph.Conn8)
	require.NoError(t, err)
	assert.Empty(t, gg.ConnectedComponents())
}

// TestConnectedComponents_Representations: every layout finds the same islands.
func TestConnectedComponents_Representations(t *testing.T) {
	grid := [][]int{
		{1, 1, 0, 1},
		{0, 1, 0, 1},
		{1, 0, 1, 1},
	}
	var want [][]core.NodeIndex
	for _, r := range []core.Representation{core.AdjacencyList, core.AdjacencyMatrix, core.EdgeList} {
		opts := gridgraph.DefaultGridOptions()
		opts.Representation = r
		gg, err := gridgraph.NewGridGraph(grid, opts)
		require.NoError(t, err)

		comps := gg.ConnectedComponents()
		for _, c := range comps {
			slices.Sort(c)
		}
		if want == nil {
			want = comps
			continue
		}
		assert.Equal(t, want, comps, r.String())
	}
	assert.Len(t, want, 3)
}
