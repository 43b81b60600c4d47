package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgraph/core"
	"github.com/katalvlaran/pathgraph/gridgraph"
)

// TestExpandIsland_Straight: one water cell separates two islands.
//
//	1 0 1
func TestExpandIsland_Straight(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)

	path, cost, err := gg.ExpandIsland(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
	assert.Equal(t, []core.NodeIndex{0, 1, 2}, path)
}

// TestExpandIsland_Diagonal8: corner-touching cells are one island under Conn8,
// so joining it with itself costs nothing.
func TestExpandIsland_Diagonal8(t *testing.T) {
	grid := [][]int{
		{1, 0},
		{0, 1},
	}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn8)
	require.NoError(t, err)
	require.Len(t, gg.ConnectedComponents(), 1)

	path, cost, err := gg.ExpandIsland(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, cost)
	assert.Equal(t, []core.NodeIndex{0}, path)

	gg4, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)
	_, cost, err = gg4.ExpandIsland(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
}

// TestExpandIsland_PrefersLand: crossing existing land is free.
//
//	1 0 0 0 1
//	0 0 1 0 0
//	0 0 0 0 0
func TestExpandIsland_PrefersLand(t *testing.T) {
	grid := [][]int{
		{1, 0, 0, 0, 1},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0},
	}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn8)
	require.NoError(t, err)
	require.Len(t, gg.ConnectedComponents(), 3)

	path, cost, err := gg.ExpandIsland(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, cost)
	assert.Equal(t, []core.NodeIndex{0, 1, 7, 3, 4}, path)
}

// TestExpandIsland_InvalidIndices ensures invalid component indices yield ErrComponentIndex.
func TestExpandIsland_InvalidIndices(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{1, 0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)

	_, _, err = gg.ExpandIsland(-1, 1)
	assert.ErrorIs(t, err, gridgraph.ErrComponentIndex)
	_, _, err = gg.ExpandIsland(0, 2)
	assert.ErrorIs(t, err, gridgraph.ErrComponentIndex)
}
