package gridgraph

import (
	"math"

	"github.com/katalvlaran/pathgraph/core"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		repr:            opts.Representation,
		neighborOffsets: offsets,
	}, nil
}

// From2D is NewGridGraph with default options and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether (x,y) is in bounds and at or above LandThreshold.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the (dx,dy) steps for the configured connectivity,
// clockwise from north.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Index maps (x,y) to its row-major index y*Width + x, which is also the
// node index of the cell in every graph this package builds.
func (gg *GridGraph) Index(x, y int) core.NodeIndex {
	return core.NodeIndex(y*gg.Width + x)
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx core.NodeIndex) (x, y int) {
	return int(idx) % gg.Width, int(idx) / gg.Width
}

// ToCoreGraph converts the grid into a new directed *core.Graph[Cell].
// Every cell becomes a node at its row-major index. Each land cell gets an
// edge to every in-bounds land neighbour, in NeighborOffsets order, weighted
// by the step length: 1 orthogonally, √2 diagonally. Water cells stay isolated.
// Complexity: O(W×H×d) time and memory, d = 4 or 8.
func (gg *GridGraph) ToCoreGraph() *core.Graph[Cell] {
	g := gg.addCells(0)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue
			}
			u := gg.Index(x, y)
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.IsLand(nx, ny) {
					continue
				}
				_ = g.AddEdge(u, gg.Index(nx, ny), math.Hypot(float64(d[0]), float64(d[1])), true)
			}
		}
	}

	return g
}

// addCells creates a graph holding one node per cell, with room for extra more nodes.
func (gg *GridGraph) addCells(extra int) *core.Graph[Cell] {
	g := core.New[Cell](
		core.WithRepresentation(gg.repr),
		core.WithCapacity(gg.Width*gg.Height+extra),
	)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			g.AddNode(Cell{X: x, Y: y, Value: gg.CellValues[y][x]})
		}
	}

	return g
}

// landGraph returns the shared ToCoreGraph result, built on first call.
func (gg *GridGraph) landGraph() *core.Graph[Cell] {
	gg.once.Do(func() { gg.land = gg.ToCoreGraph() })

	return gg.land
}
