package core

import (
	"iter"
	"math"
)

// noEdge is the matrix sentinel for "no edge".
var noEdge = math.Inf(1)

// adjacencyMatrix represents a graph as a row-major weight grid.
//
// Description:
//
//	cells[i*stride+j] holds the weight of edge i→j, or +Inf if none exists.
//	stride is the allocated dimension and grows by doubling, so AddNode stays
//	amortized O(n) instead of reallocating the full grid on every call.
//
// Time complexity:
//   - add, connected: O(1)
//   - outgoing: O(n)
//   - grow: amortized O(n), O(stride²) on reallocation
//
// Memory:
//   - O(stride²).
type adjacencyMatrix struct {
	n      int
	stride int
	cells  []float64
	count  int
}

func newAdjacencyMatrix(capacity int) *adjacencyMatrix {
	m := &adjacencyMatrix{}
	if capacity > 0 {
		m.realloc(capacity)
	}

	return m
}

// realloc copies the live n×n block into a fresh stride×stride grid.
func (m *adjacencyMatrix) realloc(stride int) {
	cells := make([]float64, stride*stride)
	for i := range cells {
		cells[i] = noEdge
	}
	for i := 0; i < m.n; i++ {
		copy(cells[i*stride:i*stride+m.n], m.cells[i*m.stride:i*m.stride+m.n])
	}
	m.cells = cells
	m.stride = stride
}

func (m *adjacencyMatrix) grow(n int) {
	if n <= m.n {
		return
	}
	if n > m.stride {
		stride := max(2*m.stride, n, 4)
		m.realloc(stride)
	}
	m.n = n
}

func (m *adjacencyMatrix) add(u, v NodeIndex, w float64) {
	cell := &m.cells[int(u)*m.stride+int(v)]
	switch {
	case *cell == noEdge && w != noEdge:
		m.count++
	case *cell != noEdge && w == noEdge:
		m.count--
	}
	*cell = w
}

func (m *adjacencyMatrix) outgoing(u NodeIndex) iter.Seq2[NodeIndex, float64] {
	return func(yield func(NodeIndex, float64) bool) {
		row := m.cells[int(u)*m.stride : int(u)*m.stride+m.n]
		for j, w := range row {
			if w == noEdge {
				continue
			}
			if !yield(NodeIndex(j), w) {
				return
			}
		}
	}
}

func (m *adjacencyMatrix) connected(u, v NodeIndex) bool {
	return m.cells[int(u)*m.stride+int(v)] != noEdge
}

func (m *adjacencyMatrix) detach(u NodeIndex) {
	for j := 0; j < m.n; j++ {
		m.drop(int(u)*m.stride + j)
		m.drop(j*m.stride + int(u))
	}
}

// drop clears one cell and keeps the edge count in sync.
func (m *adjacencyMatrix) drop(cell int) {
	if m.cells[cell] != noEdge {
		m.cells[cell] = noEdge
		m.count--
	}
}

func (m *adjacencyMatrix) edgeCount() int { return m.count }

func (m *adjacencyMatrix) clear() {
	m.n, m.stride, m.count = 0, 0, 0
	m.cells = nil
}
