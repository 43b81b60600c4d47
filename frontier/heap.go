package frontier

import "container/heap"

// Heap is a Frontier backed by a binary min-heap.
//
// Description:
//
//	Insert, RemoveMin: O(log n).
//	Remove, Contains and the replace step of Insert scan linearly for an
//	equivalent entry: O(n). Suitable for small or sparse frontiers.
type Heap[T any] struct {
	items entries[T]
}

// entries implements heap.Interface over the injected comparator.
type entries[T any] struct {
	data []T
	less Less[T]
}

func (e entries[T]) Len() int           { return len(e.data) }
func (e entries[T]) Less(i, j int) bool { return e.less(e.data[i], e.data[j]) }
func (e entries[T]) Swap(i, j int)      { e.data[i], e.data[j] = e.data[j], e.data[i] }

func (e *entries[T]) Push(x any) { e.data = append(e.data, x.(T)) }

func (e *entries[T]) Pop() any {
	old := e.data
	n := len(old)
	v := old[n-1]
	var zero T
	old[n-1] = zero
	e.data = old[:n-1]

	return v
}

// NewHeap returns an empty Heap ordered by less.
func NewHeap[T any](less Less[T]) *Heap[T] {
	return &Heap[T]{items: entries[T]{less: less}}
}

// find returns the position of the entry equivalent to v, or -1.
func (h *Heap[T]) find(v T) int {
	less := h.items.less
	for i, x := range h.items.data {
		if !less(x, v) && !less(v, x) {
			return i
		}
	}

	return -1
}

func (h *Heap[T]) Insert(v T) {
	if i := h.find(v); i >= 0 {
		h.items.data[i] = v
		heap.Fix(&h.items, i)

		return
	}
	heap.Push(&h.items, v)
}

func (h *Heap[T]) PeekMin() (T, error) {
	if len(h.items.data) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return h.items.data[0], nil
}

func (h *Heap[T]) RemoveMin() (T, error) {
	if len(h.items.data) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return heap.Pop(&h.items).(T), nil
}

func (h *Heap[T]) Remove(v T) bool {
	i := h.find(v)
	if i < 0 {
		return false
	}
	heap.Remove(&h.items, i)

	return true
}

func (h *Heap[T]) Contains(v T) bool { return h.find(v) >= 0 }

func (h *Heap[T]) Len() int { return len(h.items.data) }
