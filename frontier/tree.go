package frontier

import "github.com/tidwall/btree"

// Tree is a Frontier backed by an ordered B-tree. The B-tree already locates
// items by comparator equivalence, which is exactly the Frontier contract.
//
// Complexity: Insert, RemoveMin, Remove, Contains O(log n); PeekMin O(log n).
type Tree[T any] struct {
	tr *btree.BTreeG[T]
}

// NewTree returns an empty Tree ordered by less.
// The tree is not safe for concurrent use; searches own their frontier.
func NewTree[T any](less Less[T]) *Tree[T] {
	return &Tree[T]{
		tr: btree.NewBTreeGOptions[T](less, btree.Options{NoLocks: true}),
	}
}

func (t *Tree[T]) Insert(v T) { t.tr.Set(v) }

func (t *Tree[T]) PeekMin() (T, error) {
	v, ok := t.tr.Min()
	if !ok {
		return v, ErrEmpty
	}

	return v, nil
}

func (t *Tree[T]) RemoveMin() (T, error) {
	v, ok := t.tr.PopMin()
	if !ok {
		return v, ErrEmpty
	}

	return v, nil
}

func (t *Tree[T]) Remove(v T) bool {
	_, ok := t.tr.Delete(v)

	return ok
}

func (t *Tree[T]) Contains(v T) bool {
	_, ok := t.tr.Get(v)

	return ok
}

func (t *Tree[T]) Len() int { return t.tr.Len() }
