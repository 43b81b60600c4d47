// Package frontier defines the comparator-ordered priority queue used as the
// open set of Dijkstra and A*, together with two implementations:
//
//	Tree  ordered B-tree (github.com/tidwall/btree); every operation O(log n)
//	Heap  binary heap (container/heap); Remove and Contains are O(n)
//
// Ordering is injected as a strict weak order Less at construction. Two values
// are treated as the same entry iff neither orders before the other; the ==
// operator is never used, so T need not be comparable.
//
// Errors:
//
//	ErrEmpty        - PeekMin or RemoveMin on an empty frontier.
//	ErrUnknownKind  - Kind name could not be parsed.
package frontier

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for frontier operations.
var (
	// ErrEmpty is returned by PeekMin and RemoveMin on an empty frontier.
	ErrEmpty = errors.New("frontier: empty")

	// ErrUnknownKind indicates an unrecognized implementation name.
	ErrUnknownKind = errors.New("frontier: unknown kind")
)

// Less reports whether a must be popped before b.
// It must be a strict weak order and must stay stable for a value while that
// value is stored: callers Remove an entry before changing its key.
type Less[T any] func(a, b T) bool

// Frontier is a min-priority queue over T ordered by an injected Less.
//
// Insert of a value equivalent to a stored one replaces the stored entry, so a
// frontier never holds two equivalent values.
type Frontier[T any] interface {
	// Insert adds v, replacing any stored equivalent entry.
	Insert(v T)

	// PeekMin returns the minimum without removing it, or ErrEmpty.
	PeekMin() (T, error)

	// RemoveMin removes and returns the minimum, or ErrEmpty.
	RemoveMin() (T, error)

	// Remove deletes the entry equivalent to v and reports whether one existed.
	Remove(v T) bool

	// Contains reports whether an entry equivalent to v is stored.
	Contains(v T) bool

	// Len returns the number of stored entries.
	Len() int
}

// Kind selects a Frontier implementation.
type Kind int

const (
	// KindTree selects the B-tree implementation (default).
	KindTree Kind = iota

	// KindHeap selects the binary heap implementation.
	KindHeap
)

var kindNames = map[Kind]string{
	KindTree: "tree",
	KindHeap: "heap",
}

// String returns "tree" or "heap".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts a name (case-insensitive) to a Kind.
func ParseKind(name string) (Kind, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == want {
			return k, nil
		}
	}

	return KindTree, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// New returns an empty Frontier of the given kind. Unknown kinds fall back to KindTree.
func New[T any](kind Kind, less Less[T]) Frontier[T] {
	if kind == KindHeap {
		return NewHeap(less)
	}

	return NewTree(less)
}
