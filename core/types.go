// Package core defines the central Graph, NodeIndex and Scratch types,
// the pluggable adjacency representations, and the run observer hook shared
// by every traversal and search package.
//
// This file declares the sentinel errors, NodeIndex, Scratch, Representation,
// GraphOption and the New constructor.
//
// Errors:
//
//	ErrIndexOutOfRange        - node index outside [0, Len()).
//	ErrNodeRemoved            - node index refers to a tombstoned node.
//	ErrUnknownRepresentation  - representation name could not be parsed.
//	ErrInvalidWeight          - edge weight is NaN or infinite.
package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrIndexOutOfRange indicates a node index argument outside [0, Len()).
	ErrIndexOutOfRange = errors.New("core: node index out of range")

	// ErrNodeRemoved indicates an operation referenced a node removed by RemoveNode.
	ErrNodeRemoved = errors.New("core: node has been removed")

	// ErrUnknownRepresentation indicates an unrecognized representation name.
	ErrUnknownRepresentation = errors.New("core: unknown adjacency representation")

	// ErrInvalidWeight indicates an edge weight that is NaN or ±Inf.
	ErrInvalidWeight = errors.New("core: edge weight must be finite")
)

// NodeIndex identifies a node for the lifetime of its Graph.
// Indices are assigned in insertion order starting at 0 and are never reused.
type NodeIndex int

// NoParent is the Parent value of the start node and of every unreached node.
const NoParent NodeIndex = -1

// Scratch is the per-node transient state written by traversals and searches.
//
// The clean value is {Visited: false, InFrontier: false, Cost: +Inf,
// Parent: NoParent, Heuristic: 0}. Every entry point restores it before and
// after a run, so two runs never observe each other's state.
type Scratch struct {
	// Visited is set once the node is discovered (traversals) or settled (searches).
	Visited bool

	// InFrontier reports whether the node currently has an entry in the open set.
	InFrontier bool

	// Cost is the best known path cost from the start node.
	Cost float64

	// Parent is the predecessor on the best known path, or NoParent.
	Parent NodeIndex

	// Heuristic caches the last estimate of remaining cost (A* only).
	Heuristic float64
}

// cleanScratch returns the initial scratch value.
func cleanScratch() Scratch {
	return Scratch{Cost: math.Inf(1), Parent: NoParent}
}

// Representation selects the physical adjacency layout of a Graph.
type Representation int

const (
	// AdjacencyList keeps per-node ordered (destination, weight) slices.
	AdjacencyList Representation = iota

	// AdjacencyMatrix keeps an N×N weight grid; +Inf marks "no edge".
	// A repeated edge overwrites the previous weight.
	AdjacencyMatrix

	// EdgeList keeps one flat ordered (source, destination, weight) slice.
	EdgeList
)

// representationNames maps each Representation to its canonical name.
var representationNames = map[Representation]string{
	AdjacencyList:   "list",
	AdjacencyMatrix: "matrix",
	EdgeList:        "edges",
}

// String returns the canonical name ("list", "matrix" or "edges").
func (r Representation) String() string {
	if name, ok := representationNames[r]; ok {
		return name
	}

	return fmt.Sprintf("Representation(%d)", int(r))
}

// ParseRepresentation converts a canonical name (case-insensitive) to a Representation.
func ParseRepresentation(name string) (Representation, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for r, n := range representationNames {
		if n == want {
			return r, nil
		}
	}

	return AdjacencyList, fmt.Errorf("%w: %q", ErrUnknownRepresentation, name)
}

// GraphOption configures a Graph before creation.
type GraphOption func(o *graphOptions)

type graphOptions struct {
	repr     Representation
	capacity int
}

// WithRepresentation selects the adjacency layout. Unknown values are ignored
// and the default AdjacencyList is kept; use ParseRepresentation to validate
// user input first.
func WithRepresentation(r Representation) GraphOption {
	return func(o *graphOptions) {
		if _, ok := representationNames[r]; ok {
			o.repr = r
		}
	}
}

// WithCapacity pre-sizes node storage for n nodes. Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(o *graphOptions) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// node holds a payload and its tombstone flag.
type node[T any] struct {
	data    T
	removed bool
}

// Graph is an index-addressed graph with payloads of type T.
//
// Topology (nodes, edges) and scratch state are kept apart: algorithms read
// topology through OutgoingEdges and write only through Scratch. Searches are
// serialized by BeginSearch; topology mutation is not synchronized and must not
// overlap a running search.
type Graph[T any] struct {
	searchMu sync.Mutex // serializes searches over the shared scratch slice

	repr    Representation
	nodes   []node[T]
	scratch []Scratch
	adj     adjacency
}

// New creates an empty Graph. By default it uses the AdjacencyList representation.
// Complexity: O(capacity).
func New[T any](opts ...GraphOption) *Graph[T] {
	o := graphOptions{repr: AdjacencyList}
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[T]{
		repr:    o.repr,
		nodes:   make([]node[T], 0, o.capacity),
		scratch: make([]Scratch, 0, o.capacity),
		adj:     newAdjacency(o.repr, o.capacity),
	}
}
