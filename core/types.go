// Package core defines the dense-index Graph, Edge, GraphOption types,
// sentinel errors, and the NewGraph constructor.
//
// A vertex is identified by its index in [0, N). There is no separate vertex
// object: the index is the identity. Each vertex owns one adjacency list of
// outgoing edges, and adjacency[i] only ever holds edges whose From == i.
//
// Errors:
//
//	ErrNegativeVertexCount - NewGraph called with n < 0.
//	ErrVertexOutOfRange    - a vertex index outside [0, N).
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrNegativeWeight      - negative weight when negative weights are disabled.
//	ErrBrokenAdjacency     - Validate found an edge stored under the wrong list.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexCount indicates NewGraph was asked for fewer than zero vertices.
	ErrNegativeVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates an operation referenced an index outside [0, N).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNegativeWeight indicates a negative weight was supplied to a graph
	// that was not built with WithNegativeWeights.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBrokenAdjacency indicates the adjacency-list invariant does not hold.
	ErrBrokenAdjacency = errors.New("core: adjacency invariant violated")
)

// Edge is a directed, weighted connection From→To.
//
// An undirected connection is represented by two Edges, one per direction.
type Edge struct {
	// From is the source vertex index; it always equals the index of the
	// adjacency list the edge is stored in.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the traversal cost of the edge.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithNegativeWeights permits negative edge weights. Shortest-path results
// on such graphs are unspecified.
func WithNegativeWeights() GraphOption {
	return func(g *Graph) { g.allowNegative = true }
}

// Graph is an ordered sequence of adjacency lists, one per vertex.
//
// Parallel edges between the same pair are always allowed.
// mu guards adjacency and edgeCount; the vertex count is fixed at creation.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowLoops    bool
	allowNegative bool

	// Storage
	adjacency [][]Edge // adjacency[u] = outgoing edges of u, insertion order
	edgeCount int
}

// NewGraph creates a Graph with n isolated vertices 0..n-1.
// By default, self-loops and negative weights are rejected.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}
	g := &Graph{
		adjacency: make([][]Edge, n),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// NegativeWeights reports whether negative weights are permitted.
func (g *Graph) NegativeWeights() bool { return g.allowNegative }
