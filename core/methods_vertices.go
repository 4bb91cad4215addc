// File: methods_vertices.go
// Role: Vertex queries over the fixed index range [0, N).
//
// Determinism:
//   - Vertices are enumerated in ascending index order.
//
// Concurrency:
//   - The vertex count never changes after NewGraph, so these queries take no lock.
package core

import "fmt"

// VertexCount returns N, the number of vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int { return len(g.adjacency) }

// HasVertex reports whether v is a valid index in [0, N).
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < len(g.adjacency) }

// checkVertex returns ErrVertexOutOfRange wrapped with the offending index.
func (g *Graph) checkVertex(v int) error {
	if !g.HasVertex(v) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrVertexOutOfRange, v, len(g.adjacency))
	}

	return nil
}

// OutDegree returns the number of outgoing edges of v, parallel edges and
// loops included.
func (g *Graph) OutDegree(v int) (int, error) {
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[v]), nil
}
