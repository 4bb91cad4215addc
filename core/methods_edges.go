// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddUndirected/Neighbors/Edges/EdgeCount,
//       MinWeight and the adjacency invariant check Validate.
// Determinism:
//   - Neighbors() and Edges() preserve insertion order per source vertex.
//   - Edges() walks sources in ascending index order.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import "fmt"

// AddEdge appends the directed edge from→to with the given weight.
//
// Steps:
//  1. Validate both indices.
//  2. Reject loops unless WithLoops().
//  3. Reject negative weights unless WithNegativeWeights().
//  4. Lock mu, append to adjacency[from].
//
// Parallel edges are kept; the solver relaxes each one and the cheapest wins.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	if err := g.checkVertex(from); err != nil {
		return err
	}
	if err := g.checkVertex(to); err != nil {
		return err
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %d→%d", ErrLoopNotAllowed, from, to)
	}
	if weight < 0 && !g.allowNegative {
		return fmt.Errorf("%w: %d→%d weight=%d", ErrNegativeWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight})
	g.edgeCount++

	return nil
}

// AddUndirected adds u→v and v→u with the same weight.
// For u == v only one loop edge is stored.
func (g *Graph) AddUndirected(u, v int, weight int64) error {
	if err := g.AddEdge(u, v, weight); err != nil {
		return err
	}
	if u == v {
		return nil
	}

	return g.AddEdge(v, u, weight)
}

// Neighbors returns the outgoing edges of u in insertion order.
//
// The returned slice aliases the graph's storage so traversals avoid a copy
// per vertex. Callers must treat it as read-only and must not hold it across
// a concurrent AddEdge on u.
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if err := g.checkVertex(u); err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjacency[u], nil
}

// Edges returns a copy of every edge, grouped by source in ascending order.
// Complexity: O(V + E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, list := range g.adjacency {
		out = append(out, list...)
	}

	return out
}

// EdgeCount returns the number of directed edges stored.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// MinWeight returns the smallest weight among all u→v edges.
// ok is false when no such edge exists or either index is out of range.
func (g *Graph) MinWeight(u, v int) (w int64, ok bool) {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return 0, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.adjacency[u] {
		if e.To != v {
			continue
		}
		if !ok || e.Weight < w {
			w, ok = e.Weight, true
		}
	}

	return w, ok
}

// Validate checks the adjacency-list invariant: every edge stored in list i
// has From == i and a To inside [0, N). It returns the first violation.
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.adjacency)
	for i, list := range g.adjacency {
		for _, e := range list {
			if e.From != i {
				return fmt.Errorf("%w: edge %d→%d stored under vertex %d", ErrBrokenAdjacency, e.From, e.To, i)
			}
			if e.To < 0 || e.To >= n {
				return fmt.Errorf("%w: edge %d→%d leaves [0, %d)", ErrBrokenAdjacency, e.From, e.To, n)
			}
		}
	}

	return nil
}
