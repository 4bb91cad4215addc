// Package core provides a thread-safe, dense-index directed Graph for
// shortest-path work.
//
// The Graph G = (V,E) is an ordered sequence of adjacency lists:
//
//   - Vertices are the integers 0..N-1, fixed when the graph is created.
//   - Edges are directed (From, To, Weight) triples with int64 weights.
//   - An undirected connection is two edges (AddUndirected).
//   - Parallel edges are always allowed; self-loops need WithLoops().
//   - Negative weights are rejected unless WithNegativeWeights().
//   - A single sync.RWMutex guards adjacency, so graphs can be built from
//     several goroutines and read by many solvers at once.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithNegativeWeights()
//	    Permits weight < 0; otherwise AddEdge → ErrNegativeWeight.
//
// Core Methods:
//
//	NewGraph(n int, opts ...GraphOption) (*Graph, error) // O(n)
//	AddEdge(from, to int, weight int64) error             // O(1) amortized
//	AddUndirected(u, v int, weight int64) error           // O(1) amortized
//	Neighbors(u int) ([]Edge, error)                      // O(1), read-only view
//	Edges() []Edge                                        // O(V+E), copy
//	MinWeight(u, v int) (int64, bool)                     // O(deg(u))
//	Validate() error                                      // O(V+E)
//
// Invariant: adjacency[i] only holds edges with From == i. AddEdge keeps it by
// construction; Validate re-checks it for graphs assembled by other tools.
package core
