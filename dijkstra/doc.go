// Package dijkstra provides Dijkstra's shortest-path algorithm on dense-index
// weighted graphs (core.Graph) with non-negative edge weights, plus
// reconstruction of the shortest path to any destination.
//
// Overview:
//
//   - Solve computes, for every vertex reachable from a source, its minimum
//     path cost (Result.Dist) and its immediate predecessor on one such path
//     (Result.Prev), in O((V + E) log V) time.
//   - ExtractPath / Result.PathTo walk the predecessor chain backwards and
//     return the vertices in source→destination order.
//   - SolveAll runs independent solves for several sources concurrently over
//     the same read-only graph.
//
// Sentinels:
//
//   - Infinity (math.MaxInt64) is the distance of an unreached vertex.
//   - NoVertex (-1) is the predecessor of the source and of unreached vertices.
//   - Result.Distance and Result.Predecessor hide both behind "comma ok" returns.
//
// Path conventions:
//
//   - Unreachable destination: ExtractPath returns (nil, false); PathTo returns ErrNoPath.
//   - Destination equal to the source: the path is [source] with cost 0.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - MaxDistance: stops exploration beyond a specified distance, saving work in large graphs.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable (infinite cost).
//   - Context: long solves can be cancelled; the check runs once per heap extraction.
//   - Parallel edges: each one is relaxed, so the cheapest always wins.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); the heap holds up to E entries under “lazy decrease-key”.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:         Solve received a nil *core.Graph.
//   - ErrVertexOutOfRange: the source (or a PathTo destination) is outside [0, N).
//   - ErrNegativeWeight:   an edge has a negative weight (fast O(E) pre-scan).
//   - ErrOptionViolation:  WithMaxDistance(<0) or WithInfEdgeThreshold(≤0).
//   - ErrNoPath:           PathTo on an unreached destination.
//
// Thread safety:
//
//   - Solve never mutates the graph and keeps no state between calls.
//   - Mutating the graph while a solve is running is not supported.
//
// See also:
//
//   - core.Graph: graph construction and the adjacency-list invariant.
//   - graphio: reading edge-list files and printing paths.
package dijkstra
