// Package bfs provides a breadth-first search over a core.Graph or over an
// implicit graph, returning hop-count distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: Depth[v] is the distance (edges) from start, or Unreached
//   - Parent: Parent[v] is its predecessor in the BFS tree, or NoVertex
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Stops as soon as a chosen vertex is discovered (WithTarget).
//
// Two entry points share one engine:
//
//   - BFS(g, start, ...) walks the adjacency lists of a core.Graph; weights are ignored.
//   - Search(n, start, next, ...) walks vertices [0, n) whose neighbors are
//     computed on demand by next. The word ladder in package ladder uses it,
//     since its edges ("differs by one edit") are never stored.
//
// Determinism
//
//	Neighbors are discovered in the order the graph (or NeighborFunc) yields
//	them, and core.Graph keeps insertion order, so the visit sequence is fully
//	reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth, Parent and visited tables)
//
// Usage
//
//	result, err := bfs.BFS(g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr int) bool { return nbr != 7 }),
//	)
//	path, err := result.PathTo(5)
//
// Errors
//
//   - ErrGraphNil             if the graph or NeighborFunc is nil.
//   - ErrStartVertexNotFound  if the start index is outside [0, N).
//   - ErrOptionViolation      if invalid Option (negative MaxDepth or Target).
//   - ErrNeighbors            if neighbor lookup fails or yields a bad index.
//   - ErrVertexOutOfRange, ErrNoPath from Result.PathTo.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
