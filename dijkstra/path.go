package dijkstra

import "fmt"

// ExtractPath walks the predecessor chain backwards from dest and returns the
// vertices in source→dest order.
//
// ok is false ("no path") when dest is out of range or dist[dest] == Infinity.
// When dest is the source the path is the single element [dest].
// The walk performs no graph traversal; it costs O(path length).
//
// A predecessor chain longer than len(prev) can only come from tables not
// produced by Solve; it is reported as "no path" rather than looping forever.
func ExtractPath(dist []int64, prev []int, dest int) (path []int, ok bool) {
	if dest < 0 || dest >= len(dist) || dest >= len(prev) || dist[dest] == Infinity {
		return nil, false
	}

	for cur := dest; cur != NoVertex; cur = prev[cur] {
		if cur < 0 || cur >= len(prev) || len(path) == len(prev) {
			return nil, false
		}
		path = append(path, cur)
	}

	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// PathTo reconstructs the shortest path from r.Source to dest.
// Returns ErrVertexOutOfRange for an invalid dest and ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Dist) {
		return nil, fmt.Errorf("%w: destination %d not in [0, %d)", ErrVertexOutOfRange, dest, len(r.Dist))
	}
	path, ok := ExtractPath(r.Dist, r.Prev, dest)
	if !ok {
		return nil, fmt.Errorf("%w: %d→%d", ErrNoPath, r.Source, dest)
	}

	return path, nil
}
