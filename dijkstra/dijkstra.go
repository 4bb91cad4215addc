// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - Relaxations that would exceed MaxDistance are dropped, so nothing beyond it enters the heap.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap entries with equal cost are ordered by vertex index, so a run is fully deterministic.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// Solve computes shortest distances from source to every vertex of g.
//
// Returns a Result whose Dist and Prev tables have length g.VertexCount().
// Unreached vertices keep Dist == Infinity and Prev == NoVertex.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGraph).
//  3. source must lie in [0, N) (ErrVertexOutOfRange).
//  4. No edge in g can have negative weight (ErrNegativeWeight), unless
//     WithoutWeightCheck was given.
//
// The graph is only read. Concurrent Solve calls on the same graph are safe
// as long as nobody mutates it meanwhile.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Solve(g *core.Graph, source int, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Validate source is a real vertex
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %d not in [0, %d)", ErrVertexOutOfRange, source, g.VertexCount())
	}

	// 4) Pre-scan all edges to detect negative weights.
	if cfg.CheckWeights {
		for _, e := range g.Edges() {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}

	r := newRunner(g, source, cfg)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g         *core.Graph // The input graph; read-only within Solve.
	options   Options     // Configuration options (thresholds, context).
	res       *Result     // Dist/Prev tables handed to the caller at the end.
	finalized []bool      // finalized[v] is true once v's distance is settled.
	pq        nodePQ      // Min-heap of nodeItem for the lazy priority queue.
}

// newRunner sets up initial distances and predecessors and pushes (0, source).
func newRunner(g *core.Graph, source int, cfg Options) *runner {
	n := g.VertexCount()
	res := &Result{
		Source: source,
		Dist:   make([]int64, n),
		Prev:   make([]int, n),
	}
	for v := 0; v < n; v++ {
		res.Dist[v] = Infinity
		res.Prev[v] = NoVertex
	}
	res.Dist[source] = 0

	r := &runner{
		g:         g,
		options:   cfg,
		res:       res,
		finalized: make([]bool, n),
		pq:        make(nodePQ, 0, n),
	}
	heap.Push(&r.pq, nodeItem{id: source, dist: 0})

	return r
}

// process is the core loop. It repeatedly extracts the frontier entry with
// the minimum cost, discards it if stale, and otherwise finalizes the vertex
// and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices within MaxDistance processed).
//   - The context is cancelled (its error is returned).
func (r *runner) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(nodeItem)

		// Stale entry: a cheaper copy of this vertex was already finalized.
		if r.finalized[item.id] {
			continue
		}
		r.finalized[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge outgoing from u and improves the tentative
// distance of every non-finalized neighbor it can. Assumes Dist[u] is final.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	du := r.res.Dist[u]
	for _, e := range neighbors {
		v, w := e.To, e.Weight
		if r.finalized[v] {
			continue
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		// A sum that would reach Infinity is indistinguishable from "unreached".
		if w >= Infinity-du {
			continue
		}
		newDist := du + w
		// Over the cap: never queued, so the vertex stays unreached.
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only; equal-cost alternatives keep the first predecessor.
		if newDist >= r.res.Dist[v] {
			continue
		}

		r.res.Dist[v] = newDist
		r.res.Prev[v] = u
		heap.Push(&r.pq, nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem is a frontier entry: a vertex and the tentative cost it was pushed with.
type nodeItem struct {
	id   int   // vertex index
	dist int64 // tentative distance from source
}

// nodePQ is a min-heap of nodeItem ordered by (dist, id) ascending.
// Several entries may exist for one vertex; only the cheapest is ever acted on.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, breaking ties by the lower vertex index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element of the backing slice.
// Called by heap.Pop after it has moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
