// Package bfs provides breadth-first search over a core.Graph or an implicit
// graph given as a NeighborFunc, returning hop-count distances, parent links,
// and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, neighbor filtering and an early target.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// errTargetFound ends the loop once Options.Target is discovered.
var errTargetFound = errors.New("bfs: target found")

// NeighborFunc returns the out-neighbors of v, in the order they should be
// discovered. Repeats are allowed; already seen vertices are skipped.
type NeighborFunc func(v int) ([]int, error)

// queueItem pairs a vertex index with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	next    NeighborFunc
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. Edge weights are ignored: Depth counts hops,
// and parallel edges or self-loops never enqueue a vertex twice.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return Search(g.VertexCount(), start, graphNeighbors(g), opts...)
}

// graphNeighbors adapts the adjacency lists of g to a NeighborFunc.
func graphNeighbors(g *core.Graph) NeighborFunc {
	return func(v int) ([]int, error) {
		edges, err := g.Neighbors(v)
		if err != nil {
			return nil, err
		}
		ids := make([]int, len(edges))
		for i, e := range edges {
			ids[i] = e.To
		}

		return ids, nil
	}
}

// Search runs breadth-first search over the implicit graph with vertices
// [0, n) whose edges are produced on demand by next. Useful when
// materializing every edge up front would cost more than the search itself.
func Search(n, start int, next NeighborFunc, opts ...Option) (*Result, error) {
	if next == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrStartVertexNotFound, start, n)
	}

	// Prepare walker
	w := &walker{
		next:    next,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = Unreached
		w.res.Parent[v] = NoVertex
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, NoVertex)
	if start == o.Target {
		return w.res, nil
	}
	// Main loop
	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, target, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			if errors.Is(err, errTargetFound) {
				return nil
			}
			return err
		}
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)
	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}
	return nil
}

// enqueueNeighbors retrieves neighbors, applies filtering and MaxDepth,
// and enqueues each unseen neighbor. Returns ErrNeighbors on lookup failure
// and errTargetFound once the target has been enqueued.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.next(item.v)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, item.v, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		// cancellation check inside neighbor iteration
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if nbr < 0 || nbr >= len(w.visited) {
			return fmt.Errorf("%w: neighbor %d of %d not in [0, %d)", ErrNeighbors, nbr, item.v, len(w.visited))
		}
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}

		w.enqueue(nbr, nextDepth, item.v)
		if nbr == w.opts.Target {
			return errTargetFound
		}
	}
	return nil
}
