// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on dense-index weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// The algorithm maintains a priority queue of vertices to explore and
// relaxes edges in increasing order of distance from the source vertex.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |vertices|, E = |edges|
//	   • Each vertex is finalized at most once (V extracts that do work).
//	   • Each successful relaxation pushes into the priority queue (up to E pushes).
//	   • Each heap operation (push/pop) costs O(log (V+E)), simplified to O(log V).
//	– Space: O(V + E)
//	   • O(V) for the distance, predecessor and finalized tables.
//	   • O(E) in the priority queue in the worst case (lazy decrease-key).
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this stay unreached.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//	– Ctx:              cancellation, checked once per extracted frontier entry.
//	– CheckWeights:     pre-scan for negative weights (on by default).
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the provided graph pointer is nil.
//	– ErrVertexOutOfRange if the source (or a queried destination) is outside [0, N).
//	– ErrNegativeWeight   if a negative edge weight is detected in the graph.
//	– ErrOptionViolation  if an Option received an invalid argument.
//	– ErrNoPath           if PathTo is asked for an unreached vertex.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Solve.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexOutOfRange indicates a source or destination outside [0, N).
	ErrVertexOutOfRange = errors.New("dijkstra: vertex index out of range")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrNoPath indicates that the destination was never reached from the source.
	ErrNoPath = errors.New("dijkstra: no path to destination")
)

const (
	// Infinity is the distance of every vertex the solver never reached.
	// No real path cost can equal it: relaxation never produces a sum that
	// overflows past math.MaxInt64 without being rejected first.
	Infinity int64 = math.MaxInt64

	// NoVertex is the predecessor of the source and of every unreached vertex.
	// Vertex indices are never negative, so it cannot collide with one.
	NoVertex = -1
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – optional cap on distances to explore (vertices beyond stay unreached).
//
//	Must be ≥ 0. Default is Infinity (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is Infinity (no obstacles).
type Options struct {
	Ctx              context.Context // Cancellation and deadlines
	MaxDistance      int64           // Maximum distance to explore
	InfEdgeThreshold int64           // Weight threshold above which edges are non-traversable
	CheckWeights     bool            // Pre-scan for negative weights before solving

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
// If an Option is invalid it is recorded and surfaced as ErrOptionViolation
// when Solve is invoked.
type Option func(*Options)

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored
// and are reported as unreached.
//
//	max ≥ 0: limit exploration to distance max
//	max < 0: invalid option → ErrOptionViolation
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (treated as infinite weight).
//
//	threshold > 0:  edges with weight ≥ threshold are skipped
//	threshold ≤ 0: invalid option → ErrOptionViolation
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: InfEdgeThreshold must be positive (%d)", ErrOptionViolation, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithoutWeightCheck skips the O(E) negative-weight pre-scan.
// Results on graphs with negative weights are then unspecified.
func WithoutWeightCheck() Option {
	return func(o *Options) {
		o.CheckWeights = false
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Ctx:              context.Background().
//   - MaxDistance:      Infinity (no distance limit; explore all reachable).
//   - InfEdgeThreshold: Infinity (no edges treated as impassable).
//   - CheckWeights:     true.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
		CheckWeights:     true,
	}
}

// Result holds the outcome of one Solve call. It is owned by the caller;
// the solver keeps no reference to it.
//
//   - Dist[v] is the minimum cost from Source to v, or Infinity if unreached.
//   - Prev[v] is the vertex preceding v on one minimum-cost path, or NoVertex
//     for Source and for unreached vertices.
type Result struct {
	Source int
	Dist   []int64
	Prev   []int
}

// Distance returns the cost from Source to v. ok is false when v is out of
// range or was never reached.
func (r *Result) Distance(v int) (d int64, ok bool) {
	if v < 0 || v >= len(r.Dist) || r.Dist[v] == Infinity {
		return 0, false
	}

	return r.Dist[v], true
}

// Predecessor returns the vertex preceding v on its shortest path.
// ok is false for Source, for unreached vertices and for out-of-range v.
func (r *Result) Predecessor(v int) (u int, ok bool) {
	if v < 0 || v >= len(r.Prev) || r.Prev[v] == NoVertex {
		return 0, false
	}

	return r.Prev[v], true
}

// Reachable reports whether v was reached from Source.
func (r *Result) Reachable(v int) bool {
	_, ok := r.Distance(v)
	return ok
}
