// Package lvpath is a small, dependable toolkit for single-source shortest
// paths on dense-index weighted graphs.
//
// What is inside?
//
//	A thread-safe adjacency-list graph and Dijkstra's algorithm built on it:
//		• core:     Graph with vertices 0..N-1, directed int64-weighted edges
//		• dijkstra: Solve, ExtractPath / PathTo, concurrent SolveAll
//		• graphio:  edge-list file reader and path/cost printer
//		• server:   JSON HTTP queries with Prometheus metrics
//		• bfs:      hop-count search over a Graph or an implicit graph
//		• ladder:   word ladders, one edit per step, found with bfs
//
// Binaries:
//
//	cmd/dijkstras  print the path and cost to every vertex of a graph file
//	cmd/lvpathd    serve the same queries over HTTP
//	cmd/ladder     print the shortest word ladder between two words
//
// Quick ASCII example:
//
//	0 ──4──▶ 1
//	 \       ▲
//	  1     1
//	   ▼   /
//	    2 ─
//
// From 0 the cheapest route to 1 is 0 → 2 → 1 with cost 2.
//
//	go get github.com/katalvlaran/lvpath
package lvpath
