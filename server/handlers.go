package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/lvpath/dijkstra"
)

// GraphResponse describes the loaded graph.
type GraphResponse struct {
	Vertices int `json:"vertices"`
	Edges    int `json:"edges"`
}

// DistancesResponse carries full solve tables. Unreached vertices and
// missing predecessors are encoded as null.
type DistancesResponse struct {
	Source       int      `json:"source"`
	Distances    []*int64 `json:"distances"`
	Predecessors []*int   `json:"predecessors"`
}

// PathResponse carries one reconstructed path. Path is empty and Cost is
// null when Reachable is false.
type PathResponse struct {
	Source    int    `json:"source"`
	Target    int    `json:"target"`
	Reachable bool   `json:"reachable"`
	Path      []int  `json:"path"`
	Cost      *int64 `json:"cost"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGraph(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, GraphResponse{
		Vertices: s.g.VertexCount(),
		Edges:    s.g.EdgeCount(),
	})
}

func (s *Server) handleDistances(w http.ResponseWriter, r *http.Request) {
	source, ok := vertexVar(w, r, "source")
	if !ok {
		return
	}
	res, err := s.solve(r.Context(), source)
	if err != nil {
		writeSolveError(w, err)
		return
	}

	resp := DistancesResponse{
		Source:       source,
		Distances:    make([]*int64, len(res.Dist)),
		Predecessors: make([]*int, len(res.Prev)),
	}
	for v := range res.Dist {
		if d, ok := res.Distance(v); ok {
			resp.Distances[v] = &d
		}
		if u, ok := res.Predecessor(v); ok {
			resp.Predecessors[v] = &u
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	source, ok := vertexVar(w, r, "source")
	if !ok {
		return
	}
	target, ok := vertexVar(w, r, "target")
	if !ok {
		return
	}
	if !s.g.HasVertex(target) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "target vertex out of range"})
		return
	}
	res, err := s.solve(r.Context(), source)
	if err != nil {
		writeSolveError(w, err)
		return
	}

	resp := PathResponse{Source: source, Target: target, Path: []int{}}
	if path, ok := dijkstra.ExtractPath(res.Dist, res.Prev, target); ok {
		cost := res.Dist[target]
		resp.Reachable = true
		resp.Path = path
		resp.Cost = &cost
	}
	writeJSON(w, http.StatusOK, resp)
}

// vertexVar parses the named route variable as a vertex index, writing a
// 400 response on failure.
func vertexVar(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: name + " must be an integer vertex index"})
		return 0, false
	}

	return v, true
}

func writeSolveError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, dijkstra.ErrVertexOutOfRange):
		status = http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		// client went away; the status is never seen
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
