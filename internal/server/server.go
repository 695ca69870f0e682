// Package server exposes read-only shortest-path queries over HTTP.
//
// The graph handed to New must not be mutated afterwards: handlers run
// concurrently and only read it. Concurrent requests for the same source
// share one solver run.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/dijkstra"
	"github.com/katalvlaran/geograph/internal/report"
)

// Server holds the immutable graph and the request de-duplication group.
type Server struct {
	g     *core.Graph
	group singleflight.Group
}

// VertexResponse is one entry of GET /api/vertices.
type VertexResponse struct {
	Index int     `json:"index"`
	Name  string  `json:"name"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

// RoutesResponse is the body of GET /api/routes/{source}.
type RoutesResponse struct {
	Source     int            `json:"source"`
	Name       string         `json:"name"`
	DurationUs int64          `json:"duration_us"`
	Routes     []report.Route `json:"routes"`
}

type solution struct {
	prev     []int
	dist     []float64
	duration time.Duration
}

// New returns a Server answering queries against g.
func New(g *core.Graph) *Server {
	return &Server{g: g}
}

// Router returns the HTTP routes wrapped with request logging.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogger)
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/vertices", s.HandleVertices).Methods(http.MethodGet)
	api.HandleFunc("/routes/{source}", s.HandleRoutes).Methods(http.MethodGet)
	api.HandleFunc("/routes/{source}/{target}", s.HandleRoute).Methods(http.MethodGet)

	return r
}

// HandleVertices lists all vertices in index order.
func (s *Server) HandleVertices(w http.ResponseWriter, _ *http.Request) {
	pts := s.g.Vertices()
	out := make([]VertexResponse, len(pts))
	for i, p := range pts {
		out[i] = VertexResponse{Index: i, Name: p.Name, Lat: p.Lat, Lon: p.Lon}
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleRoutes returns the routes from {source} to every other vertex.
func (s *Server) HandleRoutes(w http.ResponseWriter, r *http.Request) {
	source, ok := s.pathIndex(w, r, "source")
	if !ok {
		return
	}
	sol, err := s.solve(source)
	if err != nil {
		writeSolveError(w, err)
		return
	}
	routes, err := report.BuildRoutes(s.g, sol.prev, sol.dist, source)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	p, _ := s.g.Vertex(source)

	writeJSON(w, http.StatusOK, RoutesResponse{
		Source:     source,
		Name:       p.Name,
		DurationUs: sol.duration.Microseconds(),
		Routes:     routes,
	})
}

// HandleRoute returns the single route from {source} to {target}.
func (s *Server) HandleRoute(w http.ResponseWriter, r *http.Request) {
	source, ok := s.pathIndex(w, r, "source")
	if !ok {
		return
	}
	target, ok := s.pathIndex(w, r, "target")
	if !ok {
		return
	}
	if _, err := s.g.Vertex(target); err != nil {
		writeSolveError(w, err)
		return
	}
	sol, err := s.solve(source)
	if err != nil {
		writeSolveError(w, err)
		return
	}
	route, err := report.BuildRoute(s.g, sol.prev, sol.dist, target)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, route)
}

// solve runs ShortestPaths once per source among concurrent callers.
// Callers only read the shared slices.
func (s *Server) solve(source int) (*solution, error) {
	v, err, shared := s.group.Do(strconv.Itoa(source), func() (interface{}, error) {
		start := time.Now()
		prev, dist, err := dijkstra.ShortestPaths(s.g, source)
		if err != nil {
			return nil, err
		}

		return &solution{prev: prev, dist: dist, duration: time.Since(start)}, nil
	})
	if err != nil {
		return nil, err
	}
	sol := v.(*solution)
	log.Debug().
		Int("source", source).
		Bool("shared", shared).
		Dur("solve", sol.duration).
		Msg("Shortest paths computed")

	return sol, nil
}

// pathIndex parses a non-negative integer path variable, answering 400 on
// failure.
func (s *Server) pathIndex(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := mux.Vars(r)[name]
	idx, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name+" index: "+raw)
		return 0, false
	}

	return idx, true
}

func writeSolveError(w http.ResponseWriter, err error) {
	if errors.Is(err, core.ErrIndexOutOfRange) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}
