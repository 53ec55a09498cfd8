// Package server exposes the search queries over HTTP.
//
// Every endpoint answers GET requests with a JSON document carrying a
// query_id that also appears in the server logs:
//
//	GET /route?from=a&to=d[&weight=time][&modus=hops][&turns=true][&avoid=b,c]
//	GET /reach?from=a&max=10
//	GET /bfs?from=a&max=10
//
// Unknown nodes are answered with 404 and malformed parameters with 400.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/rhartert/spsearch/graph"
	"github.com/rhartert/spsearch/internal/query"
)

// Server answers search queries over a single network.
type Server struct {
	runner *query.Runner
	logger *log.Logger
	router chi.Router
}

// New returns a Server running queries with runner.
func New(runner *query.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{runner: runner, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Get("/healthz", s.handleHealth)
	r.Get("/network", s.handleNetwork)
	r.Get("/route", s.handleRoute)
	r.Get("/reach", s.handleReach)
	r.Get("/bfs", s.handleBFS)
	s.router = r

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves s on addr until ctx is cancelled, then shuts the
// server down gracefully.
func ListenAndServe(ctx context.Context, addr string, s *Server) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return ctx.Err()
}

type errorResponse struct {
	QueryID string `json:"query_id"`
	Error   string `json:"error"`
}

type routeResponse struct {
	QueryID string `json:"query_id"`
	query.RouteResult
}

type reachResponse struct {
	QueryID string `json:"query_id"`
	query.ReachResult
}

type treeResponse struct {
	QueryID string `json:"query_id"`
	query.TreeResult
}

type networkResponse struct {
	Name    string   `json:"name"`
	Nodes   int      `json:"nodes"`
	Edges   int      `json:"edges"`
	Weights []string `json:"weights"`
	Turns   int      `json:"turns"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleNetwork(w http.ResponseWriter, _ *http.Request) {
	net := s.runner.Network()
	s.writeJSON(w, http.StatusOK, networkResponse{
		Name:    net.Name,
		Nodes:   net.Graph.Order(),
		Edges:   net.Graph.Size(),
		Weights: net.WeightNames,
		Turns:   len(net.Turns),
	})
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	p, err := parseParams(r, false)
	if err == nil && p.To == "" {
		err = missingParam("to")
	}
	if err != nil {
		s.writeError(w, id, err)
		return
	}
	res, err := s.runner.Route(p)
	if err != nil {
		s.writeError(w, id, err)
		return
	}
	s.writeJSON(w, http.StatusOK, routeResponse{QueryID: id, RouteResult: res})
}

func (s *Server) handleReach(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	p, err := parseParams(r, true)
	if err != nil {
		s.writeError(w, id, err)
		return
	}
	res, err := s.runner.Reach(p)
	if err != nil {
		s.writeError(w, id, err)
		return
	}
	s.writeJSON(w, http.StatusOK, reachResponse{QueryID: id, ReachResult: res})
}

func (s *Server) handleBFS(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	p, err := parseParams(r, true)
	if err != nil {
		s.writeError(w, id, err)
		return
	}
	res, err := s.runner.Tree(p)
	if err != nil {
		s.writeError(w, id, err)
		return
	}
	s.writeJSON(w, http.StatusOK, treeResponse{QueryID: id, TreeResult: res})
}

func parseParams(r *http.Request, needMax bool) (query.Params, error) {
	q := r.URL.Query()
	p := query.Params{
		From:   q.Get("from"),
		To:     q.Get("to"),
		Weight: q.Get("weight"),
		Modus:  q.Get("modus"),
	}
	if p.From == "" {
		return p, missingParam("from")
	}
	if v := q.Get("turns"); v != "" {
		turns, err := strconv.ParseBool(v)
		if err != nil {
			return p, badParam("turns", v)
		}
		p.Turns = turns
	}
	if v := q.Get("avoid"); v != "" {
		p.Avoid = strings.Split(v, ",")
	}
	if needMax {
		v := q.Get("max")
		if v == "" {
			return p, missingParam("max")
		}
		bound, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsInf(bound, 0) {
			return p, badParam("max", v)
		}
		p.MaxDistance = bound
	}
	return p, nil
}

func missingParam(name string) error {
	return errors.Join(query.ErrBadParams, errors.New("missing parameter "+strconv.Quote(name)))
}

func badParam(name, value string) error {
	return errors.Join(query.ErrBadParams, errors.New("invalid "+name+" "+strconv.Quote(value)))
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, graph.ErrNodeNotFound):
		return http.StatusNotFound
	case errors.Is(err, query.ErrBadParams):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, id string, err error) {
	status := statusOf(err)
	msg := strings.ReplaceAll(err.Error(), "\n", ": ")
	if status == http.StatusInternalServerError {
		s.logger.Error("query failed", "query_id", id, "err", err)
	} else {
		s.logger.Warn("query rejected", "query_id", id, "status", status, "err", msg)
	}
	s.writeJSON(w, status, errorResponse{QueryID: id, Error: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("writing response", "err", err)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "elapsed", time.Since(start))
	})
}
