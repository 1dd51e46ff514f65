// Package server exposes plan generation over HTTP.
//
// Routes:
//
//	GET  /healthz                  liveness check
//	GET  /v1/components            registered component names
//	GET  /v1/plan                  generate without storing (query options)
//	POST /v1/plans                 generate and store (JSON options)
//	GET  /v1/plans                 list stored plans, newest first
//	GET  /v1/plans/{id}            stored snapshot
//	GET  /v1/plans/{id}/{format}   stored plan rendered as svg, ascii, dot or graph
//
// Errors are JSON objects {"code": ..., "message": ...} with the status
// derived from the error code.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/architectus/pkg/generator"
	"github.com/matzehuels/architectus/pkg/observability"
	"github.com/matzehuels/architectus/pkg/store"
)

// maxBodyBytes bounds POST bodies.
const maxBodyBytes = 64 << 10

// Server holds the collaborators shared by all handlers.
type Server struct {
	gen    *generator.Generator
	store  store.Store
	logger *log.Logger
}

// New creates a server. A nil store means an in-memory store.
func New(gen *generator.Generator, st store.Store, logger *log.Logger) *Server {
	if st == nil {
		st = store.NewMemoryStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{gen: gen, store: st, logger: logger}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(observe)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/components", s.listComponents)
		r.Get("/plan", s.generatePlan)
		r.Route("/plans", func(r chi.Router) {
			r.Post("/", s.createPlan)
			r.Get("/", s.listPlans)
			r.Get("/{id}", s.getPlan)
			r.Get("/{id}/{format}", s.renderPlan)
		})
	})
	return r
}

// observe reports each request to the HTTP hooks under its route pattern.
func observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		hooks := observability.HTTP()

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		hooks.OnRequest(r.Context(), r.Method, route)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, route, status, time.Since(start))
	})
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
