// Package server exposes the board pipeline over HTTP.
//
// The API is a thin layer over [store.Store], [pipeline.Runner], and the
// snap engine: boards are stored and retrieved as JSON documents, layout and
// rendering run through the cached pipeline, and pointer interactions
// (snapping, hit-testing, reparenting) each get a dedicated endpoint so
// editor frontends never reimplement the geometry.
//
// # Endpoints
//
//	GET    /healthz                                liveness probe
//	GET    /api/boards                             list stored board IDs
//	GET    /api/boards/{id}                        fetch a board document
//	PUT    /api/boards/{id}                        store a board document
//	DELETE /api/boards/{id}                        delete a board
//	POST   /api/boards/{id}/pipeline               run load → layout → render
//	GET    /api/boards/{id}/render                 laid-out artifact in one format
//	GET    /api/boards/{id}/objects/at             hit-test a point
//	POST   /api/boards/{id}/objects/{oid}/parent   reparent an object
//	POST   /api/snap                               snap a dragged rect
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/boardkit/boardkit/pkg/core/guides"
	"github.com/boardkit/boardkit/pkg/observability"
	"github.com/boardkit/boardkit/pkg/pipeline"
	"github.com/boardkit/boardkit/pkg/store"
)

// =============================================================================
// Configuration
// =============================================================================

// Config assembles the server's collaborators. Store is required; the rest
// default to working zero-setup implementations.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// Store persists board documents. Required.
	Store store.Store

	// Runner executes the board pipeline. Defaults to an uncached runner.
	Runner *pipeline.Runner

	// Snap configures the snap engine used by POST /api/snap.
	// The zero value enables the documented defaults.
	Snap guides.Config

	Logger *log.Logger
}

// Server handles the HTTP API.
type Server struct {
	addr   string
	store  store.Store
	runner *pipeline.Runner
	snap   guides.Config
	logger *log.Logger
}

// New creates a server from cfg, filling in defaults for optional fields.
func New(cfg Config) *Server {
	if cfg.Runner == nil {
		cfg.Runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Snap == (guides.Config{}) {
		cfg.Snap = guides.DefaultConfig()
	}
	return &Server{
		addr:   cfg.Addr,
		store:  cfg.Store,
		runner: cfg.Runner,
		snap:   cfg.Snap,
		logger: cfg.Logger,
	}
}

// =============================================================================
// Routing
// =============================================================================

// Router builds the chi router with all routes and middleware attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/boards", func(r chi.Router) {
			r.Get("/", s.handleListBoards)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetBoard)
				r.Put("/", s.handlePutBoard)
				r.Delete("/", s.handleDeleteBoard)
				r.Post("/pipeline", s.handlePipeline)
				r.Get("/render", s.handleRender)
				r.Get("/objects/at", s.handleHitTest)
				r.Post("/objects/{oid}/parent", s.handleReparent)
			})
		})
		r.Post("/snap", s.handleSnap)
	})

	return r
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully with a short drain window.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("server listening", "addr", s.addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// logRequests logs one line per request with the structured logger.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		observability.Server().OnRequest(r.Context(), r.Method, r.URL.Path)
		next.ServeHTTP(ww, r)
		observability.Server().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), time.Since(start))
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}
