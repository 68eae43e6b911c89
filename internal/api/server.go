// Package api exposes the topology builder over HTTP.
//
// The API is JSON-only and stateless apart from the optional transform cache
// and the graph store. Endpoints:
//
//	POST   /api/v1/topology/vsphere   transform a virtualization export
//	POST   /api/v1/topology/hardware  transform a hardware-pool catalog
//	POST   /api/v1/topology/merge     merge previously built graphs
//	POST   /api/v1/graphs             save a built graph
//	GET    /api/v1/graphs             list saved graphs
//	GET    /api/v1/graphs/{id}        fetch one saved graph
//	DELETE /api/v1/graphs/{id}        delete a saved graph
//	GET    /healthz                   liveness probe
//
// Transform options travel as query parameters so the request body stays a
// plain inventory payload; see parseOptions.
package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/planvista/topograph/internal/config"
	"github.com/planvista/topograph/pkg/cache"
	"github.com/planvista/topograph/pkg/store"
)

// Server wires the handlers to their collaborators.
type Server struct {
	logger   *log.Logger
	cache    cache.Cache
	store    store.Store
	layout   config.LayoutConfig
	cacheTTL time.Duration
}

// New creates a server. A nil cache disables caching, a nil store disables
// the graphs endpoints' persistence (they fall back to an in-memory store).
func New(logger *log.Logger, c cache.Cache, s store.Store, cfg config.Config) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if s == nil {
		s = store.NewMemoryStore()
	}
	return &Server{
		logger:   logger,
		cache:    c,
		store:    s,
		layout:   cfg.Layout,
		cacheTTL: cfg.Cache.TTL.Std(),
	}
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/topology", func(r chi.Router) {
			r.Post("/vsphere", s.handleVSphere)
			r.Post("/hardware", s.handleHardware)
			r.Post("/merge", s.handleMerge)
		})
		r.Post("/graphs", s.handleSaveGraph)
		r.Get("/graphs", s.handleListGraphs)
		r.Get("/graphs/{id}", s.handleGetGraph)
		r.Delete("/graphs/{id}", s.handleDeleteGraph)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requestLogger logs one line per request with method, path, status, and
// duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
