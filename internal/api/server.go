package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tagbind/tagbind/internal/binder"
	"github.com/tagbind/tagbind/internal/catalog"
	"github.com/tagbind/tagbind/internal/config"
)

// Server is the HTTP API server for tagbind.
type Server struct {
	router  chi.Router
	binder  *binder.Binder
	catalog *catalog.Catalog
	log     *slog.Logger
	cfg     config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(cat *catalog.Catalog, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		binder:  binder.New(cat.Prefix, cat.Descriptors),
		catalog: cat,
		log:     log,
		cfg:     cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/bind", s.handleBind)
		r.Post("/api/bind/batch", s.handleBatchBind)
		r.Get("/api/catalog", s.handleCatalog)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
