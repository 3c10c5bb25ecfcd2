// Package api provides the HTTP API server and handlers for the Reelist application.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/reelistapp/reelist-server/internal/catalog"
	"github.com/reelistapp/reelist-server/internal/config"
	"github.com/reelistapp/reelist-server/internal/validation"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	catalog   *catalog.Client
	services  *Services
	validator *validation.Validator
	router    *chi.Mux
	api       huma.API
	logger    *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(cfg *config.Config, catalogClient *catalog.Client, services *Services, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	humaConfig := huma.DefaultConfig(cfg.Server.Name+" API", "1.0.0")
	humaAPI := humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s := &Server{
		catalog:   catalogClient,
		services:  services,
		validator: validation.New(),
		router:    router,
		api:       humaAPI,
		logger:    logger,
	}

	s.registerHealthRoutes()
	s.registerFeedRoutes()
	s.registerBrowseRoutes()
	s.registerTitleRoutes()
	s.registerSearchRoutes()
	s.registerWatchlistRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
