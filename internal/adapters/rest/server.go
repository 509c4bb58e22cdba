package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	core_ports "github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/port"
)

type Server struct {
	httpServer *http.Server
	logger     core_ports.LoggerPort
}

func NewServer(port string, allowedOrigin string, handlers *CatalogHandlers, baseLogger core_ports.LoggerPort) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{allowedOrigin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Trace-ID"},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handlers.HandleHealth)

		r.Get("/listings/{tag}", handlers.HandleListByTag)

		r.Route("/departments/{slug}", func(r chi.Router) {
			r.Get("/top", handlers.HandleTopScoredByDepartment)
			r.Get("/stats", handlers.HandleDepartmentStats)
		})

		r.Route("/search", func(r chi.Router) {
			r.Get("/places", handlers.HandleSearchPlaces)
			r.Get("/neighborhoods", handlers.HandleSearchNeighborhoods)
		})

		r.Get("/geocode/reverse", handlers.HandleReverseGeocode)

		r.Post("/filters/chips", handlers.HandleFilterSession)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

// Start runs the HTTP server until an error or Shutdown.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_ports.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
