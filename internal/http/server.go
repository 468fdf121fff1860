// Package http provides the HTTP servers of the application: the field API and the
// Prometheus metrics endpoint.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/paymentfields/internal/config"
	fieldHTTP "github.com/allisson/paymentfields/internal/field/http"
	"github.com/allisson/paymentfields/internal/field/metadata"
	"github.com/allisson/paymentfields/internal/metrics"
)

// Server represents the HTTP server of the field API.
type Server struct {
	catalog *metadata.Catalog
	server  *http.Server
	router  *gin.Engine
	logger  *slog.Logger
}

// NewServer creates a new HTTP server. Routes are registered by SetupRouter.
func NewServer(
	catalog *metadata.Catalog,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		catalog: catalog,
		logger:  logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the router with its middleware chain and every API route. The
// background work started by the middleware stops when ctx is done.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	fieldHandler *fieldHTTP.FieldHandler,
	catalogHandler *fieldHTTP.CatalogHandler,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	fields := v1.Group("/fields/:kind")
	{
		fields.POST("/edit", fieldHandler.EditHandler)
		fields.POST("/format", fieldHandler.FormatHandler)
		fields.POST("/validate", fieldHandler.ValidateHandler)
	}

	v1.POST("/forms/validate", fieldHandler.ValidateFormHandler)

	brands := v1.Group("/brands")
	{
		brands.GET("", catalogHandler.ListBrandsHandler)
		brands.GET("/detect", catalogHandler.DetectBrandHandler)
	}

	countries := v1.Group("/countries")
	{
		countries.GET("", catalogHandler.ListCountriesHandler)
		countries.GET("/:code", catalogHandler.GetCountryHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// healthHandler reports that the process is up.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the metadata catalog is loaded.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.catalog == nil || len(s.catalog.Brands()) == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"catalog": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"catalog": "ok"},
	})
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
