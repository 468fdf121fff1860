package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allisson/paymentfields/internal/field/metadata"
	"github.com/allisson/paymentfields/internal/metrics"
)

// embeddedCatalogSource names the catalog compiled into the binary.
const embeddedCatalogSource = "embedded"

// MetricsServer serves the Prometheus scrape endpoint and an operator view of the loaded
// catalog on a port kept off the public field API.
type MetricsServer struct {
	server        *http.Server
	logger        *slog.Logger
	catalog       *metadata.Catalog
	catalogSource string
}

// NewMetricsServer creates a new MetricsServer. catalogPath is the CATALOG_PATH the
// catalog was read from; empty means the embedded catalog.
func NewMetricsServer(
	host string,
	port int,
	logger *slog.Logger,
	metricsProvider *metrics.Provider,
	catalog *metadata.Catalog,
	catalogPath string,
) *MetricsServer {
	s := &MetricsServer{
		logger:        logger,
		catalog:       catalog,
		catalogSource: catalogPath,
	}
	if s.catalogSource == "" {
		s.catalogSource = embeddedCatalogSource
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CustomLoggerMiddleware(logger))

	if metricsProvider != nil {
		router.GET("/metrics", gin.WrapH(metricsProvider.Handler()))
	}
	router.GET("/catalog/status", s.catalogStatusHandler)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// catalogStatusHandler reports where the catalog came from and how many brand and
// country rules it holds, so a rollout of a new CATALOG_PATH file can be confirmed.
func (s *MetricsServer) catalogStatusHandler(c *gin.Context) {
	if s.catalog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"source": s.catalogSource,
			"status": "not_loaded",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"source":    s.catalogSource,
		"status":    "loaded",
		"brands":    len(s.catalog.Brands()),
		"countries": len(s.catalog.Countries()),
	})
}

// GetHandler returns the http.Handler for testing purposes.
func (s *MetricsServer) GetHandler() http.Handler {
	return s.server.Handler
}

// Start serves until Shutdown is called.
func (s *MetricsServer) Start(ctx context.Context) error {
	s.logger.Info("starting metrics server",
		slog.String("addr", s.server.Addr),
		slog.String("catalog_source", s.catalogSource),
	)

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start metrics server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the metrics HTTP server.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down metrics server")
	return s.server.Shutdown(ctx)
}
