package http

import (
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// createCORSMiddleware creates the CORS middleware that lets checkout pages call the
// field API from the browser. It returns nil when CORS is disabled or when no usable
// origin is configured.
//
// Keystrokes of card data travel through this API, so a wildcard origin is refused and
// every origin must be a bare http(s) scheme plus host. Retry-After is exposed so a
// page that hits the rate limit can back off.
func createCORSMiddleware(enabled bool, allowOriginsStr string, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	if allowOriginsStr == "" {
		logger.Warn("CORS enabled but no origins configured - CORS will not be applied")
		return nil
	}

	origins, rejected := parseOrigins(allowOriginsStr)
	for _, origin := range rejected {
		logger.Warn("CORS origin ignored", slog.String("origin", origin))
	}
	if len(origins) == 0 {
		logger.Warn("CORS enabled but no valid origins found")
		return nil
	}

	logger.Info("CORS enabled",
		slog.Int("origin_count", len(origins)),
		slog.Any("origins", origins))

	config := cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{
			"GET",
			"POST",
		},
		AllowHeaders: []string{
			"Content-Type",
			"X-Request-Id",
		},
		ExposeHeaders: []string{
			"X-Request-Id",
			"Retry-After",
		},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	return cors.New(config)
}

// parseOrigins splits a comma-separated origin list. Entries that are not a bare
// http(s) origin, including "*", are returned in rejected.
func parseOrigins(originsStr string) (origins []string, rejected []string) {
	if originsStr == "" {
		return nil, nil
	}

	for _, part := range strings.Split(originsStr, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		if !isBrowserOrigin(trimmed) {
			rejected = append(rejected, trimmed)
			continue
		}
		origins = append(origins, strings.TrimSuffix(trimmed, "/"))
	}

	return origins, rejected
}

// isBrowserOrigin reports whether s is scheme://host[:port] with an http or https scheme.
func isBrowserOrigin(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	if u.Host == "" || u.User != nil || u.RawQuery != "" || u.Fragment != "" {
		return false
	}
	return u.Path == "" || u.Path == "/"
}
