package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pharmaplus/pos-api/internal/config"
)

var (
	defaultOrigins = []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	defaultMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	defaultHeaders = []string{
		"Accept",
		"Authorization",
		"Content-Type",
		"Origin",
		"X-Request-ID",
		"Idempotency-Key",
	}
)

// CORSMiddleware builds the CORS policy from config, falling back to
// development defaults when a list is left empty. Idempotency-Key is always
// allowed since checkout and return retries depend on it.
func CORSMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	policy := cors.Config{
		AllowOrigins:     fallback(cfg.AllowedOrigins, defaultOrigins),
		AllowMethods:     fallback(cfg.AllowedMethods, defaultMethods),
		AllowHeaders:     withHeader(fallback(cfg.AllowedHeaders, defaultHeaders), "Idempotency-Key"),
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "X-Request-ID", "X-Idempotency-Replayed"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	return cors.New(policy)
}

func fallback(configured, defaults []string) []string {
	if len(configured) == 0 {
		return defaults
	}
	return configured
}

func withHeader(headers []string, name string) []string {
	for _, h := range headers {
		if h == name {
			return headers
		}
	}
	return append(headers, name)
}
