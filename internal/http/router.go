// Package httpapi wires the HTTP transport (Gin) to the handlers and the
// cross-cutting middleware: tracing, correlation IDs, scrubbed access logs,
// metrics, panic recovery, rate limiting, CORS, security headers and
// compression.
//
// The route table has a single business route, GET /. Operational routes
// (/health, /metrics and, when enabled, /swagger/*any) sit beside it, and
// unknown paths or methods are answered with problem documents.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/tbourn/go-problem-server/internal/config"
	"github.com/tbourn/go-problem-server/internal/docs"
	"github.com/tbourn/go-problem-server/internal/http/handlers"
	"github.com/tbourn/go-problem-server/internal/http/middleware"
)

// maxBodyBytes caps request bodies; no route reads one.
const maxBodyBytes = 64 << 10

// NewRouter returns a fresh Gin engine with RegisterRoutes applied.
func NewRouter(cfg config.Config, opts ...handlers.Option) *gin.Engine {
	r := gin.New()
	RegisterRoutes(r, cfg, opts...)
	return r
}

// RegisterRoutes attaches all middleware and endpoints to r.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured, scrubbed access logs
//  4. Metrics: outside Recovery so recovered panics are counted
//  5. gzip: outside Recovery so a recovered problem is still compressed
//  6. Recovery: panics become internal-error problems
//  7. Body size limiter
//  8. Rate limiter (per client IP, only when enabled)
//  9. CORS and security headers
func RegisterRoutes(r *gin.Engine, cfg config.Config, opts ...handlers.Option) {
	r.HandleMethodNotAllowed = true
	problemOpts := cfg.ProblemOptions()

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(middleware.RedactOptions{
		MaskHeaders: []string{"X-API-Key"},
	}))
	r.Use(middleware.Metrics())
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))
	r.Use(middleware.Recovery(problemOpts))
	r.Use(limitBody(maxBodyBytes))

	if cfg.RateLimitEnabled {
		rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByIP())
		r.Use(rl.Handler())
	}

	r.Use(corsMiddleware(cfg.CORS.AllowedOrigins)...)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      true,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Problem(c, http.StatusNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Problem(c, http.StatusMethodNotAllowed, "method not allowed")
	})

	// Operational
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if cfg.SwaggerEnabled {
		docs.SwaggerInfo.Host = cfg.Addr()
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Business
	h := handlers.New(problemOpts, opts...)
	r.GET("/", h.GetRoot)
	r.HEAD("/", h.GetRoot)
}

// corsMiddleware returns the CORS posture: allow-all when no origins are
// configured, otherwise an allowlist that echoes the matching Origin.
func corsMiddleware(origins []string) []gin.HandlerFunc {
	base := cors.Config{
		AllowMethods:     []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	if len(origins) == 0 {
		base.AllowAllOrigins = true
		return []gin.HandlerFunc{
			// ACAO: * even without an Origin header (simple health checks, curl).
			func(c *gin.Context) {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
				c.Next()
			},
			cors.New(base),
		}
	}

	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}
	base.AllowOrigins = origins
	return []gin.HandlerFunc{
		func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		},
		cors.New(base),
	}
}

// limitBody caps the request body at maxBytes using http.MaxBytesReader.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
