// Command server runs the problem-details HTTP server.
//
// @title       Problem Server API
// @version     1.0
// @description Minimal HTTP server whose failures are rendered as RFC 7807 problem details.
// @license.name MIT
// @host        127.0.0.1:3001
// @BasePath    /
package main

import (
	"context"
	"net"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/tbourn/go-problem-server/internal/config"
	httpapi "github.com/tbourn/go-problem-server/internal/http"
	"github.com/tbourn/go-problem-server/internal/observability"
	"github.com/tbourn/go-problem-server/internal/sysutil"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// A missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	sysutil.SetupLogger(cfg.LogLevel, cfg.LogPretty, os.Stderr)
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()
	shutdown, err := observability.SetupOTel(ctx, cfg.OTEL, sysutil.FirstNonEmpty(os.Getenv("APP_VERSION"), version))
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() { _ = shutdown(ctx) }()

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Addr()).Msg("listen failed")
	}

	if err := httpapi.Serve(ln, httpapi.NewRouter(cfg), cfg); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}
