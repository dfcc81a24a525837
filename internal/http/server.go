package httpapi

import (
	"net"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/tbourn/go-problem-server/internal/config"
)

// NewServer builds the http.Server with the configured timeouts.
func NewServer(h http.Handler, cfg config.Config) *http.Server {
	return &http.Server{
		Handler:           h,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}
}

// Serve dispatches requests accepted on ln to h until ln is closed or the
// server fails. The listener is owned by the caller.
func Serve(ln net.Listener, h http.Handler, cfg config.Config) error {
	srv := NewServer(h, cfg)
	log.Info().Str("addr", ln.Addr().String()).Msg("listening")
	return srv.Serve(ln)
}
