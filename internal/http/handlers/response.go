// Package handlers provides HTTP handler implementations for the public API.
//
// This file is the translation boundary. Handlers return plain errors; fail()
// converts them into the closed apperr taxonomy, renders them with the pure
// problem translator, and writes the result. Logging, metrics and span
// annotation all happen here, never inside the translator.
//
// Example failure:
//
//	HTTP/1.1 500 Internal Server Error
//	Content-Type: application/problem+json
//
//	{"type":"https://example.com/probs/internal-server-error","title":"Internal Server Error","status":500,"detail":"An unexpected error occurred","instance":"/"}
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-problem-server/internal/apperr"
	"github.com/tbourn/go-problem-server/internal/http/middleware"
	"github.com/tbourn/go-problem-server/internal/observability"
	"github.com/tbourn/go-problem-server/internal/problem"
)

// fail aborts the request with the problem rendering of err.
//
// 5xx problems are logged at error level with the underlying cause; 4xx at
// warn. The cause is logged only, never sent to the client.
func (h *Handlers) fail(c *gin.Context, err error) {
	ae := apperr.From(err)
	if ae == nil {
		ae = apperr.Wrap(nil)
	}
	resp := problem.Translate(ae, h.opts.WithPath(c.Request.URL.Path))

	lg := middleware.LoggerFrom(c)
	ev := lg.Warn()
	if resp.Status >= http.StatusInternalServerError {
		ev = lg.Error()
	}
	ev.
		Int("status", resp.Status).
		Str("kind", ae.Kind().String()).
		Str("cause", ae.Cause()).
		Msg("api error")

	observability.RecordProblem(c.Request.Context(), resp.Details, ae.Unwrap())
	middleware.WriteProblem(c, resp)
}

// Problem writes a transport-level problem (404, 405, …) that does not come
// from a handler error. Used by router fallbacks.
func Problem(c *gin.Context, status int, detail string) {
	resp := problem.Generic(status, detail, c.Request.URL.Path)
	observability.RecordProblem(c.Request.Context(), resp.Details, nil)
	middleware.WriteProblem(c, resp)
}

// ok writes a plain-text success response.
func ok(c *gin.Context, status int, body string) {
	c.String(status, body)
}
