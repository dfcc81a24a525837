// Root HTTP handler.
//
// GET / runs a single internal step and greets the caller when it succeeds.
// The default step always fails, so every request currently ends in the
// internal-error problem response; the greeting branch is reachable only when
// a different step is injected.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-problem-server/internal/apperr"
	"github.com/tbourn/go-problem-server/internal/problem"
)

// Greeting is the body of a successful GET /.
const Greeting = "Hello, World!"

// Step is the unit of work performed by the root handler.
type Step func(ctx context.Context) error

// alwaysFail is the default Step.
func alwaysFail(context.Context) error { return ErrSomethingWentWrong }

// Handlers groups the HTTP endpoints and the problem rendering options used
// when they fail.
type Handlers struct {
	step Step
	opts problem.Options
}

// Option customizes Handlers.
type Option func(*Handlers)

// WithStep replaces the root step.
func WithStep(s Step) Option {
	return func(h *Handlers) {
		if s != nil {
			h.step = s
		}
	}
}

// New constructs Handlers rendering failures with opts.
func New(opts problem.Options, options ...Option) *Handlers {
	h := &Handlers{step: alwaysFail, opts: opts}
	for _, o := range options {
		o(h)
	}
	return h
}

// Root runs the root step. Any failure is returned as an internal error.
func (h *Handlers) Root(ctx context.Context) (string, error) {
	if err := h.step(ctx); err != nil {
		return "", apperr.From(err)
	}
	return Greeting, nil
}

// GetRoot godoc
// @ID          getRoot
// @Summary     Root endpoint
// @Description Runs the root step. The default step fails, so the response is an internal-error problem document.
// @Tags        Root
// @Produce     plain
// @Produce     application/problem+json
//
// @Success     200  {string}  string           "Hello, World!"
// @Failure     400  {object}  problem.Details  "Bad request"
// @Failure     500  {object}  problem.Details  "Internal error"
// @Router      / [get]
func (h *Handlers) GetRoot(c *gin.Context) {
	msg, err := h.Root(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	ok(c, http.StatusOK, msg)
}
