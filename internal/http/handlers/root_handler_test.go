package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tbourn/go-problem-server/internal/apperr"
	"github.com/tbourn/go-problem-server/internal/problem"
)

const wantRootBody = `{"type":"https://example.com/probs/internal-server-error","title":"Internal Server Error","status":500,"detail":"An unexpected error occurred","instance":"/"}`

// newRouter mounts h.GetRoot on "/" behind a fake request-scoped logger.
func newRouter(h *Handlers, buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	logger := zerolog.New(buf)
	r.Use(func(c *gin.Context) {
		c.Set("logger", &logger)
		c.Next()
	})
	r.GET("/", h.GetRoot)
	return r
}

func TestRoot_DefaultStepAlwaysFails(t *testing.T) {
	h := New(problem.DefaultOptions())
	msg, err := h.Root(context.Background())
	if msg != "" {
		t.Fatalf("expected no greeting, got %q", msg)
	}
	var ae *apperr.Error
	if !errors.As(err, &ae) || ae.Kind() != apperr.KindInternal {
		t.Fatalf("expected internal taxonomy error, got %v", err)
	}
	if !errors.Is(err, ErrSomethingWentWrong) {
		t.Fatalf("expected the fixed cause to be wrapped, got %v", err)
	}
}

func TestGetRoot_Returns500Problem(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(New(problem.DefaultOptions()), &buf)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("content type = %q", ct)
	}
	if w.Body.String() != wantRootBody {
		t.Fatalf("body mismatch:\n got: %s\nwant: %s", w.Body.String(), wantRootBody)
	}

	logs := buf.String()
	if !strings.Contains(logs, `"level":"error"`) || !strings.Contains(logs, `"cause":"Something went wrong"`) {
		t.Fatalf("expected error log with cause, got: %s", logs)
	}
	if strings.Contains(w.Body.String(), "Something went wrong") {
		t.Fatalf("cause leaked to client")
	}
}

func TestGetRoot_ByteIdenticalAcrossRequests(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(New(problem.DefaultOptions()), &buf)

	var bodies [2]string
	for i := range bodies {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		bodies[i] = w.Body.String()
	}
	if bodies[0] != bodies[1] {
		t.Fatalf("bodies differ:\n%s\n%s", bodies[0], bodies[1])
	}
}

func TestGetRoot_SuccessStep(t *testing.T) {
	var buf bytes.Buffer
	h := New(problem.DefaultOptions(), WithStep(func(context.Context) error { return nil }))
	r := newRouter(h, &buf)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK || w.Body.String() != Greeting {
		t.Fatalf("got %d %q", w.Code, w.Body.String())
	}
	if buf.Len() != 0 {
		t.Fatalf("success should not log api errors: %s", buf.String())
	}
}

func TestGetRoot_BadRequestStep(t *testing.T) {
	var buf bytes.Buffer
	h := New(problem.DefaultOptions(), WithStep(func(context.Context) error {
		return apperr.Reject("missing field x")
	}))
	r := newRouter(h, &buf)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	var body problem.Details
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body.Title != "Bad Request" || body.Status != http.StatusBadRequest {
		t.Fatalf("unexpected body: %+v", body)
	}
	if !strings.Contains(buf.String(), `"level":"warn"`) {
		t.Fatalf("expected warn log for 4xx, got: %s", buf.String())
	}
}

func TestGetRoot_OptionsFlowThrough(t *testing.T) {
	opts := problem.DefaultOptions()
	opts.DetailFromCause = true
	opts.InstanceFromPath = true
	h := New(opts, WithStep(func(context.Context) error {
		return apperr.Reject("missing field x")
	}))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/orders", h.GetRoot)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders?x=1", nil))
	var body problem.Details
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body.Detail != "missing field x" || body.Instance != "/orders" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestWithStep_NilKeepsDefault(t *testing.T) {
	h := New(problem.DefaultOptions(), WithStep(nil))
	if _, err := h.Root(context.Background()); !errors.Is(err, ErrSomethingWentWrong) {
		t.Fatalf("nil step should keep the default, got %v", err)
	}
}

func TestProblem_Fallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.NoRoute(func(c *gin.Context) { Problem(c, http.StatusNotFound, "route not found") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	var body problem.Details
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body.Type != "about:blank" || body.Title != "Not Found" || body.Status != 404 || body.Instance != "/nope" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
