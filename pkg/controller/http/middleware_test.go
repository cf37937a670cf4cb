package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	controller "github.com/secmon-lab/workboard/pkg/controller/http"
)

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx := ctxlog.With(context.Background(), logger)

	var handlerHasLogger bool
	handler := middleware.RequestID(controller.LoggingMiddleware(ctx)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerHasLogger = ctxlog.From(r.Context()) != nil
			w.WriteHeader(http.StatusTeapot)
		}),
	))

	t.Run("Logs status and request ID", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

		gt.True(t, handlerHasLogger)

		var entry map[string]any
		gt.NoError(t, json.Unmarshal(buf.Bytes(), &entry)).Required()
		gt.Equal(t, entry["msg"], "HTTP request")
		gt.Equal(t, entry["path"], "/dashboard")
		gt.Equal(t, entry["status"], float64(http.StatusTeapot))
		gt.NotEqual(t, entry["request_id"], nil)
	})

	t.Run("Health probes are logged at debug", func(t *testing.T) {
		buf.Reset()
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
		gt.Equal(t, strings.TrimSpace(buf.String()), "")
	})
}

func TestCORS(t *testing.T) {
	called := false
	handler := controller.CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	t.Run("Adds headers", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
		gt.True(t, called)
		gt.Equal(t, rec.Header().Get("Access-Control-Allow-Origin"), "*")
	})

	t.Run("Preflight short circuits", func(t *testing.T) {
		called = false
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/issues", nil))
		gt.False(t, called)
		gt.Equal(t, rec.Code, http.StatusNoContent)
	})
}
