package http_test

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	controller "github.com/secmon-lab/workboard/pkg/controller/http"
)

func TestGetBaseURL(t *testing.T) {
	t.Run("returns configured URL without trailing slash", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		gt.Equal(t, controller.GetBaseURL(req, "https://configured.example.com/"), "https://configured.example.com")
	})

	t.Run("uses Host header and plain http by default", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Host = "example.com"
		gt.Equal(t, controller.GetBaseURL(req, ""), "http://example.com")
	})

	t.Run("uses https for TLS requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Host = "example.com"
		req.TLS = &tls.ConnectionState{}
		gt.Equal(t, controller.GetBaseURL(req, ""), "https://example.com")
	})

	t.Run("honours X-Forwarded-Proto and X-Forwarded-Host", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Host = "internal.example.com"
		req.Header.Set("X-Forwarded-Proto", "https")
		req.Header.Set("X-Forwarded-Host", "  public.example.com  , proxy.example.com")
		gt.Equal(t, controller.GetBaseURL(req, ""), "https://public.example.com")
	})

	t.Run("Alt-Used takes precedence over X-Forwarded-Host", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Host = "internal.example.com"
		req.Header.Set("X-Forwarded-Host", "public.example.com")
		req.Header.Set("Alt-Used", "workboard-abc123.a.run.app")
		gt.Equal(t, controller.GetBaseURL(req, ""), "https://workboard-abc123.a.run.app")
	})

	t.Run("falls back to localhost", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Host = ""
		gt.Equal(t, controller.GetBaseURL(req, ""), "http://localhost")
	})
}
