package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/workboard/frontend"
	"github.com/secmon-lab/workboard/pkg/domain/interfaces"
)

// DefaultRefreshInterval is how often pages reload themselves
const DefaultRefreshInterval = 60 * time.Second

// Server represents the HTTP server
type Server struct {
	*http.Server
	router    chi.Router
	dashboard interfaces.Dashboard
	issue     interfaces.Issue
	pages     *renderer
	refresh   time.Duration
	photoDir  string
	baseURL   string
}

// Option is a functional option for configuring Server
type Option func(*Server)

// WithRefreshInterval sets the page auto refresh interval. Zero disables it.
func WithRefreshInterval(d time.Duration) Option {
	return func(s *Server) {
		s.refresh = d
	}
}

// WithPhotoDir serves team photos from a directory under /assets/
func WithPhotoDir(dir string) Option {
	return func(s *Server) {
		s.photoDir = dir
	}
}

// WithBaseURL sets the public URL used in API responses. It is detected from requests when empty.
func WithBaseURL(url string) Option {
	return func(s *Server) {
		s.baseURL = url
	}
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, addr string, dashboardUC interfaces.Dashboard, issueUC interfaces.Issue, opts ...Option) (*Server, error) {
	pages, err := newRenderer()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load page templates")
	}

	router := chi.NewRouter()
	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:    router,
		dashboard: dashboardUC,
		issue:     issueUC,
		pages:     pages,
		refresh:   DefaultRefreshInterval,
	}
	for _, opt := range opts {
		opt(server)
	}

	staticFS, err := frontend.GetHTTPFS()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open embedded assets")
	}
	assets, err := NewAssetHandler(staticFS, server.photoDir)
	if err != nil {
		return nil, err
	}

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	router.Get("/health", handleHealth)

	// HTML pages
	router.Get("/", server.handleHome)
	router.Get("/dashboard", server.handleDashboardPage)
	router.Get("/risks", server.handleRisksPage)
	router.Get("/issues", server.handleIssuesPage)
	router.Post("/issues", server.handleSubmitIssuePage)
	router.Get("/milestones", server.handleMilestonesPage)
	router.Get("/milestones/{id}", server.handleActivitiesPage)

	// JSON API
	router.Route("/api", func(r chi.Router) {
		r.Use(CORS)
		r.Get("/dashboard", server.handleDashboardAPI)
		r.Get("/risks", server.handleRisksAPI)
		r.Get("/issues", server.handleIssuesAPI)
		r.Post("/issues", server.handleSubmitIssueAPI)
		r.Get("/milestones", server.handleMilestonesAPI)
		r.Get("/milestones/{id}", server.handleActivitiesAPI)
	})

	router.Handle("/assets/*", http.StripPrefix("/assets", assets))
	router.NotFound(server.handleNotFound)

	ctxlog.From(ctx).Info("HTTP routes registered",
		"refreshInterval", server.refresh,
		"photoDir", server.photoDir,
	)

	return server, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "workboard",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}
