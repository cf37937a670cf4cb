package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	controller "github.com/secmon-lab/workboard/pkg/controller/http"
	"github.com/urfave/cli/v3"
)

// DefaultAddr is the listen address when neither --addr nor PORT is given
const DefaultAddr = ":8050"

// Server holds server configuration
type Server struct {
	Addr            string
	BaseURL         string
	RefreshInterval time.Duration
	PhotoDir        string
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address (PORT is used when this is left at the default)",
			Value:       DefaultAddr,
			Sources:     cli.EnvVars("WORKBOARD_ADDR"),
			Destination: &s.Addr,
		},
		&cli.StringFlag{
			Name:        "base-url",
			Usage:       "Public URL of the dashboard used in links (if not set, detected from request headers)",
			Sources:     cli.EnvVars("WORKBOARD_BASE_URL"),
			Destination: &s.BaseURL,
		},
		&cli.DurationFlag{
			Name:        "refresh-interval",
			Usage:       "How often pages reload themselves, 0 disables",
			Value:       controller.DefaultRefreshInterval,
			Sources:     cli.EnvVars("WORKBOARD_REFRESH_INTERVAL"),
			Destination: &s.RefreshInterval,
		},
		&cli.StringFlag{
			Name:        "photo-dir",
			Usage:       "Directory of team member photos served under /assets/",
			Sources:     cli.EnvVars("WORKBOARD_PHOTO_DIR"),
			Destination: &s.PhotoDir,
		},
	}
}

// ListenAddr returns the address to listen on. A PORT environment variable,
// as set by container platforms, replaces the default address.
func (s *Server) ListenAddr() string {
	if (s.Addr == "" || s.Addr == DefaultAddr) && os.Getenv("PORT") != "" {
		return ":" + os.Getenv("PORT")
	}
	if s.Addr == "" {
		return DefaultAddr
	}
	return s.Addr
}

// Options returns the HTTP server options
func (s *Server) Options() []controller.Option {
	opts := []controller.Option{
		controller.WithRefreshInterval(s.RefreshInterval),
		controller.WithBaseURL(s.BaseURL),
	}
	if s.PhotoDir != "" {
		opts = append(opts, controller.WithPhotoDir(s.PhotoDir))
	}
	return opts
}

// IssuesURL returns the link to the issue tracker page, or empty when the base URL is unknown
func (s *Server) IssuesURL() string {
	if s.BaseURL == "" {
		return ""
	}
	return strings.TrimRight(s.BaseURL, "/") + "/issues"
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.ListenAddr()),
		slog.String("base_url", s.BaseURL),
		slog.Duration("refresh_interval", s.RefreshInterval),
		slog.String("photo_dir", s.PhotoDir),
	)
}
