package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/workboard/pkg/cli/config"
	controller "github.com/secmon-lab/workboard/pkg/controller/http"
	"github.com/secmon-lab/workboard/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		sheetsCfg    config.Sheets
		firestoreCfg config.Firestore
		slackCfg     config.Slack
		teamCfg      config.Team
	)

	flags := joinFlags(
		serverCfg.Flags(),
		sheetsCfg.Flags(),
		firestoreCfg.Flags(),
		slackCfg.Flags(),
		teamCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting workboard server",
				slog.Any("server", serverCfg),
				slog.Any("sheets", sheetsCfg),
				slog.Any("firestore", firestoreCfg),
				slog.Any("slack", slackCfg),
				slog.String("team_photos", teamCfg.PhotosFile),
			)

			sheets, err := sheetsCfg.Configure(ctx)
			if err != nil {
				return err
			}

			counter, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := counter.Close(); err != nil {
					logger.Warn("Failed to close issue counter", slog.Any("error", err))
				}
			}()

			photos, err := teamCfg.Configure()
			if err != nil {
				return err
			}

			notifier := slackCfg.Configure(ctx, serverCfg.IssuesURL())

			dashboardUC := usecase.NewDashboard(sheets, usecase.WithTeamPhotos(photos))
			issueUC := usecase.NewIssue(sheets, counter, usecase.WithNotifier(notifier))

			addr := serverCfg.ListenAddr()
			server, err := controller.NewServer(ctx, addr, dashboardUC, issueUC, serverCfg.Options()...)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			return runServer(ctx, server, addr)
		},
	}
}

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// runServer serves until the context is cancelled, a termination signal arrives or the
// listener fails, then shuts the server down gracefully.
func runServer(ctx context.Context, server httpServer, addr string) error {
	logger := ctxlog.From(ctx)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case err := <-serverErr:
		return goerr.Wrap(err, "HTTP server failed", goerr.V("addr", addr))
	case <-ctx.Done():
		logger.Info("Context cancelled, shutting down...")
	case sig := <-sigChan:
		logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return goerr.Wrap(err, "failed to shutdown server gracefully")
	}

	logger.Info("Server shutdown complete")
	return nil
}
