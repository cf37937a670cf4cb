package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/workboard/pkg/domain/interfaces"
	"github.com/secmon-lab/workboard/pkg/repository"
	"github.com/urfave/cli/v3"
)

// Firestore holds Firestore configuration for the issue number counter
type Firestore struct {
	ProjectID  string
	DatabaseID string
}

// Flags returns CLI flags for Firestore configuration
func (f *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "GCP Project ID for the Firestore issue counter",
			Category:    "Firestore",
			Sources:     cli.EnvVars("WORKBOARD_FIRESTORE_PROJECT"),
			Destination: &f.ProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database",
			Usage:       "Firestore Database ID",
			Category:    "Firestore",
			Value:       "(default)",
			Sources:     cli.EnvVars("WORKBOARD_FIRESTORE_DATABASE"),
			Destination: &f.DatabaseID,
		},
	}
}

// Configure creates the issue counter. Without a project it falls back to an in-process counter.
func (f *Firestore) Configure(ctx context.Context) (interfaces.IssueCounter, error) {
	if !f.IsConfigured() {
		ctxlog.From(ctx).Warn("Firestore not configured, issue numbers are only unique within this process")
		return repository.NewMemoryCounter(), nil
	}

	counter, err := repository.NewFirestoreCounter(ctx, f.ProjectID, f.DatabaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore issue counter",
			goerr.V("project_id", f.ProjectID),
			goerr.V("database_id", f.DatabaseID))
	}
	return counter, nil
}

// IsConfigured returns true if Firestore is configured
func (f *Firestore) IsConfigured() bool {
	return f.ProjectID != ""
}

// LogValue returns structured log value
func (f Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project_id", f.ProjectID),
		slog.String("database_id", f.DatabaseID),
	)
}
