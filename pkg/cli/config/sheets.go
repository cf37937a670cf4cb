package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/workboard/pkg/domain/interfaces"
	"github.com/secmon-lab/workboard/pkg/repository"
	"github.com/urfave/cli/v3"
)

// DefaultCredentialsFile is the service account key looked up when no path is given
const DefaultCredentialsFile = "credentials.json"

// Sheets holds the workbook source configuration
type Sheets struct {
	CredentialsFile string
	SpreadsheetID   string
	DemoWorkbook    string
}

// Flags returns CLI flags for Sheets configuration
func (s *Sheets) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sheets-credentials",
			Usage:       "Service account key file for Google Sheets (falls back to application default credentials)",
			Category:    "Google Sheets",
			Value:       DefaultCredentialsFile,
			Sources:     cli.EnvVars("WORKBOARD_SHEETS_CREDENTIALS", "GOOGLE_APPLICATION_CREDENTIALS"),
			Destination: &s.CredentialsFile,
		},
		&cli.StringFlag{
			Name:        "sheets-spreadsheet-id",
			Usage:       "ID of the project workbook spreadsheet",
			Category:    "Google Sheets",
			Sources:     cli.EnvVars("WORKBOARD_SHEETS_SPREADSHEET_ID"),
			Destination: &s.SpreadsheetID,
		},
		&cli.StringFlag{
			Name:        "demo-workbook",
			Usage:       "YAML workbook served from memory instead of Google Sheets",
			Category:    "Google Sheets",
			Sources:     cli.EnvVars("WORKBOARD_DEMO_WORKBOOK"),
			Destination: &s.DemoWorkbook,
		},
	}
}

// LogValue returns structured log value
func (s Sheets) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("spreadsheet_id", s.SpreadsheetID),
		slog.String("credentials_file", s.CredentialsFile),
		slog.String("demo_workbook", s.DemoWorkbook),
	)
}

// Configure creates the sheet client. A demo workbook takes precedence over the spreadsheet.
func (s *Sheets) Configure(ctx context.Context) (interfaces.SheetClient, error) {
	logger := ctxlog.From(ctx)

	if s.DemoWorkbook != "" {
		wb, err := LoadWorkbook(s.DemoWorkbook)
		if err != nil {
			return nil, err
		}
		logger.Warn("Serving demo workbook from memory, changes are not persisted",
			"path", s.DemoWorkbook)
		return wb, nil
	}

	if s.SpreadsheetID == "" {
		return nil, goerr.New("either --sheets-spreadsheet-id or --demo-workbook is required")
	}

	credentials := s.CredentialsFile
	if credentials == DefaultCredentialsFile {
		if _, err := os.Stat(credentials); os.IsNotExist(err) {
			logger.Debug("Default credentials file not found, using application default credentials")
			credentials = ""
		}
	}

	client, err := repository.NewSheets(ctx, s.SpreadsheetID, credentials)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Google Sheets client")
	}
	return client, nil
}
