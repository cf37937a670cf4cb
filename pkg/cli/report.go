package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/workboard/pkg/cli/config"
	"github.com/secmon-lab/workboard/pkg/domain/interfaces"
	"github.com/secmon-lab/workboard/pkg/domain/model"
	"github.com/secmon-lab/workboard/pkg/service/console"
	"github.com/secmon-lab/workboard/pkg/usecase"
	"github.com/urfave/cli/v3"
)

const asOfLayout = "2006-01-02"

func cmdReport() *cli.Command {
	var (
		sheetsCfg config.Sheets
		teamCfg   config.Team
		asOf      string
		asJSON    bool
	)

	flags := joinFlags(
		sheetsCfg.Flags(),
		teamCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "as-of",
				Usage:       "Report date (YYYY-MM-DD), defaults to today",
				Destination: &asOf,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "Print the dashboard and risk views as JSON",
				Destination: &asJSON,
			},
		},
	)

	return &cli.Command{
		Name:  "report",
		Usage: "Print the dashboard summary to the terminal",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			sheets, err := sheetsCfg.Configure(ctx)
			if err != nil {
				return err
			}

			photos, err := teamCfg.Configure()
			if err != nil {
				return err
			}

			opts := []usecase.DashboardOption{usecase.WithTeamPhotos(photos)}
			if asOf != "" {
				day, err := time.ParseInLocation(asOfLayout, asOf, time.Local)
				if err != nil {
					return goerr.Wrap(err, "invalid --as-of date", goerr.V("as_of", asOf))
				}
				opts = append(opts, usecase.WithClock(func() time.Time { return day }))
			}

			return writeReport(ctx, os.Stdout, usecase.NewDashboard(sheets, opts...), asJSON)
		},
	}
}

func writeReport(ctx context.Context, w io.Writer, uc interfaces.Dashboard, asJSON bool) error {
	dashboard, err := uc.Dashboard(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to build dashboard")
	}
	risks, err := uc.Risks(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to build risk view")
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		out := struct {
			Dashboard *model.Dashboard `json:"dashboard"`
			Risks     *model.RiskView  `json:"risks"`
		}{dashboard, risks}
		if err := enc.Encode(out); err != nil {
			return goerr.Wrap(err, "failed to encode report")
		}
		return nil
	}

	report := console.Report{Dashboard: dashboard, Risks: risks}
	return report.Render(w)
}
