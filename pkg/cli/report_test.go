package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/workboard/pkg/cli"
	"github.com/secmon-lab/workboard/pkg/cli/config"
	"github.com/secmon-lab/workboard/pkg/usecase"
)

func newDemoDashboard(t *testing.T) *usecase.Dashboard {
	wb, err := config.LoadWorkbook("../../demo/workbook.yaml")
	gt.NoError(t, err).Required()

	asOf := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	return usecase.NewDashboard(wb, usecase.WithClock(func() time.Time { return asOf }))
}

func TestWriteReportJSON(t *testing.T) {
	var buf bytes.Buffer
	gt.NoError(t, cli.WriteReport(context.Background(), &buf, newDemoDashboard(t), true)).Required()

	var out struct {
		Dashboard struct {
			KPI struct {
				OpenIssues int `json:"open_issues"`
				OpenRisks  int `json:"open_risks"`
			} `json:"kpi"`
		} `json:"dashboard"`
		Risks struct {
			OpenRisks []json.RawMessage `json:"open_risks"`
		} `json:"risks"`
	}
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &out)).Required()
	gt.Equal(t, out.Dashboard.KPI.OpenIssues, 1)
	gt.Equal(t, out.Dashboard.KPI.OpenRisks, 3)
	gt.A(t, out.Risks.OpenRisks).Length(3)
}

func TestWriteReportConsole(t *testing.T) {
	var buf bytes.Buffer
	gt.NoError(t, cli.WriteReport(context.Background(), &buf, newDemoDashboard(t), false)).Required()
	gt.S(t, buf.String()).Contains("2024-03-15")
	gt.S(t, buf.String()).Contains("Platform")
}
