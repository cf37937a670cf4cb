package metrics

import (
	"time"

	"github.com/secmon-lab/workboard/pkg/domain/model"
	"github.com/secmon-lab/workboard/pkg/domain/types"
)

// MonthPeriod returns the calendar month containing asOf's local date, from its first instant to
// its last nanosecond. The period is in UTC like the date cells it is compared with.
func MonthPeriod(asOf time.Time) model.Period {
	start := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return model.Period{Start: start, End: end}
}

// OverlapsPeriod reports whether [start, end] of the row intersects [periodStart, periodEnd].
// Both ends are inclusive. Rows missing either date never overlap.
func OverlapsPeriod(row model.WorkstreamRow, periodStart, periodEnd time.Time) bool {
	if row.StartDate == nil || row.EndDate == nil {
		return false
	}
	return !row.StartDate.After(periodEnd) && !row.EndDate.Before(periodStart)
}

// TasksInPeriod returns the rows overlapping the period, in input order
func TasksInPeriod(rows []model.WorkstreamRow, periodStart, periodEnd time.Time) []model.WorkstreamRow {
	var result []model.WorkstreamRow
	for _, row := range rows {
		if OverlapsPeriod(row, periodStart, periodEnd) {
			result = append(result, row)
		}
	}
	return result
}

// OpenIssues returns the issues whose status is "open"
func OpenIssues(issues []model.IssueRow) []model.IssueRow {
	var result []model.IssueRow
	for _, issue := range issues {
		if issue.Status.IsOpen() {
			result = append(result, issue)
		}
	}
	return result
}

// OpenRisks returns the risks whose status is "open"
func OpenRisks(risks []model.RiskRow) []model.RiskRow {
	var result []model.RiskRow
	for _, risk := range risks {
		if risk.Status.IsOpen() {
			result = append(result, risk)
		}
	}
	return result
}

// RiskBadgeColor picks the KPI badge color from the open risks:
// danger if any is High, else warning if any is Medium or any exists at all, else secondary.
func RiskBadgeColor(openRisks []model.RiskRow) types.BadgeColor {
	hasMedium := false
	for _, risk := range openRisks {
		switch risk.Band() {
		case types.BandHigh:
			return types.BadgeDanger
		case types.BandMedium:
			hasMedium = true
		}
	}

	if hasMedium || len(openRisks) > 0 {
		return types.BadgeWarning
	}
	return types.BadgeSecondary
}

// KPIs computes the headline counts. Issue and risk rows are filtered by status here.
func KPIs(workstreams []model.WorkstreamRow, issues []model.IssueRow, risks []model.RiskRow, periodStart, periodEnd time.Time) model.KPISummary {
	tasks := 0
	for _, row := range workstreams {
		if OverlapsPeriod(row, periodStart, periodEnd) {
			tasks++
		}
	}

	openRisks := OpenRisks(risks)
	return model.KPISummary{
		TasksInPeriod:     tasks,
		OpenIssues:        len(OpenIssues(issues)),
		OpenRisks:         len(openRisks),
		RiskSeverityColor: RiskBadgeColor(openRisks),
	}
}
