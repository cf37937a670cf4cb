package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/workboard/pkg/domain/types"
)

// Column names of the Issue_Tracker sheet
const (
	ColIssueID          = "Issue ID"
	ColIssueDescription = "Issue Description"
	ColIssueSeverity    = "Severity"
	ColIssueReportedBy  = "Reported By"
	ColIssueReported    = "Date Reported"
	ColIssueStatus      = "Status"
)

// DefaultIssueHeader is used when the Issue_Tracker sheet has no header row yet
var DefaultIssueHeader = []string{
	ColIssueID,
	ColIssueDescription,
	ColIssueSeverity,
	ColIssueReportedBy,
	ColIssueReported,
	ColIssueStatus,
}

// IssueRow is one entry of the issue tracker
type IssueRow struct {
	ID           types.IssueID `json:"id"`
	Description  string        `json:"description"`
	Severity     string        `json:"severity"`
	ReportedBy   string        `json:"reported_by"`
	DateReported string        `json:"date_reported"`
	Status       types.Status  `json:"status"`
}

// ParseIssueRows converts the Issue_Tracker sheet into typed rows
func ParseIssueRows(t *Table) []IssueRow {
	if t == nil {
		return nil
	}

	rows := make([]IssueRow, 0, len(t.Rows))
	for _, raw := range t.Rows {
		rows = append(rows, IssueRow{
			ID:           types.IssueID(t.Value(raw, ColIssueID)),
			Description:  t.Value(raw, ColIssueDescription),
			Severity:     t.Value(raw, ColIssueSeverity),
			ReportedBy:   t.Value(raw, ColIssueReportedBy),
			DateReported: t.Value(raw, ColIssueReported),
			Status:       types.NewStatus(t.Value(raw, ColIssueStatus)),
		})
	}
	return rows
}

// IssueInput holds the fields a user submits when logging an issue
type IssueInput struct {
	Description string `json:"description"`
	Severity    string `json:"severity"`
	ReportedBy  string `json:"reported_by"`
}

// Validate validates the submitted issue
func (in IssueInput) Validate() error {
	if in.Description == "" {
		return goerr.New("issue description is required", goerr.T(ErrTagInvalidInput))
	}
	if in.Severity != "" {
		if _, ok := types.ParseSeverityBand(in.Severity); !ok {
			return goerr.New("severity must be High, Medium or Low",
				goerr.V("severity", in.Severity),
				goerr.T(ErrTagInvalidInput))
		}
	}
	return nil
}

// NewIssue builds the issue row for a submission
func NewIssue(id types.IssueID, reported time.Time, in IssueInput) IssueRow {
	severity := in.Severity
	if band, ok := types.ParseSeverityBand(in.Severity); ok {
		severity = band.String()
	}
	return IssueRow{
		ID:           id,
		Description:  in.Description,
		Severity:     severity,
		ReportedBy:   in.ReportedBy,
		DateReported: reported.Format("2006-01-02"),
		Status:       types.StatusOpen,
	}
}

// LiteralCell keeps user text from being evaluated as a formula when the row is written with
// user-entered input semantics. A leading apostrophe marks the cell as text and is not stored.
func LiteralCell(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@':
		return "'" + s
	}
	return s
}

// Record lays the issue out in the column order of header.
// Columns the tracker has but an issue does not know about are left empty.
// Free-text fields are passed through LiteralCell.
func (issue IssueRow) Record(header []string) []string {
	if len(header) == 0 {
		header = DefaultIssueHeader
	}

	record := make([]string, len(header))
	for i, col := range header {
		switch col {
		case ColIssueID:
			record[i] = issue.ID.String()
		case ColIssueDescription:
			record[i] = LiteralCell(issue.Description)
		case ColIssueSeverity:
			record[i] = issue.Severity
		case ColIssueReportedBy:
			record[i] = LiteralCell(issue.ReportedBy)
		case ColIssueReported:
			record[i] = issue.DateReported
		case ColIssueStatus:
			record[i] = issue.Status.String()
		}
	}
	return record
}
