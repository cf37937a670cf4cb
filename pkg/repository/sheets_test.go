package repository_test

import (
	"context"
	"os"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/workboard/pkg/domain/interfaces"
	"github.com/secmon-lab/workboard/pkg/domain/model"
	"github.com/secmon-lab/workboard/pkg/repository"
)

func testSheetClient(t *testing.T, client interfaces.SheetClient) {
	ctx := context.Background()

	t.Run("ReadTable", func(t *testing.T) {
		table, err := client.ReadTable(ctx, model.SheetIssues)
		gt.NoError(t, err).Required()
		gt.Equal(t, table.Name, model.SheetIssues)
		gt.True(t, table.HasColumn(model.ColIssueID))
	})

	t.Run("MissingSheet", func(t *testing.T) {
		_, err := client.ReadTable(ctx, "No_Such_Sheet")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagSheetNotFound))
	})
}

func TestMemory(t *testing.T) {
	mem := repository.NewMemory(map[string][][]string{
		model.SheetIssues: {
			{"Issue ID", "Issue Description", "Severity", "Reported By", "Date Reported", "Status"},
			{"ISSUE-001", "Broken build", "High", "Alice", "2024-03-01", "Open"},
		},
	})
	testSheetClient(t, mem)

	t.Run("AppendRow", func(t *testing.T) {
		ctx := context.Background()
		err := mem.AppendRow(ctx, model.SheetIssues, []string{"ISSUE-002", "Flaky test", "Low", "Bob", "2024-03-02", "open"})
		gt.NoError(t, err).Required()

		table, err := mem.ReadTable(ctx, model.SheetIssues)
		gt.NoError(t, err).Required()
		gt.A(t, table.Rows).Length(2)
		gt.Equal(t, table.Value(table.Rows[1], model.ColIssueID), "ISSUE-002")
	})

	t.Run("AppendRowStoresTextMarkedCellAsText", func(t *testing.T) {
		ctx := context.Background()
		err := mem.AppendRow(ctx, model.SheetIssues, []string{"ISSUE-003", "'=1+1", "", "Carol", "2024-03-03", "open"})
		gt.NoError(t, err).Required()

		table, err := mem.ReadTable(ctx, model.SheetIssues)
		gt.NoError(t, err).Required()
		gt.A(t, table.Rows).Length(3).Required()
		gt.Equal(t, table.Value(table.Rows[2], model.ColIssueDescription), "=1+1")
	})

	t.Run("AppendRowMissingSheet", func(t *testing.T) {
		err := mem.AppendRow(context.Background(), "No_Such_Sheet", []string{"x"})
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagSheetNotFound))
	})

	t.Run("ReadReturnsCopy", func(t *testing.T) {
		ctx := context.Background()
		table, err := mem.ReadTable(ctx, model.SheetIssues)
		gt.NoError(t, err).Required()
		table.Rows[0][0] = "CHANGED"

		again, err := mem.ReadTable(ctx, model.SheetIssues)
		gt.NoError(t, err).Required()
		gt.Equal(t, again.Rows[0][0], "ISSUE-001")
	})

	t.Run("SetSheet", func(t *testing.T) {
		ctx := context.Background()
		mem.SetSheet(model.SheetTeam, [][]string{{"Name", "Role"}, {"Alice", "Lead"}})
		table, err := mem.ReadTable(ctx, model.SheetTeam)
		gt.NoError(t, err).Required()
		gt.A(t, table.Rows).Length(1)
	})
}

func TestSheetsHelpers(t *testing.T) {
	t.Run("SheetRange", func(t *testing.T) {
		gt.Equal(t, repository.SheetRange("Risk_Register"), "'Risk_Register'")
		gt.Equal(t, repository.SheetRange("Bob's tab"), "'Bob''s tab'")
	})

	t.Run("CellString", func(t *testing.T) {
		gt.Equal(t, repository.CellString(nil), "")
		gt.Equal(t, repository.CellString("text"), "text")
		gt.Equal(t, repository.CellString(float64(3)), "3")
		gt.Equal(t, repository.CellString(0.25), "0.25")
		gt.Equal(t, repository.CellString(true), "TRUE")
		gt.Equal(t, repository.CellString(false), "FALSE")
	})
}

func TestSheets(t *testing.T) {
	// Skip test if Sheets test environment variables are not set
	spreadsheetID := os.Getenv("TEST_SHEETS_SPREADSHEET_ID")
	credentials := os.Getenv("TEST_SHEETS_CREDENTIALS")

	if spreadsheetID == "" {
		t.Skip("Skipping Sheets test: TEST_SHEETS_SPREADSHEET_ID must be set")
	}

	client, err := repository.NewSheets(context.Background(), spreadsheetID, credentials)
	gt.NoError(t, err).Required()
	testSheetClient(t, client)
}
