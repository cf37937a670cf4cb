package usecase_test

import (
	"time"

	"github.com/secmon-lab/workboard/pkg/domain/model"
	"github.com/secmon-lab/workboard/pkg/repository"
)

var asOf = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return asOf }

func newWorkbook() *repository.Memory {
	return repository.NewMemory(map[string][][]string{
		model.SheetWorkstreams: {
			{"Workstream", "Task Name", "Start Date", "End Date", "Duration (Effort Days)", "Actual % Complete", "Assigned To"},
			{"Build", "API", "2024-03-01", "2024-03-31", "10", "0.5", "Alice"},
			{"Build", "UI", "2024-02-01", "2024-02-29", "10", "1", "Bob"},
			{"Ops", "Deploy", "2024-04-01", "2024-04-30", "5", "0", "Carol, alice"},
		},
		model.SheetRisks: {
			{"Risk ID", "Risk Description", "Likelihood (1-5)", "Impact (1-5)", "Risk Level", "Status"},
			{"R-1", "Vendor delay", "4", "3", "High", "Open"},
			{"R-2", "Budget cut", "2", "2", "Low", "Closed"},
			{"R-3", "Key person leaves", "1", "3", "Low", " open "},
		},
		model.SheetIssues: {
			{"Issue ID", "Issue Description", "Severity", "Reported By", "Date Reported", "Status"},
			{"ISSUE-001", "Broken build", "High", "Alice", "2024-03-01", "Open"},
			{"ISSUE-007", "Slow page", "Low", "Bob", "2024-03-02", "Closed"},
		},
		model.SheetTeam: {
			{"Person Name", "Role"},
			{"Alice", "Lead"},
			{"Bob", "Developer"},
			{"Carol", "Operations"},
			{"Dave", "PM"},
		},
		model.SheetMilestones: {
			{"Milestone ID", "Milestone Name", "Start Date", "End Date", "Overall Progress"},
			{"M1", "Design", "2024-01-01", "2024-02-01", "1"},
			{"M2", "Build", "2024-03-01", "2024-04-30", "0.3"},
		},
		model.SheetActivities: {
			{"Activity ID", "Activity Name", "Mielstone ID", "Assigned To", "Progress"},
			{"A1", "Write API", "M2", "Dave", "0.5"},
			{"A2", "Wireframes", "M1", "Bob", "1"},
		},
	})
}
