package model

import (
	"time"

	"github.com/secmon-lab/workboard/pkg/domain/types"
)

// Column names of the Milestones and Activities sheets.
// "Mielstone ID" is the historical spelling in the Activities sheet.
var (
	ColMilestoneID       = []string{"Milestone ID", "Mielstone ID"}
	ColMilestoneName     = []string{"Milestone Name"}
	ColOverallProgress   = []string{"Overall Progress"}
	ColActivityID        = []string{"Activity ID", "ID"}
	ColActivityName      = []string{"Activity Name", "Activity"}
	ColActivityProgress  = []string{"Progress"}
	ColActivityStartDate = []string{"Start Date"}
	ColActivityEndDate   = []string{"End Date"}
)

// MilestoneRow is one entry of the Milestones sheet
type MilestoneRow struct {
	ID        types.MilestoneID `json:"id"`
	Name      string            `json:"name"`
	StartDate *time.Time        `json:"start_date,omitempty"`
	EndDate   *time.Time        `json:"end_date,omitempty"`
	Progress  float64           `json:"progress"` // fraction in [0, 1]
}

// ParseMilestoneRows converts the Milestones sheet into typed rows
func ParseMilestoneRows(t *Table) []MilestoneRow {
	if t == nil {
		return nil
	}

	rows := make([]MilestoneRow, 0, len(t.Rows))
	for _, raw := range t.Rows {
		rows = append(rows, MilestoneRow{
			ID:        types.MilestoneID(t.Value(raw, ColMilestoneID...)),
			Name:      t.Value(raw, ColMilestoneName...),
			StartDate: ParseDate(t.Value(raw, ColStartDate...)),
			EndDate:   ParseDate(t.Value(raw, ColEndDate...)),
			Progress:  ParseProgress(t.Value(raw, ColOverallProgress...)),
		})
	}
	return rows
}

// ActivityRow is one entry of the Activities sheet
type ActivityRow struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	MilestoneID types.MilestoneID `json:"milestone_id"`
	AssignedTo  string            `json:"assigned_to"`
	StartDate   *time.Time        `json:"start_date,omitempty"`
	EndDate     *time.Time        `json:"end_date,omitempty"`
	Progress    float64           `json:"progress"`
	Fields      map[string]string `json:"fields"` // every column, for the activity detail table
}

// Assignment returns the row as a unit of assigned work
func (r ActivityRow) Assignment() Assignment {
	return Assignment{AssignedTo: r.AssignedTo, Completion: r.Progress}
}

// ParseActivityRows converts the Activities sheet into typed rows
func ParseActivityRows(t *Table) []ActivityRow {
	if t == nil {
		return nil
	}

	records := t.Records()
	rows := make([]ActivityRow, 0, len(t.Rows))
	for i, raw := range t.Rows {
		rows = append(rows, ActivityRow{
			ID:          t.Value(raw, ColActivityID...),
			Name:        t.Value(raw, ColActivityName...),
			MilestoneID: types.MilestoneID(t.Value(raw, ColMilestoneID...)),
			AssignedTo:  t.Value(raw, ColAssignedTo...),
			StartDate:   ParseDate(t.Value(raw, ColActivityStartDate...)),
			EndDate:     ParseDate(t.Value(raw, ColActivityEndDate...)),
			Progress:    ParseProgress(t.Value(raw, ColActivityProgress...)),
			Fields:      records[i],
		})
	}
	return rows
}

// TimelineBar is one milestone on the timeline chart.
// ElapsedEnd is min(asOf, end) and bounds the colored overlay; it is nil when nothing has elapsed.
type TimelineBar struct {
	Milestone  MilestoneRow          `json:"milestone"`
	Status     types.MilestoneStatus `json:"status"`
	ElapsedEnd *time.Time            `json:"elapsed_end,omitempty"`
}
