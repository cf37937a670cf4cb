package model

import (
	"time"

	"github.com/secmon-lab/workboard/pkg/domain/types"
)

// Column names of the Workstreams sheet
var (
	ColWorkstreamID   = []string{"Task ID", "ID"}
	ColWorkstream     = []string{"Workstream", "Workstream Name"}
	ColTaskName       = []string{"Task Name", "Task"}
	ColStartDate      = []string{"Start Date"}
	ColEndDate        = []string{"End Date"}
	ColEffortDays     = []string{"Duration (Effort Days)", "Effort Days", "Planned Effort (Days)"}
	ColActualComplete = []string{"Actual % Complete", "Actual Complete"}
	ColAssignedTo     = []string{"Assigned To"}
)

// WorkstreamRow is one task of a workstream.
// Absent dates are nil; EffortDays and ActualComplete default to 0.
type WorkstreamRow struct {
	ID             string     `json:"id"`
	Workstream     string     `json:"workstream"`
	TaskName       string     `json:"task_name"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	EffortDays     float64    `json:"effort_days"`
	ActualComplete float64    `json:"actual_complete"` // fraction in [0, 1]
	AssignedTo     string     `json:"assigned_to"`
}

// HasValidSpan reports whether both dates are present and end is after start
func (r WorkstreamRow) HasValidSpan() bool {
	return r.StartDate != nil && r.EndDate != nil && r.EndDate.After(*r.StartDate)
}

// Assignment returns the row as a unit of assigned work
func (r WorkstreamRow) Assignment() Assignment {
	return Assignment{AssignedTo: r.AssignedTo, Completion: r.ActualComplete}
}

// ParseWorkstreamRows converts the Workstreams sheet into typed rows
func ParseWorkstreamRows(t *Table) []WorkstreamRow {
	if t == nil {
		return nil
	}

	rows := make([]WorkstreamRow, 0, len(t.Rows))
	for _, raw := range t.Rows {
		row := WorkstreamRow{
			ID:             t.Value(raw, ColWorkstreamID...),
			Workstream:     t.Value(raw, ColWorkstream...),
			TaskName:       t.Value(raw, ColTaskName...),
			StartDate:      ParseDate(t.Value(raw, ColStartDate...)),
			EndDate:        ParseDate(t.Value(raw, ColEndDate...)),
			EffortDays:     ParseNumberOrZero(t.Value(raw, ColEffortDays...)),
			ActualComplete: ParseFraction(t.Value(raw, ColActualComplete...)),
			AssignedTo:     t.Value(raw, ColAssignedTo...),
		}
		rows = append(rows, row)
	}
	return rows
}

// Assignment is a unit of work with a free-text assignee list and a completion fraction
type Assignment struct {
	AssignedTo string
	Completion float64
}

// WorkstreamSummary is the aggregated progress of one workstream
type WorkstreamSummary struct {
	Workstream      string              `json:"workstream"`
	TotalEffortDays float64             `json:"total_effort_days"`
	PlannedWeighted float64             `json:"planned_weighted"`
	ActualWeighted  float64             `json:"actual_weighted"`
	PlannedPercent  float64             `json:"planned_percent"`
	ActualPercent   float64             `json:"actual_percent"`
	Color           types.ProgressColor `json:"color"`
}
