package model

import (
	"time"

	"github.com/secmon-lab/workboard/pkg/domain/types"
)

// KPISummary holds the headline counts of the dashboard
type KPISummary struct {
	TasksInPeriod     int              `json:"tasks_in_period"`
	OpenIssues        int              `json:"open_issues"`
	OpenRisks         int              `json:"open_risks"`
	RiskSeverityColor types.BadgeColor `json:"risk_severity_color"`
}

// Period is an inclusive time range
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Dashboard is the view-model of the main dashboard page
type Dashboard struct {
	SnapshotID    types.SnapshotID    `json:"snapshot_id"`
	AsOf          time.Time           `json:"as_of"`
	Period        Period              `json:"period"`
	KPI           KPISummary          `json:"kpi"`
	Workstreams   []WorkstreamSummary `json:"workstreams"`
	TasksInPeriod []WorkstreamRow     `json:"tasks_in_period"`
	ActiveMembers []TeamMember        `json:"active_members"`
}

// RiskView is the view-model of the risk page
type RiskView struct {
	SnapshotID types.SnapshotID `json:"snapshot_id"`
	OpenRisks  []RiskRow        `json:"open_risks"`
	Counts     SeverityCounts   `json:"counts"`
	Matrix     RiskMatrix       `json:"matrix"`
}

// IssueView is the view-model of the issue tracker page
type IssueView struct {
	SnapshotID types.SnapshotID `json:"snapshot_id"`
	OpenIssues []IssueRow       `json:"open_issues"`
}

// MilestoneView is the view-model of the milestone page
type MilestoneView struct {
	SnapshotID    types.SnapshotID `json:"snapshot_id"`
	AsOf          time.Time        `json:"as_of"`
	Timeline      []TimelineBar    `json:"timeline"`
	ActiveMembers []TeamMember     `json:"active_members"`
}

// MilestoneActivities lists the activities of one milestone
type MilestoneActivities struct {
	MilestoneID types.MilestoneID `json:"milestone_id"`
	Columns     []string          `json:"columns"`
	Activities  []ActivityRow     `json:"activities"`
}
