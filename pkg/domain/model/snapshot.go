package model

import (
	"time"

	"github.com/secmon-lab/workboard/pkg/domain/types"
)

// Snapshot is the raw content of the workbook read in one refresh
type Snapshot struct {
	ID          types.SnapshotID
	FetchedAt   time.Time
	Workstreams *Table
	Risks       *Table
	Issues      *Table
	Team        *Table
	Milestones  *Table
	Activities  *Table
}

// Rows is the typed view of a snapshot
type Rows struct {
	Workstreams []WorkstreamRow
	Risks       []RiskRow
	Issues      []IssueRow
	Team        []TeamMember
	Milestones  []MilestoneRow
	Activities  []ActivityRow
}

// Parse converts every table of the snapshot into typed rows
func (s *Snapshot) Parse() *Rows {
	return &Rows{
		Workstreams: ParseWorkstreamRows(s.Workstreams),
		Risks:       ParseRiskRows(s.Risks),
		Issues:      ParseIssueRows(s.Issues),
		Team:        ParseTeamMembers(s.Team),
		Milestones:  ParseMilestoneRows(s.Milestones),
		Activities:  ParseActivityRows(s.Activities),
	}
}
