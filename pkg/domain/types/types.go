package types

import (
	"github.com/google/uuid"
)

// IssueID represents an issue tracker identifier such as "ISSUE-007"
type IssueID string

// String returns the string representation
func (id IssueID) String() string {
	return string(id)
}

// RiskID represents a risk register identifier
type RiskID string

// String returns the string representation
func (id RiskID) String() string {
	return string(id)
}

// MilestoneID represents a milestone identifier
type MilestoneID string

// String returns the string representation
func (id MilestoneID) String() string {
	return string(id)
}

// SnapshotID identifies one read of the workbook
type SnapshotID string

// String returns the string representation
func (id SnapshotID) String() string {
	return string(id)
}

// NewSnapshotID creates a new SnapshotID using UUID v7
func NewSnapshotID() SnapshotID {
	id, err := uuid.NewV7()
	if err != nil {
		return SnapshotID(uuid.New().String())
	}
	return SnapshotID(id.String())
}
