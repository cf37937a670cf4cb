package types

import "strings"

// Status is a normalized (trimmed, lower-cased) record status
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// NewStatus normalizes a raw status cell
func NewStatus(raw string) Status {
	return Status(strings.ToLower(strings.TrimSpace(raw)))
}

// String returns the string representation
func (s Status) String() string {
	return string(s)
}

// IsOpen reports whether the status is "open"
func (s Status) IsOpen() bool {
	return s == StatusOpen
}

// SeverityBand is the Low/Medium/High classification of a likelihood x impact score
type SeverityBand string

const (
	BandNone   SeverityBand = ""
	BandLow    SeverityBand = "Low"
	BandMedium SeverityBand = "Medium"
	BandHigh   SeverityBand = "High"
)

// String returns the string representation
func (b SeverityBand) String() string {
	return string(b)
}

// Color returns the cell color used for the band in the risk matrix
func (b SeverityBand) Color() string {
	switch b {
	case BandHigh:
		return "red"
	case BandMedium:
		return "orange"
	case BandLow:
		return "yellow"
	default:
		return "lightgray"
	}
}

// BandForScore classifies a likelihood x impact score.
// score >= 10 is High, 5..9 Medium, 1..4 Low, anything else has no band.
func BandForScore(score int) SeverityBand {
	switch {
	case score >= 10:
		return BandHigh
	case score >= 5:
		return BandMedium
	case score >= 1:
		return BandLow
	default:
		return BandNone
	}
}

// ParseSeverityBand parses a free-text severity label case-insensitively
func ParseSeverityBand(raw string) (SeverityBand, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "high":
		return BandHigh, true
	case "medium":
		return BandMedium, true
	case "low":
		return BandLow, true
	default:
		return BandNone, false
	}
}

// BadgeColor is a UI hint for the open-risks KPI badge
type BadgeColor string

const (
	BadgeDanger    BadgeColor = "danger"
	BadgeWarning   BadgeColor = "warning"
	BadgeSecondary BadgeColor = "secondary"
)

// String returns the string representation
func (c BadgeColor) String() string {
	return string(c)
}

// ProgressColor marks how far actual progress trails or leads the plan
type ProgressColor string

const (
	ProgressGreen  ProgressColor = "green"
	ProgressOrange ProgressColor = "orange"
	ProgressRed    ProgressColor = "red"
)

// String returns the string representation
func (c ProgressColor) String() string {
	return string(c)
}

// MilestoneStatus is the timeline state of a milestone
type MilestoneStatus string

const (
	MilestoneUnscheduled MilestoneStatus = "unscheduled"
	MilestoneNotStarted  MilestoneStatus = "not_started"
	MilestoneInProgress  MilestoneStatus = "in_progress"
	MilestoneOverdue     MilestoneStatus = "overdue"
	MilestoneCompleted   MilestoneStatus = "completed"
)

// String returns the string representation
func (s MilestoneStatus) String() string {
	return string(s)
}

// Label returns the human readable label
func (s MilestoneStatus) Label() string {
	switch s {
	case MilestoneNotStarted:
		return "Not Started"
	case MilestoneInProgress:
		return "In Progress"
	case MilestoneOverdue:
		return "Overdue"
	case MilestoneCompleted:
		return "Completed"
	default:
		return "Unscheduled"
	}
}

// Color returns the timeline overlay color
func (s MilestoneStatus) Color() string {
	switch s {
	case MilestoneInProgress:
		return "orange"
	case MilestoneOverdue:
		return "red"
	case MilestoneCompleted:
		return "green"
	default:
		return "lightgray"
	}
}
