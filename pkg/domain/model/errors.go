package model

import "github.com/m-mizutani/goerr/v2"

// Error tags for categorization
var (
	// ErrTagSnapshotUnavailable marks a failure to read a required sheet
	ErrTagSnapshotUnavailable = goerr.NewTag("snapshot_unavailable")
	// ErrTagSheetNotFound marks a worksheet that does not exist in the workbook
	ErrTagSheetNotFound = goerr.NewTag("sheet_not_found")
	// ErrTagInvalidInput marks a rejected user submission
	ErrTagInvalidInput = goerr.NewTag("invalid_input")
)

// Sentinel errors for domain operations
var (
	ErrMilestoneNotFound = goerr.New("milestone not found")
)
