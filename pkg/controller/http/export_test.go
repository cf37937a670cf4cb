package http

// Test-only accessors for the timeline layout
type (
	TimelineTrack = timelineTrack
	MilestonePage = milestonePage
)

var (
	LayoutTimeline = layoutTimeline
	StatusOf       = statusOf
)
