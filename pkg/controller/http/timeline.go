package http

import (
	"time"

	"github.com/secmon-lab/workboard/pkg/domain/model"
	"github.com/secmon-lab/workboard/pkg/domain/types"
)

// timelineTrack positions one milestone bar. Left and Width are percentages of the chart;
// Elapsed is the percentage of the bar covered by the status overlay.
type timelineTrack struct {
	ID        types.MilestoneID
	Name      string
	Status    types.MilestoneStatus
	Progress  float64
	Scheduled bool
	Left      float64
	Width     float64
	Elapsed   float64
}

type milestonePage struct {
	View      *model.MilestoneView
	Tracks    []timelineTrack
	Start     time.Time
	End       time.Time
	Today     float64
	ShowToday bool
}

func scheduled(m model.MilestoneRow) bool {
	return m.StartDate != nil && m.EndDate != nil && m.EndDate.After(*m.StartDate)
}

// layoutTimeline maps milestones onto a horizontal chart spanning the earliest start to the latest end
func layoutTimeline(view *model.MilestoneView) *milestonePage {
	page := &milestonePage{View: view}

	for _, bar := range view.Timeline {
		m := bar.Milestone
		if !scheduled(m) {
			continue
		}
		if page.Start.IsZero() || m.StartDate.Before(page.Start) {
			page.Start = *m.StartDate
		}
		if m.EndDate.After(page.End) {
			page.End = *m.EndDate
		}
	}

	total := page.End.Sub(page.Start)
	for _, bar := range view.Timeline {
		m := bar.Milestone
		name := m.Name
		if name == "" {
			name = m.ID.String()
		}
		track := timelineTrack{
			ID:       m.ID,
			Name:     name,
			Status:   bar.Status,
			Progress: m.Progress,
		}

		if scheduled(m) && total > 0 {
			span := m.EndDate.Sub(*m.StartDate)
			track.Scheduled = true
			track.Left = percentage(m.StartDate.Sub(page.Start), total)
			track.Width = percentage(span, total)
			if bar.ElapsedEnd != nil {
				track.Elapsed = percentage(bar.ElapsedEnd.Sub(*m.StartDate), span)
			}
		}
		page.Tracks = append(page.Tracks, track)
	}

	today := model.CalendarTime(view.AsOf)
	if total > 0 && !today.Before(page.Start) && !today.After(page.End) {
		page.ShowToday = true
		page.Today = percentage(today.Sub(page.Start), total)
	}

	return page
}

func percentage(part, whole time.Duration) float64 {
	if whole <= 0 {
		return 0
	}
	p := float64(part) / float64(whole) * 100
	return min(max(p, 0), 100)
}
