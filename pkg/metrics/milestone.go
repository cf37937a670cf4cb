package metrics

import (
	"strings"
	"time"

	"github.com/secmon-lab/workboard/pkg/domain/model"
	"github.com/secmon-lab/workboard/pkg/domain/types"
)

// MilestoneStatus classifies a milestone on the timeline at asOf
func MilestoneStatus(m model.MilestoneRow, asOf time.Time) types.MilestoneStatus {
	if m.StartDate == nil || m.EndDate == nil {
		return types.MilestoneUnscheduled
	}
	asOf = model.CalendarTime(asOf)

	if !asOf.After(*m.StartDate) {
		return types.MilestoneNotStarted
	}

	if asOf.Before(*m.EndDate) {
		if m.Progress > 0 {
			return types.MilestoneInProgress
		}
		return types.MilestoneNotStarted
	}

	if m.Progress >= 1 {
		return types.MilestoneCompleted
	}
	return types.MilestoneOverdue
}

// MilestoneTimeline builds one bar per milestone, in input order
func MilestoneTimeline(milestones []model.MilestoneRow, asOf time.Time) []model.TimelineBar {
	today := model.CalendarTime(asOf)
	bars := make([]model.TimelineBar, 0, len(milestones))
	for _, m := range milestones {
		bar := model.TimelineBar{
			Milestone: m,
			Status:    MilestoneStatus(m, asOf),
		}

		if m.StartDate != nil && m.EndDate != nil {
			end := *m.EndDate
			if today.Before(end) {
				end = today
			}
			if end.After(*m.StartDate) {
				bar.ElapsedEnd = &end
			}
		}
		bars = append(bars, bar)
	}
	return bars
}

// ActivitiesForMilestone returns the activities linked to a milestone
func ActivitiesForMilestone(activities []model.ActivityRow, id types.MilestoneID) []model.ActivityRow {
	want := strings.TrimSpace(id.String())
	var result []model.ActivityRow
	for _, a := range activities {
		if strings.TrimSpace(a.MilestoneID.String()) == want {
			result = append(result, a)
		}
	}
	return result
}
