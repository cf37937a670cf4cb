package http_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	controller "github.com/secmon-lab/workboard/pkg/controller/http"
	"github.com/secmon-lab/workboard/pkg/domain/model"
	"github.com/secmon-lab/workboard/pkg/domain/types"
)

func day(m time.Month, d int) *time.Time {
	t := time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestLayoutTimeline(t *testing.T) {
	view := &model.MilestoneView{
		AsOf: *day(time.February, 1),
		Timeline: []model.TimelineBar{
			{
				Milestone:  model.MilestoneRow{ID: "M1", Name: "Design", StartDate: day(time.January, 1), EndDate: day(time.January, 31)},
				Status:     types.MilestoneCompleted,
				ElapsedEnd: day(time.January, 31),
			},
			{
				// Starts halfway through the chart
				Milestone:  model.MilestoneRow{ID: "M2", StartDate: day(time.January, 31), EndDate: day(time.March, 1)},
				Status:     types.MilestoneInProgress,
				ElapsedEnd: day(time.February, 1),
			},
			{
				Milestone: model.MilestoneRow{ID: "M3", Name: "Launch"},
				Status:    types.MilestoneUnscheduled,
			},
		},
	}

	page := controller.LayoutTimeline(view)
	gt.A(t, page.Tracks).Length(3)
	gt.Equal(t, page.Start, *day(time.January, 1))
	gt.Equal(t, page.End, *day(time.March, 1))

	first := page.Tracks[0]
	gt.True(t, first.Scheduled)
	gt.Equal(t, first.Left, 0.0)
	gt.Equal(t, first.Elapsed, 100.0)

	second := page.Tracks[1]
	gt.Equal(t, second.Name, "M2")
	gt.Equal(t, second.Left+second.Width, 100.0)
	gt.True(t, second.Elapsed > 0 && second.Elapsed < 10)

	third := page.Tracks[2]
	gt.False(t, third.Scheduled)
	gt.Equal(t, third.Width, 0.0)

	gt.True(t, page.ShowToday)
	gt.True(t, page.Today > 50 && page.Today < 60)
}

func TestLayoutTimelineWithoutSchedule(t *testing.T) {
	view := &model.MilestoneView{
		AsOf: *day(time.February, 1),
		Timeline: []model.TimelineBar{
			{Milestone: model.MilestoneRow{ID: "M1"}, Status: types.MilestoneUnscheduled},
		},
	}

	page := controller.LayoutTimeline(view)
	gt.A(t, page.Tracks).Length(1)
	gt.False(t, page.Tracks[0].Scheduled)
	gt.False(t, page.ShowToday)
}

func TestStatusOf(t *testing.T) {
	gt.Equal(t, controller.StatusOf(goerr.New("bad", goerr.T(model.ErrTagInvalidInput))), http.StatusBadRequest)
	gt.Equal(t, controller.StatusOf(goerr.Wrap(model.ErrMilestoneNotFound, "lookup")), http.StatusNotFound)
	gt.Equal(t, controller.StatusOf(goerr.New("down", goerr.T(model.ErrTagSnapshotUnavailable))), http.StatusServiceUnavailable)
	gt.Equal(t, controller.StatusOf(goerr.New("boom")), http.StatusInternalServerError)
}
