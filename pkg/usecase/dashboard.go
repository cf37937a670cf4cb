package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/workboard/pkg/domain/interfaces"
	"github.com/secmon-lab/workboard/pkg/domain/model"
	"github.com/secmon-lab/workboard/pkg/domain/types"
	"github.com/secmon-lab/workboard/pkg/metrics"
	"github.com/secmon-lab/workboard/pkg/repository"
)

// DashboardOption is a functional option for configuring Dashboard
type DashboardOption func(*Dashboard)

// WithClock overrides the time used as "as of" for derived figures
func WithClock(now func() time.Time) DashboardOption {
	return func(u *Dashboard) {
		u.now = now
	}
}

// WithTeamPhotos sets the photo mapping applied to directory entries without a Photo column
func WithTeamPhotos(photos *model.TeamPhotos) DashboardOption {
	return func(u *Dashboard) {
		u.photos = photos
	}
}

// Dashboard implements interfaces.Dashboard. Every call reads a fresh snapshot.
type Dashboard struct {
	sheets interfaces.SheetClient
	photos *model.TeamPhotos
	now    func() time.Time
}

var _ interfaces.Dashboard = (*Dashboard)(nil)

// NewDashboard creates a new Dashboard use case
func NewDashboard(sheets interfaces.SheetClient, opts ...DashboardOption) *Dashboard {
	u := &Dashboard{
		sheets: sheets,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *Dashboard) read(ctx context.Context) (*model.Snapshot, *model.Rows, error) {
	snapshot, err := repository.ReadSnapshot(ctx, u.sheets, repository.RequiredSheets, repository.OptionalSheets)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to read workbook snapshot")
	}

	rows := snapshot.Parse()
	rows.Team = u.photos.Apply(rows.Team)
	return snapshot, rows, nil
}

// Dashboard derives the main dashboard for the current month
func (u *Dashboard) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	snapshot, rows, err := u.read(ctx)
	if err != nil {
		return nil, err
	}

	asOf := u.now()
	period := metrics.MonthPeriod(asOf)

	view := &model.Dashboard{
		SnapshotID:    snapshot.ID,
		AsOf:          asOf,
		Period:        period,
		KPI:           metrics.KPIs(rows.Workstreams, rows.Issues, rows.Risks, period.Start, period.End),
		Workstreams:   metrics.WorkstreamSummaries(rows.Workstreams, asOf),
		TasksInPeriod: metrics.TasksInPeriod(rows.Workstreams, period.Start, period.End),
		ActiveMembers: metrics.ActiveTeamMembers(metrics.WorkstreamAssignments(rows.Workstreams), rows.Team),
	}

	ctxlog.From(ctx).Debug("Dashboard derived",
		"snapshotID", snapshot.ID,
		"workstreams", len(view.Workstreams),
		"tasksInPeriod", view.KPI.TasksInPeriod,
		"openIssues", view.KPI.OpenIssues,
		"openRisks", view.KPI.OpenRisks,
	)

	return view, nil
}

// Risks derives the risk matrix and severity counts of open risks
func (u *Dashboard) Risks(ctx context.Context) (*model.RiskView, error) {
	snapshot, rows, err := u.read(ctx)
	if err != nil {
		return nil, err
	}

	open := metrics.OpenRisks(rows.Risks)
	return &model.RiskView{
		SnapshotID: snapshot.ID,
		OpenRisks:  open,
		Counts:     metrics.RiskSeverityCounts(open),
		Matrix:     metrics.RiskMatrix(open),
	}, nil
}

// Milestones derives the milestone timeline and the members with unfinished activities
func (u *Dashboard) Milestones(ctx context.Context) (*model.MilestoneView, error) {
	snapshot, rows, err := u.read(ctx)
	if err != nil {
		return nil, err
	}

	asOf := u.now()
	return &model.MilestoneView{
		SnapshotID:    snapshot.ID,
		AsOf:          asOf,
		Timeline:      metrics.MilestoneTimeline(rows.Milestones, asOf),
		ActiveMembers: metrics.ActiveTeamMembers(metrics.ActivityAssignments(rows.Activities), rows.Team),
	}, nil
}

// MilestoneActivities lists the activities of one milestone.
// An ID that matches neither a milestone nor an activity is ErrMilestoneNotFound.
func (u *Dashboard) MilestoneActivities(ctx context.Context, id types.MilestoneID) (*model.MilestoneActivities, error) {
	snapshot, rows, err := u.read(ctx)
	if err != nil {
		return nil, err
	}

	activities := metrics.ActivitiesForMilestone(rows.Activities, id)
	if len(activities) == 0 && !hasMilestone(rows.Milestones, id) {
		return nil, goerr.Wrap(model.ErrMilestoneNotFound, "no such milestone",
			goerr.V("milestoneID", id))
	}

	var columns []string
	if snapshot.Activities != nil {
		for _, h := range snapshot.Activities.Header {
			if h != "" {
				columns = append(columns, h)
			}
		}
	}

	return &model.MilestoneActivities{
		MilestoneID: id,
		Columns:     columns,
		Activities:  activities,
	}, nil
}

func hasMilestone(milestones []model.MilestoneRow, id types.MilestoneID) bool {
	for _, m := range milestones {
		if m.ID == id {
			return true
		}
	}
	return false
}
