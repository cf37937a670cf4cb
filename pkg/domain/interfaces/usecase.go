package interfaces

import (
	"context"

	"github.com/secmon-lab/workboard/pkg/domain/model"
	"github.com/secmon-lab/workboard/pkg/domain/types"
)

// Dashboard derives the read-only views from the latest workbook snapshot
type Dashboard interface {
	Dashboard(ctx context.Context) (*model.Dashboard, error)
	Risks(ctx context.Context) (*model.RiskView, error)
	Milestones(ctx context.Context) (*model.MilestoneView, error)
	MilestoneActivities(ctx context.Context, id types.MilestoneID) (*model.MilestoneActivities, error)
}

// Issue lists and logs issues
type Issue interface {
	ListOpenIssues(ctx context.Context) (*model.IssueView, error)
	SubmitIssue(ctx context.Context, input model.IssueInput) (*model.IssueRow, error)
}
