package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/workboard/pkg/domain/interfaces"
	"github.com/secmon-lab/workboard/pkg/domain/model"
	"github.com/secmon-lab/workboard/pkg/domain/types"
	"github.com/secmon-lab/workboard/pkg/metrics"
	"github.com/secmon-lab/workboard/pkg/utils/async"
)

// IssueOption is a functional option for configuring Issue
type IssueOption func(*Issue)

// WithIssueClock overrides the time used as the reported date
func WithIssueClock(now func() time.Time) IssueOption {
	return func(u *Issue) {
		u.now = now
	}
}

// WithNotifier sets the notifier told about each logged issue
func WithNotifier(notifier interfaces.Notifier) IssueOption {
	return func(u *Issue) {
		u.notifier = notifier
	}
}

// Issue implements interfaces.Issue
type Issue struct {
	sheets   interfaces.SheetClient
	counter  interfaces.IssueCounter
	notifier interfaces.Notifier
	now      func() time.Time

	// submitMu makes this process the single writer of the issue tracker
	submitMu sync.Mutex
}

var _ interfaces.Issue = (*Issue)(nil)

// NewIssue creates a new Issue use case
func NewIssue(sheets interfaces.SheetClient, counter interfaces.IssueCounter, opts ...IssueOption) *Issue {
	u := &Issue{
		sheets:  sheets,
		counter: counter,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *Issue) readTracker(ctx context.Context) (*model.Table, error) {
	table, err := u.sheets.ReadTable(ctx, model.SheetIssues)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read issue tracker",
			goerr.T(model.ErrTagSnapshotUnavailable))
	}
	return table, nil
}

// ListOpenIssues returns the issues whose status is open
func (u *Issue) ListOpenIssues(ctx context.Context) (*model.IssueView, error) {
	table, err := u.readTracker(ctx)
	if err != nil {
		return nil, err
	}

	return &model.IssueView{
		SnapshotID: types.NewSnapshotID(),
		OpenIssues: metrics.OpenIssues(model.ParseIssueRows(table)),
	}, nil
}

// SubmitIssue appends a new open issue to the tracker and returns it.
// The notifier is called in the background after the append succeeded.
func (u *Issue) SubmitIssue(ctx context.Context, input model.IssueInput) (*model.IssueRow, error) {
	input.Description = strings.TrimSpace(input.Description)
	input.Severity = strings.TrimSpace(input.Severity)
	input.ReportedBy = strings.TrimSpace(input.ReportedBy)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	issue, err := u.appendIssue(ctx, input)
	if err != nil {
		return nil, err
	}

	ctxlog.From(ctx).Info("Issue logged",
		"issueID", issue.ID,
		"severity", issue.Severity,
	)

	if u.notifier != nil {
		notified := *issue
		async.Dispatch(ctx, func(ctx context.Context) error {
			return u.notifier.NotifyIssue(ctx, notified)
		})
	}

	return issue, nil
}

func (u *Issue) appendIssue(ctx context.Context, input model.IssueInput) (*model.IssueRow, error) {
	u.submitMu.Lock()
	defer u.submitMu.Unlock()

	table, err := u.readTracker(ctx)
	if err != nil {
		return nil, err
	}

	// A tracker without a header gets one first, otherwise the new row would be read as the header
	header := table.Header
	if len(header) == 0 {
		header = model.DefaultIssueHeader
		if err := u.sheets.AppendRow(ctx, model.SheetIssues, header); err != nil {
			return nil, goerr.Wrap(err, "failed to write issue tracker header")
		}
	}

	floor := metrics.MaxIssueNumber(table.Column(model.ColIssueID))
	number, err := u.counter.NextIssueNumber(ctx, floor)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to allocate issue number", goerr.V("floor", floor))
	}

	issue := model.NewIssue(metrics.FormatIssueID(number), u.now(), input)
	if err := u.sheets.AppendRow(ctx, model.SheetIssues, issue.Record(header)); err != nil {
		return nil, goerr.Wrap(err, "failed to append issue", goerr.V("issueID", issue.ID))
	}

	return &issue, nil
}
