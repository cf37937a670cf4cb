package slack

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/workboard/pkg/domain/interfaces"
	"github.com/secmon-lab/workboard/pkg/domain/model"
	"github.com/slack-go/slack"
)

// Notifier posts newly logged issues to a Slack channel
type Notifier struct {
	client    *slack.Client
	channelID string
	issuesURL string
}

var _ interfaces.Notifier = (*Notifier)(nil)

// Option is a functional option for configuring Notifier
type Option func(*Notifier)

// WithIssuesURL sets the issue tracker page linked from each message
func WithIssuesURL(url string) Option {
	return func(n *Notifier) {
		n.issuesURL = url
	}
}

// New creates a Slack notifier posting to channelID
func New(client *slack.Client, channelID string, opts ...Option) *Notifier {
	n := &Notifier{
		client:    client,
		channelID: channelID,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NotifyIssue posts the issue to the configured channel
func (n *Notifier) NotifyIssue(ctx context.Context, issue model.IssueRow) error {
	fallback := fmt.Sprintf("New issue %s: %s", issue.ID, issue.Description)

	channel, timestamp, err := n.client.PostMessageContext(ctx, n.channelID,
		slack.MsgOptionText(fallback, true),
		slack.MsgOptionBlocks(IssueBlocks(issue, n.issuesURL)...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post issue to Slack",
			goerr.V("channelID", n.channelID),
			goerr.V("issueID", issue.ID))
	}

	ctxlog.From(ctx).Debug("Issue posted to Slack",
		"issueID", issue.ID,
		"channel", channel,
		"timestamp", timestamp,
	)
	return nil
}

// Nop discards notifications. It is used when Slack is not configured.
type Nop struct{}

var _ interfaces.Notifier = Nop{}

// NotifyIssue does nothing
func (Nop) NotifyIssue(ctx context.Context, issue model.IssueRow) error {
	return nil
}
