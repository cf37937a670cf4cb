package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/workboard/pkg/domain/interfaces"
	slackSvc "github.com/secmon-lab/workboard/pkg/service/slack"
	"github.com/slack-go/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack configuration for issue announcements
type Slack struct {
	OAuthToken string
	ChannelID  string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token used to announce new issues",
			Category:    "Slack",
			Sources:     cli.EnvVars("WORKBOARD_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID that receives new issues",
			Category:    "Slack",
			Sources:     cli.EnvVars("WORKBOARD_SLACK_CHANNEL"),
			Destination: &s.ChannelID,
		},
	}
}

// IsConfigured returns true if both token and channel are set
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.ChannelID != ""
}

// Configure creates the issue notifier. issuesURL is linked from each message when not empty.
func (s *Slack) Configure(ctx context.Context, issuesURL string) interfaces.Notifier {
	if !s.IsConfigured() {
		ctxlog.From(ctx).Info("Slack not configured, new issues will not be announced")
		return slackSvc.Nop{}
	}

	var opts []slackSvc.Option
	if issuesURL != "" {
		opts = append(opts, slackSvc.WithIssuesURL(issuesURL))
	}
	return slackSvc.New(slack.New(s.OAuthToken), s.ChannelID, opts...)
}

// LogValue returns structured log value with masked token
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("oauth_token", maskSecret(s.OAuthToken)),
		slog.String("channel_id", s.ChannelID),
	)
}

func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:4] + "****"
}
