package slack

import (
	"fmt"

	"github.com/secmon-lab/workboard/pkg/domain/model"
	"github.com/secmon-lab/workboard/pkg/domain/types"
	"github.com/slack-go/slack"
)

// SeverityEmoji returns the emoji shown next to an issue severity
func SeverityEmoji(severity string) string {
	band, ok := types.ParseSeverityBand(severity)
	if !ok {
		return "❓"
	}
	switch band {
	case types.BandHigh:
		return "🚨"
	case types.BandMedium:
		return "⚠️"
	default:
		return "ℹ️"
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// IssueBlocks builds the Block Kit message for a newly logged issue.
// User text is escaped so that mentions and links in it are shown, not triggered.
func IssueBlocks(issue model.IssueRow, issuesURL string) []slack.Block {
	header := slack.NewHeaderBlock(
		slack.NewTextBlockObject(slack.PlainTextType, fmt.Sprintf("New issue %s", issue.ID), false, false),
	)

	description := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, slack.EscapeMessage(issue.Description), false, false),
		nil, nil,
	)

	fields := slack.NewSectionBlock(nil, []*slack.TextBlockObject{
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Severity:*\n%s %s", SeverityEmoji(issue.Severity), orDash(issue.Severity)), false, false),
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Reported by:*\n%s", orDash(slack.EscapeMessage(issue.ReportedBy))), false, false),
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Date reported:*\n%s", orDash(issue.DateReported)), false, false),
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Status:*\n%s", orDash(issue.Status.String())), false, false),
	}, nil)

	blocks := []slack.Block{header, description, fields}

	if issuesURL != "" {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("<%s|Open the issue tracker>", issuesURL), false, false),
		))
	}

	return blocks
}
