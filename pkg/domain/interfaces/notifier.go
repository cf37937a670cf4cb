package interfaces

//go:generate moq -out mocks/notifier_mock.go -pkg mocks . Notifier

import (
	"context"

	"github.com/secmon-lab/workboard/pkg/domain/model"
)

// Notifier announces newly logged issues
type Notifier interface {
	NotifyIssue(ctx context.Context, issue model.IssueRow) error
}
