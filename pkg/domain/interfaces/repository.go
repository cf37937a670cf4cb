package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . IssueCounter

import (
	"context"
)

// IssueCounter assigns issue numbers atomically
type IssueCounter interface {
	// NextIssueNumber returns max(current, floor)+1 and stores it as the new current value.
	// floor is the highest number already present in the issue tracker.
	NextIssueNumber(ctx context.Context, floor int) (int, error)

	// Close closes the underlying connection
	Close() error
}
