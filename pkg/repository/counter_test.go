package repository_test

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/workboard/pkg/domain/interfaces"
	"github.com/secmon-lab/workboard/pkg/repository"
)

func testIssueCounter(t *testing.T, newCounter func(t *testing.T) interfaces.IssueCounter) {
	t.Run("Sequential", func(t *testing.T) {
		counter := newCounter(t)
		defer counter.Close()

		ctx := context.Background()
		n1, err := counter.NextIssueNumber(ctx, 0)
		gt.NoError(t, err).Required()
		n2, err := counter.NextIssueNumber(ctx, 0)
		gt.NoError(t, err).Required()

		gt.Equal(t, n2, n1+1)
	})

	t.Run("FloorRaisesCounter", func(t *testing.T) {
		counter := newCounter(t)
		defer counter.Close()

		ctx := context.Background()
		n1, err := counter.NextIssueNumber(ctx, 0)
		gt.NoError(t, err).Required()

		n2, err := counter.NextIssueNumber(ctx, n1+10)
		gt.NoError(t, err).Required()
		gt.Equal(t, n2, n1+11)

		// A lower floor never moves the counter backwards
		n3, err := counter.NextIssueNumber(ctx, 1)
		gt.NoError(t, err).Required()
		gt.Equal(t, n3, n2+1)
	})

	t.Run("ConcurrentUnique", func(t *testing.T) {
		counter := newCounter(t)
		defer counter.Close()

		ctx := context.Background()
		const workers = 10
		results := make([]int, workers)
		errs := make([]error, workers)

		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], errs[i] = counter.NextIssueNumber(ctx, 0)
			}(i)
		}
		wg.Wait()

		seen := make(map[int]bool)
		for i := range workers {
			gt.NoError(t, errs[i])
			gt.False(t, seen[results[i]])
			seen[results[i]] = true
		}
		gt.Equal(t, len(seen), workers)
	})
}

func TestMemoryCounter(t *testing.T) {
	testIssueCounter(t, func(t *testing.T) interfaces.IssueCounter {
		return repository.NewMemoryCounter()
	})

	t.Run("StartsAfterFloor", func(t *testing.T) {
		counter := repository.NewMemoryCounter()
		n, err := counter.NextIssueNumber(context.Background(), 7)
		gt.NoError(t, err)
		gt.Equal(t, n, 8)
	})
}

func TestFirestoreCounter(t *testing.T) {
	// Skip test if Firestore test environment variables are not set
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT")
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE")

	if projectID == "" || databaseID == "" {
		t.Skip("Skipping Firestore test: TEST_FIRESTORE_PROJECT and TEST_FIRESTORE_DATABASE must be set")
	}

	testIssueCounter(t, func(t *testing.T) interfaces.IssueCounter {
		ctx := context.Background()
		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		ctx = ctxlog.With(ctx, logger)

		counter, err := repository.NewFirestoreCounter(ctx, projectID, databaseID)
		gt.NoError(t, err).Required()
		return counter
	})
}
