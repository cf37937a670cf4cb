package async_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/workboard/pkg/utils/async"
)

func waitGroup(t *testing.T, wg *sync.WaitGroup, timeout time.Duration) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		t.Fatal("Async handler did not complete within timeout")
	}
}

func TestDispatch(t *testing.T) {
	t.Run("Execute handler asynchronously", func(t *testing.T) {
		var wg sync.WaitGroup
		executed := false

		wg.Add(1)
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer wg.Done()
			executed = true
			return nil
		})

		waitGroup(t, &wg, time.Second)
		gt.True(t, executed)
	})

	t.Run("Handle errors in async handler", func(t *testing.T) {
		var wg sync.WaitGroup

		wg.Add(1)
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer wg.Done()
			return goerr.New("test error")
		})

		waitGroup(t, &wg, time.Second)
	})

	t.Run("Recover from panic in async handler", func(t *testing.T) {
		var wg sync.WaitGroup

		wg.Add(1)
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer wg.Done()
			panic("test panic")
		})

		waitGroup(t, &wg, time.Second)
	})

	t.Run("Caller cancellation does not reach handler", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		var wg sync.WaitGroup
		var handlerErr error
		started := make(chan struct{})

		wg.Add(1)
		async.Dispatch(ctx, func(ctx context.Context) error {
			defer wg.Done()
			<-started
			handlerErr = ctx.Err()
			return nil
		})
		cancel()
		close(started)

		waitGroup(t, &wg, time.Second)
		gt.NoError(t, handlerErr)
	})

	t.Run("Logger is preserved in background context", func(t *testing.T) {
		logger := ctxlog.From(context.Background())
		ctx := ctxlog.With(context.Background(), logger)

		var wg sync.WaitGroup
		var hasLogger bool

		wg.Add(1)
		async.Dispatch(ctx, func(ctx context.Context) error {
			defer wg.Done()
			hasLogger = ctxlog.From(ctx) != nil
			return nil
		})

		waitGroup(t, &wg, time.Second)
		gt.True(t, hasLogger)
	})

	t.Run("Each dispatch preserves its own request ID", func(t *testing.T) {
		var wg sync.WaitGroup
		results := make(map[string]string)
		var mu sync.Mutex

		for i := 0; i < 5; i++ {
			reqID := fmt.Sprintf("req-%03d", i)
			ctx := context.WithValue(context.Background(), middleware.RequestIDKey, reqID)

			wg.Add(1)
			async.Dispatch(ctx, func(ctx context.Context) error {
				defer wg.Done()
				time.Sleep(10 * time.Millisecond)

				mu.Lock()
				results[reqID] = middleware.GetReqID(ctx)
				mu.Unlock()
				return nil
			})
		}

		waitGroup(t, &wg, 2*time.Second)
		for i := 0; i < 5; i++ {
			reqID := fmt.Sprintf("req-%03d", i)
			gt.Equal(t, reqID, results[reqID])
		}
	})
}
