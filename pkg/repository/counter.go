package repository

import (
	"context"
	"sync"

	"github.com/secmon-lab/workboard/pkg/domain/interfaces"
)

// MemoryCounter implements interfaces.IssueCounter within one process
type MemoryCounter struct {
	mu      sync.Mutex
	current int
}

var _ interfaces.IssueCounter = (*MemoryCounter)(nil)

// NewMemoryCounter creates a counter starting at zero
func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{}
}

// NextIssueNumber returns max(current, floor)+1
func (c *MemoryCounter) NextIssueNumber(ctx context.Context, floor int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = max(c.current, floor) + 1
	return c.current, nil
}

// Close does nothing
func (c *MemoryCounter) Close() error {
	return nil
}
