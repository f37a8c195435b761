package clock

import (
	"sync"
	"time"
)

// Clock is injected wherever "now" decides behavior: pickup windows, job
// retries, schedule due times and token expiry.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

// NewRealClock reports wall time in UTC; callers convert to the booking zone.
func NewRealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// MockClock only moves when told to. Safe for use from worker goroutines.
type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
