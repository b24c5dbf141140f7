package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a hand-driven clock for deterministic runs
// Tests step it between Tick calls; reads from the render goroutine are safe
type MockTimeProvider struct {
	mu    sync.RWMutex
	epoch time.Time
	now   time.Time
}

// NewMockTimeProvider starts the clock at epoch
func NewMockTimeProvider(epoch time.Time) *MockTimeProvider {
	return &MockTimeProvider{epoch: epoch, now: epoch}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// SetTime jumps to t, moving backwards is allowed
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves the clock forward by d and returns the new reading
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	return m.now
}

// Step advances by n ticks of the given interval, one Advance per tick
func (m *MockTimeProvider) Step(n int, interval time.Duration) time.Time {
	var t time.Time
	for range n {
		t = m.Advance(interval)
	}
	if n <= 0 {
		return m.Now()
	}
	return t
}

// Elapsed reports the distance from the starting epoch
func (m *MockTimeProvider) Elapsed() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now.Sub(m.epoch)
}
