// Package clock measures frame time on the steady clock and paces the frame loop.
package clock

import (
	"sync"
	"time"
)

// Provider returns the current time
type Provider interface {
	Now() time.Time
}

// Monotonic provides the real system time with monotonic clock readings
type Monotonic struct{}

// Now returns the current time with monotonic clock reading
func (Monotonic) Now() time.Time {
	return time.Now()
}

// Mock is a manually driven Provider for tests
type Mock struct {
	mu  sync.Mutex
	now time.Time
}

// NewMock creates a mock clock starting at start
func NewMock(start time.Time) *Mock {
	return &Mock{now: start}
}

// Now returns the mock's current time
func (m *Mock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the mock clock forward by d
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// FrameTimer reports the time elapsed between consecutive ticks
type FrameTimer struct {
	provider Provider
	then     time.Time
}

// NewFrameTimer starts a timer at the provider's current time
func NewFrameTimer(p Provider) *FrameTimer {
	return &FrameTimer{provider: p, then: p.Now()}
}

// Tick returns the time since the previous Tick (or since creation)
func (t *FrameTimer) Tick() time.Duration {
	now := t.provider.Now()
	elapsed := now.Sub(t.then)
	t.then = now
	return max(elapsed, 0)
}

// Limiter blocks the frame loop so it runs no faster than a target rate
type Limiter struct {
	provider Provider
	sleep    func(time.Duration)
	frame    time.Duration
	next     time.Time
}

// NewLimiter creates a limiter for targetFPS frames per second.
// A targetFPS of zero or less disables limiting.
func NewLimiter(p Provider, targetFPS int) *Limiter {
	l := &Limiter{provider: p, sleep: time.Sleep}
	if targetFPS > 0 {
		l.frame = time.Second / time.Duration(targetFPS)
	}
	l.next = p.Now().Add(l.frame)
	return l
}

// Wait sleeps until the current frame's time slot is over
func (l *Limiter) Wait() {
	if l.frame == 0 {
		return
	}

	now := l.provider.Now()
	if wait := l.next.Sub(now); wait > 0 {
		l.sleep(wait)
		l.next = l.next.Add(l.frame)
		return
	}

	// Running behind: start a fresh slot instead of trying to catch up
	l.next = now.Add(l.frame)
}
