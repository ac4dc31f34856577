package loop

import (
	"sync"
	"time"
)

// Ticker delivers ticks on C until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock is the time source driving the loop and the calendar.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// RealClock uses the system clock.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

func (RealClock) NewTicker(d time.Duration) Ticker {
	return realTicker{time.NewTicker(d)}
}

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// ManualClock only ticks when told to. All tickers it hands out share one
// unbuffered channel, so Tick returns once the loop has taken the tick.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
	c   chan time.Time
}

// NewManualClock creates a manual clock starting at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{
		now: start,
		c:   make(chan time.Time),
	}
}

// Now returns the current manual time
func (m *ManualClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *ManualClock) NewTicker(time.Duration) Ticker {
	return manualTicker{c: m.c}
}

// Tick advances the clock by d and blocks until a ticker receives it.
func (m *ManualClock) Tick(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	now := m.now
	m.mu.Unlock()

	m.c <- now
}

type manualTicker struct {
	c chan time.Time
}

func (t manualTicker) C() <-chan time.Time { return t.c }
func (t manualTicker) Stop()               {}
