package loop

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"time"
)

const commandBuffer = 64

// Stepper runs one frame: a game update followed by a render.
type Stepper interface {
	Step()
}

// StepFunc adapts a function to Stepper.
type StepFunc func()

func (f StepFunc) Step() { f() }

// Loop calls its Stepper once per tick until the context is cancelled.
// Commands posted from other goroutines run on the loop goroutine between
// ticks, so the stepper's state is never touched concurrently.
type Loop struct {
	clock    Clock
	interval time.Duration
	stepper  Stepper
	logger   *slog.Logger

	commands chan func()
	done     chan struct{}
	ticks    atomic.Uint64
}

// New creates a loop ticking rate times per second.
func New(clock Clock, rate int, stepper Stepper, logger *slog.Logger) *Loop {
	if rate < 1 {
		rate = 1
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loop{
		clock:    clock,
		interval: time.Second / time.Duration(rate),
		stepper:  stepper,
		logger:   logger,
		commands: make(chan func(), commandBuffer),
		done:     make(chan struct{}),
	}
}

// Interval returns the time between ticks.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Ticks returns how many steps have run.
func (l *Loop) Ticks() uint64 {
	return l.ticks.Load()
}

// Run blocks until ctx is done. It may only be called once.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)

	ticker := l.clock.NewTicker(l.interval)
	defer ticker.Stop()

	l.logger.Debug("loop started", "interval", l.interval)
	for {
		select {
		case <-ctx.Done():
			l.logger.Debug("loop stopped", "ticks", l.ticks.Load())
			return nil
		case cmd := <-l.commands:
			cmd()
		case <-ticker.C():
			l.stepper.Step()
			l.ticks.Add(1)
		}
	}
}

// Post queues cmd to run between ticks. It returns false once the loop has
// stopped.
func (l *Loop) Post(cmd func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.commands <- cmd:
		return true
	case <-l.done:
		return false
	}
}
