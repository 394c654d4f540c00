package rx

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Work is a unit of schedulable work. It receives the action running it and
// may call a.Schedule from inside to request continuation.
type Work func(a *AsyncAction, state any)

// Scheduler issues delayed, possibly recurring work against an injected
// clock. Construct one per consumer; there is no package-level instance.
type Scheduler struct {
	clk clock.Clock
}

// NewScheduler binds a scheduler to a clock. Tests pass clock.NewMock().
func NewScheduler(clk clock.Clock) *Scheduler {
	return &Scheduler{clk: clk}
}

// Schedule runs work after delay with the given initial state. The returned
// action is the handle for cancelling pending execution.
func (s *Scheduler) Schedule(work Work, delay time.Duration, state any) *AsyncAction {
	a := NewAsyncAction(s.clk, work)
	a.Schedule(state, delay)
	return a
}

// Clock exposes the scheduler's time source, for sources built on top.
func (s *Scheduler) Clock() clock.Clock {
	return s.clk
}
