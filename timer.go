package rx

import (
	"time"

	"github.com/benbjohnson/clock"
)

type timerConfig struct {
	interval  time.Duration
	scheduler *Scheduler
}

// TimerOption configures Timer and Interval.
type TimerOption func(*timerConfig)

// WithInterval keeps the timer emitting every d after its first emission.
func WithInterval(d time.Duration) TimerOption {
	return func(c *timerConfig) { c.interval = d }
}

// WithScheduler runs the timer on the given scheduler instead of one backed
// by the wall clock.
func WithScheduler(s *Scheduler) TimerOption {
	return func(c *timerConfig) { c.scheduler = s }
}

// Timer emits 0 once after due and completes. With WithInterval it instead
// keeps emitting an incrementing counter every interval, never completing.
// Unsubscribing cancels the underlying action.
func Timer(due time.Duration, opts ...TimerOption) Observable[int] {
	var cfg timerConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return NewObservable(func(sub *Subscriber[int]) Teardown {
		scheduler := cfg.scheduler
		if scheduler == nil {
			scheduler = NewScheduler(clock.New())
		}

		action := scheduler.Schedule(func(a *AsyncAction, state any) {
			n := state.(int)
			sub.Next(n)

			if cfg.interval > 0 {
				a.Schedule(n+1, cfg.interval)
				return
			}

			sub.Complete()
		}, due, 0)

		return action.Unsubscribe
	})
}

// Interval emits 0, 1, 2, … every period, the first emission only after one
// full period. Equivalent to Timer(period, WithInterval(period)).
func Interval(period time.Duration, opts ...TimerOption) Observable[int] {
	return Timer(period, append([]TimerOption{WithInterval(period)}, opts...)...)
}
