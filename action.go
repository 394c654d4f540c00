package rx

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

type actionStatus int

const (
	actionIdle actionStatus = iota
	actionArmed
	actionExecuting
)

// AsyncAction executes one work function on a single repeating ticker.
// A one-shot action disarms itself after its first tick because its work
// never reschedules; a periodic action stays armed by calling Schedule from
// inside its own work function on every tick.
type AsyncAction struct {
	mu sync.Mutex

	clk  clock.Clock
	work Work

	state any
	delay time.Duration

	status    actionStatus
	continued bool

	ticker *clock.Ticker
	done   chan struct{}
}

// NewAsyncAction creates an idle action. Schedule arms it.
func NewAsyncAction(clk clock.Clock, work Work) *AsyncAction {
	return &AsyncAction{
		clk:  clk,
		work: work,
	}
}

// Schedule stores state and delay and arms the ticker, replacing any
// pending tick. Called from inside the running work function it is a
// continuation request: the tick that invoked the work must not disarm the
// action afterwards.
func (a *AsyncAction) Schedule(state any, delay time.Duration) {
	if delay <= 0 {
		// tickers reject non-positive periods
		delay = time.Nanosecond
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.state = state
	a.delay = delay
	a.continued = true

	if a.status != actionExecuting {
		a.status = actionArmed
	}

	if a.ticker != nil {
		a.ticker.Reset(delay)
		return
	}

	a.ticker = a.clk.Ticker(delay)
	a.done = make(chan struct{})
	go a.pump(a.ticker, a.done)
}

func (a *AsyncAction) pump(ticker *clock.Ticker, done chan struct{}) {
	for {
		select {
		case <-ticker.C:
			a.execute()
		case <-done:
			return
		}
	}
}

// execute runs one tick. The continuation check strictly follows the work
// call and strictly precedes cancellation: disarming first would cancel a
// just-rescheduled action, skipping the check would leak the ticker.
func (a *AsyncAction) execute() {
	a.mu.Lock()
	if a.status == actionIdle {
		// a buffered tick raced with cancellation
		a.mu.Unlock()
		return
	}
	a.status = actionExecuting
	a.continued = false
	work, state := a.work, a.state
	a.mu.Unlock()

	work(a, state)

	a.mu.Lock()
	if a.continued && a.ticker != nil {
		a.status = actionArmed
	} else {
		a.disarm()
	}
	a.mu.Unlock()
}

// disarm stops and clears the ticker. Callers hold the lock.
func (a *AsyncAction) disarm() {
	a.status = actionIdle

	if a.ticker != nil {
		a.ticker.Stop()
		a.ticker = nil
	}
	if a.done != nil {
		close(a.done)
		a.done = nil
	}
}

// Unsubscribe cancels any pending execution. Idempotent. The action can be
// re-armed with a later Schedule call.
func (a *AsyncAction) Unsubscribe() {
	a.mu.Lock()
	a.disarm()
	a.mu.Unlock()
}

// Armed reports whether a tick is pending or running.
func (a *AsyncAction) Armed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.status != actionIdle
}
