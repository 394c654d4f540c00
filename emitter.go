package rx

import (
	"slices"
	"sync"
)

type listener struct {
	fn Listener
}

// Emitter is a basic concurrency-safe EventTarget for wiring FromEvent to
// in-process events.
type Emitter struct {
	mu        sync.Mutex
	listeners map[string][]*listener
}

func NewEmitter() *Emitter {
	return &Emitter{
		listeners: make(map[string][]*listener),
	}
}

// AddEventListener registers a listener and returns its remover. Options
// are accepted for interface compatibility and ignored.
func (e *Emitter) AddEventListener(event string, fn Listener, options ...any) func() {
	l := &listener{fn: fn}

	e.mu.Lock()
	e.listeners[event] = append(e.listeners[event], l)
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()

		registered := e.listeners[event]
		if i := slices.Index(registered, l); i >= 0 {
			e.listeners[event] = slices.Delete(registered, i, i+1)
		}
	}
}

// Emit fires an event to every listener registered at call time.
func (e *Emitter) Emit(event string, args ...any) {
	// cloning so listeners may add or remove listeners mid-emit
	e.mu.Lock()
	registered := slices.Clone(e.listeners[event])
	e.mu.Unlock()

	for _, l := range registered {
		l.fn(args...)
	}
}

// ListenerCount reports how many listeners are registered for event.
func (e *Emitter) ListenerCount(event string) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.listeners[event])
}
