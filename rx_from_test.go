package rx

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// sink collects emissions from asynchronous sources under a lock.
type sink[T any] struct {
	mu        sync.Mutex
	values    []T
	errs      []error
	completes int
}

func (s *sink[T]) observer() Observer[T] {
	return Observer[T]{
		Next: func(v T) {
			s.mu.Lock()
			s.values = append(s.values, v)
			s.mu.Unlock()
		},
		Error: func(err error) {
			s.mu.Lock()
			s.errs = append(s.errs, err)
			s.mu.Unlock()
		},
		Complete: func() {
			s.mu.Lock()
			s.completes++
			s.mu.Unlock()
		},
	}
}

func (s *sink[T]) snapshot() ([]T, []error, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]T(nil), s.values...), append([]error(nil), s.errs...), s.completes
}

func TestFrom(t *testing.T) {
	t.Run("from slice emits in order and completes synchronously", func(t *testing.T) {
		log := []any{}

		FromSlice([]int{1, 2, 3}).Subscribe(Observer[int]{
			Next:     func(v int) { log = append(log, v) },
			Complete: func() { log = append(log, "complete") },
		})
		log = append(log, "subscribed")

		assert.Equal(t, []any{1, 2, 3, "complete", "subscribed"}, log)
	})

	t.Run("of is slice emission", func(t *testing.T) {
		values := []string{}

		Of("a", "b").SubscribeFunc(func(v string) { values = append(values, v) })

		assert.Equal(t, []string{"a", "b"}, values)
	})

	t.Run("empty completes immediately", func(t *testing.T) {
		completes := 0

		Empty[int]().Subscribe(Observer[int]{Complete: func() { completes++ }})

		assert.Equal(t, 1, completes)
	})

	t.Run("from passes observables through untouched", func(t *testing.T) {
		obs := Of(1, 2)

		assert.Equal(t, obs, From[int](obs))
	})

	t.Run("from classifies slices and arrays", func(t *testing.T) {
		fromSlice := []int{}
		From[int]([]int{1, 2}).SubscribeFunc(func(v int) { fromSlice = append(fromSlice, v) })
		assert.Equal(t, []int{1, 2}, fromSlice)

		fromArray := []int{}
		From[int]([3]int{7, 8, 9}).SubscribeFunc(func(v int) { fromArray = append(fromArray, v) })
		assert.Equal(t, []int{7, 8, 9}, fromArray)
	})

	t.Run("from treats anything else as empty", func(t *testing.T) {
		log := []string{}

		From[int](42).Subscribe(Observer[int]{
			Next:     func(int) { log = append(log, "next") },
			Complete: func() { log = append(log, "complete") },
		})

		assert.Equal(t, []string{"complete"}, log)
	})

	t.Run("from func emits the result then completes", func(t *testing.T) {
		s := &sink[int]{}

		FromFunc(func() (int, error) { return 7, nil }).Subscribe(s.observer())

		assert.Eventually(t, func() bool {
			values, _, completes := s.snapshot()
			return len(values) == 1 && completes == 1
		}, time.Second, 5*time.Millisecond)

		values, errs, _ := s.snapshot()
		assert.Equal(t, []int{7}, values)
		assert.Empty(t, errs)
	})

	t.Run("from func forwards the error", func(t *testing.T) {
		s := &sink[int]{}
		boom := errors.New("boom")

		FromFunc(func() (int, error) { return 0, boom }).Subscribe(s.observer())

		assert.Eventually(t, func() bool {
			_, errs, _ := s.snapshot()
			return len(errs) == 1 && errs[0] == boom
		}, time.Second, 5*time.Millisecond)

		values, _, completes := s.snapshot()
		assert.Empty(t, values)
		assert.Zero(t, completes)
	})

	t.Run("from chan emits received values and completes on close", func(t *testing.T) {
		s := &sink[int]{}

		ch := make(chan int, 3)
		ch <- 1
		ch <- 2
		ch <- 3
		close(ch)

		FromChan(ch).Subscribe(s.observer())

		assert.Eventually(t, func() bool {
			values, _, completes := s.snapshot()
			return len(values) == 3 && completes == 1
		}, time.Second, 5*time.Millisecond)

		values, _, _ := s.snapshot()
		assert.Equal(t, []int{1, 2, 3}, values)
	})

	t.Run("unsubscribing detaches from the channel", func(t *testing.T) {
		s := &sink[int]{}
		ch := make(chan int, 1)

		sub := FromChan(ch).Subscribe(s.observer())
		sub.Unsubscribe()
		ch <- 1

		time.Sleep(20 * time.Millisecond)

		values, _, completes := s.snapshot()
		assert.Empty(t, values)
		assert.Zero(t, completes)
	})

	t.Run("from adapts foreign channels through reflection", func(t *testing.T) {
		s := &sink[any]{}

		ch := make(chan int, 2)
		ch <- 4
		ch <- 5
		close(ch)

		From[any](ch).Subscribe(s.observer())

		assert.Eventually(t, func() bool {
			values, _, completes := s.snapshot()
			return len(values) == 2 && completes == 1
		}, time.Second, 5*time.Millisecond)

		values, _, _ := s.snapshot()
		assert.Equal(t, []any{4, 5}, values)
	})
}
