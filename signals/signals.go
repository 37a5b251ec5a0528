// Package signals provides a reactive value that notifies subscribers on change.
package signals

import "sync"

// Signal[T] is a reactive value that notifies subscribers when changed.
// No build tags — fully testable outside WASM. The zero value holds T's zero
// value and has no subscribers.
type Signal[T any] struct {
	mu     sync.RWMutex
	value  T
	subs   []subscription
	nextID uint64
}

type subscription struct {
	id uint64
	fn func()
}

// NewSignal creates a Signal with an initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value and notifies all subscribers.
func (s *Signal[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	s.mu.Unlock()

	s.notify()
}

// Update replaces the value with fn(current) and notifies all subscribers.
// It returns the new value.
func (s *Signal[T]) Update(fn func(T) T) T {
	s.mu.Lock()
	s.value = fn(s.value)
	v := s.value
	s.mu.Unlock()

	s.notify()
	return v
}

// notify runs subscribers outside the lock so they may read or set the signal.
func (s *Signal[T]) notify() {
	s.mu.RLock()
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()

	for _, sub := range subs {
		sub.fn()
	}
}

// Subscribe registers a callback fired when the value changes.
// Returns an unsubscribe func — call it in OnDestroy to avoid memory leaks.
// Unsubscribe removes exactly this callback and is safe to call more than once.
func (s *Signal[T]) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Subscribers returns the number of registered callbacks.
func (s *Signal[T]) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}
