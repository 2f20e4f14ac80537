// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package flow

import "sync"

// State is a continuously observable value with latest-value semantics.
// The zero value is not usable; construct with [NewState].
type State[T any] struct {
	mu    sync.RWMutex
	value T
	subs  map[*stateSub[T]]struct{}
}

type stateSub[T any] struct {
	ch chan T
}

// NewState returns a State holding initial.
func NewState[T any](initial T) *State[T] {
	return &State[T]{
		value: initial,
		subs:  make(map[*stateSub[T]]struct{}),
	}
}

// Value returns the current value.
func (s *State[T]) Value() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the current value and notifies every subscriber. A subscriber
// that has not consumed the previous value gets it replaced by v.
func (s *State[T]) Set(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = v
	for sub := range s.subs {
		offerLatest(sub.ch, v)
	}
}

// Subscribe registers a new observer. The returned channel immediately holds
// the current value. The cancel func unregisters the observer and closes the
// channel; it is safe to call more than once.
func (s *State[T]) Subscribe() (<-chan T, func()) {
	sub := &stateSub[T]{ch: make(chan T, 1)}

	s.mu.Lock()
	sub.ch <- s.value
	s.subs[sub] = struct{}{}
	s.mu.Unlock()

	var once sync.Once
	return sub.ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, sub)
			close(sub.ch)
			s.mu.Unlock()
		})
	}
}

// offerLatest puts v into a buffered-1 channel, dropping a stale value that
// has not been read yet. Callers hold the State lock, so there is no
// competing producer.
func offerLatest[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}

	select {
	case <-ch:
	default:
	}

	select {
	case ch <- v:
	default:
	}
}
