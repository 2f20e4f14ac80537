// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package flow

import "sync"

// DefaultEventBuffer is the per-subscriber buffer used by [NewEvents] when a
// non-positive size is given.
const DefaultEventBuffer = 8

// Events is a hot, non-replaying event stream.
type Events[T any] struct {
	mu     sync.RWMutex
	buffer int
	subs   map[chan T]struct{}
}

// NewEvents returns an event stream whose subscribers buffer up to buffer
// undelivered events each.
func NewEvents[T any](buffer int) *Events[T] {
	if buffer <= 0 {
		buffer = DefaultEventBuffer
	}
	return &Events[T]{
		buffer: buffer,
		subs:   make(map[chan T]struct{}),
	}
}

// Emit delivers ev to every current subscriber without blocking. It reports
// how many subscribers accepted the event; zero means it was dropped.
func (e *Events[T]) Emit(ev T) int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	delivered := 0
	for ch := range e.subs {
		select {
		case ch <- ev:
			delivered++
		default:
		}
	}
	return delivered
}

// Subscribe registers an observer for events emitted from now on. The cancel
// func unregisters it and closes the channel; it is safe to call more than
// once.
func (e *Events[T]) Subscribe() (<-chan T, func()) {
	ch := make(chan T, e.buffer)

	e.mu.Lock()
	e.subs[ch] = struct{}{}
	e.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			e.mu.Lock()
			delete(e.subs, ch)
			close(ch)
			e.mu.Unlock()
		})
	}
}
