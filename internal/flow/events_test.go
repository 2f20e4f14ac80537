// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Events ───────────────────────────────────────────────────────────────────

func TestEvents_Emit_NoSubscribers_Dropped(t *testing.T) {
	e := NewEvents[string](1)
	assert.Equal(t, 0, e.Emit("lost"))

	ch, cancel := e.Subscribe()
	defer cancel()

	select {
	case ev := <-ch:
		t.Fatalf("late subscriber must not see past events, got %q", ev)
	default:
	}
}

func TestEvents_Emit_DeliversToCurrentSubscribers(t *testing.T) {
	e := NewEvents[int](4)
	ch1, cancel1 := e.Subscribe()
	defer cancel1()
	ch2, cancel2 := e.Subscribe()
	defer cancel2()

	assert.Equal(t, 2, e.Emit(7))
	assert.Equal(t, 7, <-ch1)
	assert.Equal(t, 7, <-ch2)
}

func TestEvents_Emit_FullBuffer_DoesNotBlock(t *testing.T) {
	e := NewEvents[int](1)
	ch, cancel := e.Subscribe()
	defer cancel()

	assert.Equal(t, 1, e.Emit(1))
	assert.Equal(t, 0, e.Emit(2), "second event is dropped for a full subscriber")
	assert.Equal(t, 1, <-ch)
}

func TestEvents_Cancel_Unsubscribes(t *testing.T) {
	e := NewEvents[int](0)
	ch, cancel := e.Subscribe()

	cancel()
	cancel()
	assert.Equal(t, 0, e.Emit(1))
	_, open := <-ch
	require.False(t, open, "channel is closed on cancel")
}

func TestNewEvents_DefaultBuffer(t *testing.T) {
	e := NewEvents[int](-1)
	assert.Equal(t, DefaultEventBuffer, e.buffer)
}
