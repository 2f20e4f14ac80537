// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"

	"github.com/MKhiriev/watchface-sync/internal/logger"
	"github.com/stretchr/testify/assert"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Start and Stop were called.
type mockWorker struct {
	startCount int
	stopCount  int
	ctx        context.Context
}

func (m *mockWorker) Start(ctx context.Context) {
	m.startCount++
	m.ctx = ctx
}

func (m *mockWorker) Stop() {
	m.stopCount++
}

// orderWorker appends "+id" on Start and "-id" on Stop to a shared slice.
type orderWorker struct {
	id    string
	order *[]string
}

func (o *orderWorker) Start(context.Context) { *o.order = append(*o.order, "+"+o.id) }
func (o *orderWorker) Stop()                 { *o.order = append(*o.order, "-"+o.id) }

// ── Run ──────────────────────────────────────────────────────────────────────

func TestWorkers_Run_AllWorkersAreStarted(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}

	ws := NewWorkers(logger.Nop(), w1, w2, w3)
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, 1, w.startCount, "worker[%d]", i)
		assert.Zero(t, w.stopCount, "worker[%d]", i)
	}
}

func TestWorkers_Run_PassesContext(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "watch")
	w := &mockWorker{}

	NewWorkers(logger.Nop(), w).Run(ctx)

	assert.Equal(t, "watch", w.ctx.Value(ctxKey{}))
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers(logger.Nop())

	// пустой список не должен паниковать
	assert.NotPanics(t, func() {
		ws.Run(context.Background())
		ws.Stop()
	})
}

// ── Stop ─────────────────────────────────────────────────────────────────────

func TestWorkers_Stop_ReverseOrder(t *testing.T) {
	var order []string
	ws := NewWorkers(logger.Nop(),
		&orderWorker{id: "1", order: &order},
		&orderWorker{id: "2", order: &order},
		&orderWorker{id: "3", order: &order},
	)

	ws.Run(context.Background())
	ws.Stop()

	assert.Equal(t, []string{"+1", "+2", "+3", "-3", "-2", "-1"}, order)
}

func TestWorkers_Stop_WithoutRun(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(logger.Nop(), w)

	ws.Stop()

	assert.Equal(t, 0, w.startCount)
	assert.Equal(t, 1, w.stopCount)
}
