// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/watchface-sync/internal/adapter"
	"github.com/MKhiriev/watchface-sync/internal/logger"
	"github.com/MKhiriev/watchface-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyMessageClient считает вызовы SendMessage и запоминает последний.
type spyMessageClient struct {
	calls atomic.Int64
	err   error

	mu   sync.Mutex
	last models.Message
}

func (s *spyMessageClient) SendMessage(_ context.Context, nodeID, path string, data []byte) error {
	s.calls.Add(1)
	s.mu.Lock()
	s.last = models.Message{SourceNodeID: nodeID, Path: path, Data: data}
	s.mu.Unlock()
	return s.err
}

func (s *spyMessageClient) Last() models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *spyMessageClient) AddListener(adapter.MessageListener)    {}
func (s *spyMessageClient) RemoveListener(adapter.MessageListener) {}

type staticReader struct {
	level int
	err   error
}

func (r staticReader) ReadLevel(context.Context) (int, error) { return r.level, r.err }

// ── NewBatteryReportJob ──────────────────────────────────────────────────────

func TestNewBatteryReportJob_ReturnsInterface(t *testing.T) {
	job := NewBatteryReportJob(&spyMessageClient{}, staticReader{level: 50}, logger.Nop())
	require.NotNil(t, job)

	var _ BatteryReportJob = job
	assert.False(t, job.Running())
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestBatteryReportJob_Start_ReportsImmediatelyAndOnTicker(t *testing.T) {
	spy := &spyMessageClient{}
	job := NewBatteryReportJob(spy, staticReader{level: 42}, logger.Nop())

	// Интервал 10ms: за 55ms должно быть несколько отправок
	job.Start(context.Background(), "watch-1", 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
	assert.Equal(t, models.Message{SourceNodeID: "watch-1", Path: models.PathBatteryLevel, Data: []byte{42}}, spy.Last())
}

func TestBatteryReportJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyMessageClient{}
	job := NewBatteryReportJob(spy, staticReader{level: 10}, logger.Nop())

	job.Start(context.Background(), "watch-1", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "после Stop новых отправок быть не должно")
	assert.False(t, job.Running())
}

func TestBatteryReportJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewBatteryReportJob(&spyMessageClient{}, staticReader{}, logger.Nop())

	assert.NotPanics(t, func() { job.Stop() })
	assert.NotPanics(t, func() { job.Stop() })
}

func TestBatteryReportJob_Start_DefaultInterval(t *testing.T) {
	spy := &spyMessageClient{}
	job := NewBatteryReportJob(spy, staticReader{level: 80}, logger.Nop())

	// interval <= 0 → дефолтный интервал, за 20ms только первая отправка
	job.Start(context.Background(), "watch-1", 0)
	time.Sleep(20 * time.Millisecond)
	assert.True(t, job.Running())
	job.Stop()

	assert.Equal(t, int64(1), spy.calls.Load())
}

func TestBatteryReportJob_Restart_SwitchesNode(t *testing.T) {
	spy := &spyMessageClient{}
	job := NewBatteryReportJob(spy, staticReader{level: 5}, logger.Nop())

	job.Start(context.Background(), "watch-1", 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)

	// Start повторно на том же job: внутри вызовет Stop()
	job.Start(context.Background(), "watch-2", 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)
	job.Stop()

	assert.Equal(t, "watch-2", spy.Last().SourceNodeID)
}

func TestBatteryReportJob_ContextCancel_StopReturns(t *testing.T) {
	job := NewBatteryReportJob(&spyMessageClient{}, staticReader{level: 5}, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, "watch-1", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop завис после отмены контекста")
	}
}

func TestBatteryReportJob_ReaderError_SkipsSend(t *testing.T) {
	spy := &spyMessageClient{}
	job := NewBatteryReportJob(spy, staticReader{err: assert.AnError}, logger.Nop())

	job.Start(context.Background(), "watch-1", 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestBatteryReportJob_OutOfRangeLevel_SkipsSend(t *testing.T) {
	spy := &spyMessageClient{}
	job := NewBatteryReportJob(spy, staticReader{level: 150}, logger.Nop())

	job.Start(context.Background(), "watch-1", 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestBatteryReportJob_SendError_DoesNotStopJob(t *testing.T) {
	spy := &spyMessageClient{err: assert.AnError}
	job := NewBatteryReportJob(spy, staticReader{level: 60}, logger.Nop())

	// SendMessage возвращает ошибку, но джоб продолжает работать
	job.Start(context.Background(), "watch-1", 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}
