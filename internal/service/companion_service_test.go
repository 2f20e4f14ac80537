// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/watchface-sync/internal/adapter"
	"github.com/MKhiriev/watchface-sync/internal/config"
	"github.com/MKhiriev/watchface-sync/internal/logger"
	"github.com/MKhiriev/watchface-sync/internal/mock"
	"github.com/MKhiriev/watchface-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testPhoneNode = models.Node{ID: "phone", DisplayName: "Pixel", Nearby: true}
	testWatchNode = models.Node{ID: "watch", DisplayName: "Watch", Nearby: true}
)

// inbox collects messages delivered to a transport.
type inbox struct {
	mu   sync.Mutex
	msgs []models.Message
}

func (i *inbox) OnMessageReceived(msg models.Message) {
	i.mu.Lock()
	i.msgs = append(i.msgs, msg)
	i.mu.Unlock()
}

func (i *inbox) messages() []models.Message {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]models.Message(nil), i.msgs...)
}

func joinTestPair(t *testing.T) (*adapter.MemSwitch, *adapter.MemTransport, *adapter.MemTransport) {
	t.Helper()
	sw := adapter.NewMemSwitch()

	phone, err := sw.Join(testPhoneNode, models.CapabilityCompanionApp)
	require.NoError(t, err)
	watch, err := sw.Join(testWatchNode, models.CapabilityWatchFaceApp)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = watch.Close()
		_ = phone.Close()
	})
	return sw, phone, watch
}

func newTestCompanion(t *testing.T, transport adapter.Transport, pref BoolPreference) (*companionService, *mock.MockBatteryReportJob) {
	t.Helper()
	ctrl := gomock.NewController(t)
	reporter := mock.NewMockBatteryReportJob(ctrl)
	reporter.EXPECT().Stop().AnyTimes()

	svc := NewCompanionService(transport, pref, reporter, config.Workers{BatteryReportInterval: time.Minute}, logger.Nop()).(*companionService)
	t.Cleanup(func() { _ = svc.Close() })
	return svc, reporter
}

// ── OnMessageReceived ────────────────────────────────────────────────────────

func TestCompanionService_Query_PersistsAcknowledgesAndStartsReporter(t *testing.T) {
	_, phone, watch := joinTestPair(t)
	pref := &memPreference{}
	_, reporter := newTestCompanion(t, phone, pref)
	started := make(chan struct{})
	reporter.EXPECT().Start(gomock.Any(), testWatchNode.ID, time.Minute).Do(func(context.Context, string, time.Duration) { close(started) })

	in := &inbox{}
	watch.AddListener(in)
	require.NoError(t, watch.SendMessage(context.Background(), testPhoneNode.ID, models.PathBatterySyncQueryStatus, []byte{1}))

	waitClosed(t, started)
	require.Eventually(t, func() bool { return len(in.messages()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, models.Message{SourceNodeID: testPhoneNode.ID, Path: models.PathBatterySyncActivated, Data: []byte{1}}, in.messages()[0])
	assert.True(t, pref.Value())
}

func TestCompanionService_Query_FalseStopsReporter(t *testing.T) {
	_, phone, watch := joinTestPair(t)
	pref := &memPreference{value: true}
	newTestCompanion(t, phone, pref)

	in := &inbox{}
	watch.AddListener(in)
	require.NoError(t, watch.SendMessage(context.Background(), testPhoneNode.ID, models.PathBatterySyncQueryStatus, []byte{0}))

	require.Eventually(t, func() bool { return len(in.messages()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []byte{0}, in.messages()[0].Data)
	assert.False(t, pref.Value())
}

func TestCompanionService_Query_MalformedIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mock.NewMockTransport(ctrl)
	transport.EXPECT().LocalNode().Return(testPhoneNode)
	transport.EXPECT().AddListener(gomock.Any())
	transport.EXPECT().RemoveListener(gomock.Any())
	pref := &memPreference{value: true}
	svc, _ := newTestCompanion(t, transport, pref)

	svc.OnMessageReceived(models.Message{SourceNodeID: testWatchNode.ID, Path: models.PathBatterySyncQueryStatus})
	svc.OnMessageReceived(models.Message{SourceNodeID: testWatchNode.ID, Path: "/unknown", Data: []byte{0}})

	assert.True(t, pref.Value())
}

func TestCompanionService_Query_AckFailureKeepsReporterIdle(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mock.NewMockTransport(ctrl)
	transport.EXPECT().LocalNode().Return(testPhoneNode)
	transport.EXPECT().AddListener(gomock.Any())
	transport.EXPECT().RemoveListener(gomock.Any())
	transport.EXPECT().SendMessage(gomock.Any(), testWatchNode.ID, models.PathBatterySyncActivated, []byte{1}).
		Return(adapter.ErrNodeNotFound)
	pref := &memPreference{}
	svc, _ := newTestCompanion(t, transport, pref)

	svc.OnMessageReceived(models.Message{SourceNodeID: testWatchNode.ID, Path: models.PathBatterySyncQueryStatus, Data: []byte{1}})

	assert.True(t, pref.Value())
}

// ── Outbound ─────────────────────────────────────────────────────────────────

func TestCompanionService_SendBatteryStatus(t *testing.T) {
	_, phone, watch := joinTestPair(t)
	svc, _ := newTestCompanion(t, phone, &memPreference{})
	in := &inbox{}
	watch.AddListener(in)

	require.NoError(t, svc.SendBatteryStatus(context.Background(), 64))

	require.Eventually(t, func() bool { return len(in.messages()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, models.Message{SourceNodeID: testPhoneNode.ID, Path: models.PathBatteryLevel, Data: []byte{64}}, in.messages()[0])
}

func TestCompanionService_SendBatteryStatus_InvalidLevel(t *testing.T) {
	_, phone, _ := joinTestPair(t)
	svc, _ := newTestCompanion(t, phone, &memPreference{})

	err := svc.SendBatteryStatus(context.Background(), 101)

	require.ErrorIs(t, err, models.ErrInvalidBatteryLevel)
}

func TestCompanionService_SendBatterySyncStatus(t *testing.T) {
	_, phone, watch := joinTestPair(t)
	pref := &memPreference{}
	svc, reporter := newTestCompanion(t, phone, pref)
	reporter.EXPECT().Running().Return(false)
	reporter.EXPECT().Start(gomock.Any(), testWatchNode.ID, time.Minute)
	in := &inbox{}
	watch.AddListener(in)

	require.NoError(t, svc.SendBatterySyncStatus(context.Background(), true))

	require.Eventually(t, func() bool { return len(in.messages()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, models.PathBatterySyncActivated, in.messages()[0].Path)
	assert.Equal(t, []byte{1}, in.messages()[0].Data)
	assert.True(t, pref.Value())
}

func TestCompanionService_SendBatterySyncStatus_ReporterAlreadyRunning(t *testing.T) {
	_, phone, _ := joinTestPair(t)
	svc, reporter := newTestCompanion(t, phone, &memPreference{})
	reporter.EXPECT().Running().Return(true)

	require.NoError(t, svc.SendBatterySyncStatus(context.Background(), true))
}

func TestCompanionService_SendBatterySyncStatus_DeactivateStopsReporter(t *testing.T) {
	_, phone, _ := joinTestPair(t)
	pref := &memPreference{value: true}
	svc, _ := newTestCompanion(t, phone, pref)

	require.NoError(t, svc.SendBatterySyncStatus(context.Background(), false))
	assert.False(t, pref.Value())
}

func TestCompanionService_SendBatterySyncStatus_NoWearable(t *testing.T) {
	sw := adapter.NewMemSwitch()
	phone, err := sw.Join(testPhoneNode, models.CapabilityCompanionApp)
	require.NoError(t, err)
	t.Cleanup(func() { _ = phone.Close() })
	svc, _ := newTestCompanion(t, phone, &memPreference{})

	err = svc.SendBatterySyncStatus(context.Background(), true)

	require.ErrorIs(t, err, ErrNoWearableConnected)
}

func TestCompanionService_SendPremiumStatus(t *testing.T) {
	_, phone, watch := joinTestPair(t)
	svc, _ := newTestCompanion(t, phone, &memPreference{})
	in := &inbox{}
	watch.AddListener(in)

	require.NoError(t, svc.SendPremiumStatus(context.Background(), true))

	require.Eventually(t, func() bool { return len(in.messages()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, models.Message{SourceNodeID: testPhoneNode.ID, Path: models.PathPremiumStatus, Data: []byte{1}}, in.messages()[0])
}

func TestCompanionService_SendNotificationsSyncStatus(t *testing.T) {
	_, phone, watch := joinTestPair(t)
	svc, _ := newTestCompanion(t, phone, &memPreference{})
	in := &inbox{}
	watch.AddListener(in)

	require.NoError(t, svc.SendNotificationsSyncStatus(context.Background(), models.NotificationsSyncActivatedMissingPermission))

	require.Eventually(t, func() bool { return len(in.messages()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, models.PathNotificationsSyncStatus, in.messages()[0].Path)
	assert.Equal(t, []byte{2}, in.messages()[0].Data)
}

func TestCompanionService_SendNotificationsSyncStatus_Invalid(t *testing.T) {
	_, phone, _ := joinTestPair(t)
	svc, _ := newTestCompanion(t, phone, &memPreference{})

	err := svc.SendNotificationsSyncStatus(context.Background(), models.NotificationsSyncStatus(3))

	require.ErrorIs(t, err, models.ErrInvalidNotificationsSyncStatus)
}

func TestCompanionService_SendPremiumStatus_NoWearable(t *testing.T) {
	sw := adapter.NewMemSwitch()
	phone, err := sw.Join(testPhoneNode, models.CapabilityCompanionApp)
	require.NoError(t, err)
	t.Cleanup(func() { _ = phone.Close() })
	svc, _ := newTestCompanion(t, phone, &memPreference{})

	err = svc.SendPremiumStatus(context.Background(), true)

	require.ErrorIs(t, err, ErrNoWearableConnected)
}

// ── GetWearableStatus ────────────────────────────────────────────────────────

func TestCompanionService_GetWearableStatus(t *testing.T) {
	_, phone, watch := joinTestPair(t)
	svc, _ := newTestCompanion(t, phone, &memPreference{})

	status, err := svc.GetWearableStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.WearableAvailableAppInstalled, status)

	watch.Withdraw(models.CapabilityWatchFaceApp)

	status, err = svc.GetWearableStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.WearableAvailableAppNotInstalled, status)

	require.NoError(t, watch.Close())

	status, err = svc.GetWearableStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.WearableNotAvailable, status)
}

func TestCompanionService_GetWearableStatus_ConnectedNodesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mock.NewMockTransport(ctrl)
	transport.EXPECT().LocalNode().Return(testPhoneNode)
	transport.EXPECT().AddListener(gomock.Any())
	transport.EXPECT().RemoveListener(gomock.Any())
	transport.EXPECT().GetCapability(gomock.Any(), models.CapabilityWatchFaceApp).
		Return(models.CapabilityInfo{Name: models.CapabilityWatchFaceApp}, nil)
	transport.EXPECT().ConnectedNodes(gomock.Any()).Return(nil, adapter.ErrTransportClosed)
	svc, _ := newTestCompanion(t, transport, &memPreference{})

	_, err := svc.GetWearableStatus(context.Background())

	require.ErrorIs(t, err, adapter.ErrTransportClosed)
}

func TestCompanionService_GetWearableStatus_LookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mock.NewMockTransport(ctrl)
	transport.EXPECT().LocalNode().Return(testPhoneNode)
	transport.EXPECT().AddListener(gomock.Any())
	transport.EXPECT().RemoveListener(gomock.Any())
	transport.EXPECT().GetCapability(gomock.Any(), models.CapabilityWatchFaceApp).Return(models.CapabilityInfo{}, adapter.ErrTransportClosed)
	svc, _ := newTestCompanion(t, transport, &memPreference{})

	_, err := svc.GetWearableStatus(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, adapter.ErrTransportClosed))
}
