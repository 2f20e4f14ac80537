// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/watchface-sync/internal/adapter"
	"github.com/MKhiriev/watchface-sync/internal/config"
	"github.com/MKhiriev/watchface-sync/internal/logger"
	"github.com/MKhiriev/watchface-sync/models"
)

const companionReplyTimeout = 5 * time.Second

// companionService answers battery sync queries from wearables and keeps
// the battery reporter running while sync is activated.
type companionService struct {
	transport  adapter.Transport
	preference BoolPreference
	reporter   BatteryReportJob
	interval   time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once

	logger *logger.Logger
}

// NewCompanionService registers the phone side of the battery sync protocol
// on transport.
func NewCompanionService(transport adapter.Transport, preference BoolPreference, reporter BatteryReportJob, cfg config.Workers, logger *logger.Logger) CompanionService {
	ctx, cancel := context.WithCancel(context.Background())
	s := &companionService{
		transport:  transport,
		preference: preference,
		reporter:   reporter,
		interval:   cfg.BatteryReportInterval,
		ctx:        ctx,
		cancel:     cancel,
		logger:     logger.WithComponent("companion"),
	}

	s.logger.Info().Str("func", "NewCompanionService").Str("node", transport.LocalNode().ID).Msg("creating companion service")
	transport.AddListener(s)
	return s
}

// OnMessageReceived handles a battery sync query: the proposed value is
// persisted, echoed back to the sender and the battery reporter is started
// or stopped to match it.
func (s *companionService) OnMessageReceived(msg models.Message) {
	if msg.Path != models.PathBatterySyncQueryStatus {
		return
	}

	activated, err := models.DecodeBool(msg.Data)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "companionService.OnMessageReceived").Str("source", msg.SourceNodeID).Msg("malformed battery sync query")
		return
	}

	if err = s.preference.Set(s.ctx, activated); err != nil {
		s.logger.Error().Err(err).Str("func", "companionService.OnMessageReceived").Msg("unable to persist battery sync state")
	}

	ctx, cancel := context.WithTimeout(s.ctx, companionReplyTimeout)
	defer cancel()
	if err = s.transport.SendMessage(ctx, msg.SourceNodeID, models.PathBatterySyncActivated, models.EncodeBool(activated)); err != nil {
		s.logger.Error().Err(err).Str("func", "companionService.OnMessageReceived").Str("node", msg.SourceNodeID).Msg("unable to acknowledge battery sync query")
		return
	}

	if activated {
		s.reporter.Start(s.ctx, msg.SourceNodeID, s.interval)
	} else {
		s.reporter.Stop()
	}
}

// SendBatterySyncStatus pushes the phone-side battery sync state to the best
// connected wearable. Activating starts the battery reporter for that
// wearable unless it is already running.
func (s *companionService) SendBatterySyncStatus(ctx context.Context, activated bool) error {
	node, err := s.bestWearable(ctx)
	if err != nil {
		return err
	}

	if err = s.preference.Set(ctx, activated); err != nil {
		return fmt.Errorf("error persisting battery sync state: %w", err)
	}
	if err = s.transport.SendMessage(ctx, node.ID, models.PathBatterySyncActivated, models.EncodeBool(activated)); err != nil {
		return fmt.Errorf("error sending battery sync status to %s: %w", node.ID, err)
	}

	switch {
	case !activated:
		s.reporter.Stop()
	case !s.reporter.Running():
		s.reporter.Start(s.ctx, node.ID, s.interval)
	}
	return nil
}

// SendBatteryStatus sends percentage to the best connected wearable.
func (s *companionService) SendBatteryStatus(ctx context.Context, percentage int) error {
	data, err := models.EncodeBatteryLevel(percentage)
	if err != nil {
		return err
	}

	node, err := s.bestWearable(ctx)
	if err != nil {
		return err
	}
	if err = s.transport.SendMessage(ctx, node.ID, models.PathBatteryLevel, data); err != nil {
		return fmt.Errorf("error sending battery status to %s: %w", node.ID, err)
	}
	return nil
}

// SendPremiumStatus tells the best connected wearable whether premium
// features are unlocked.
func (s *companionService) SendPremiumStatus(ctx context.Context, premium bool) error {
	node, err := s.bestWearable(ctx)
	if err != nil {
		return err
	}
	if err = s.transport.SendMessage(ctx, node.ID, models.PathPremiumStatus, models.EncodeBool(premium)); err != nil {
		return fmt.Errorf("error sending premium status to %s: %w", node.ID, err)
	}
	return nil
}

// SendNotificationsSyncStatus pushes the notification mirroring state to the
// best connected wearable.
func (s *companionService) SendNotificationsSyncStatus(ctx context.Context, status models.NotificationsSyncStatus) error {
	data, err := models.EncodeNotificationsSyncStatus(status)
	if err != nil {
		return err
	}

	node, err := s.bestWearable(ctx)
	if err != nil {
		return err
	}
	if err = s.transport.SendMessage(ctx, node.ID, models.PathNotificationsSyncStatus, data); err != nil {
		return fmt.Errorf("error sending notifications sync status to %s: %w", node.ID, err)
	}
	return nil
}

// GetWearableStatus reports whether a wearable is connected and whether it
// runs the watch face.
func (s *companionService) GetWearableStatus(ctx context.Context) (models.WearableStatus, error) {
	_, err := s.bestWearable(ctx)
	if err == nil {
		return models.WearableAvailableAppInstalled, nil
	}
	if !errors.Is(err, ErrNoWearableConnected) {
		return "", err
	}

	nodes, err := s.transport.ConnectedNodes(ctx)
	if err != nil {
		return "", fmt.Errorf("error listing connected nodes: %w", err)
	}
	if len(nodes) > 0 {
		return models.WearableAvailableAppNotInstalled, nil
	}
	return models.WearableNotAvailable, nil
}

func (s *companionService) Close() error {
	s.once.Do(func() {
		s.transport.RemoveListener(s)
		s.cancel()
		s.reporter.Stop()
	})
	return nil
}

func (s *companionService) bestWearable(ctx context.Context) (models.Node, error) {
	info, err := s.transport.GetCapability(ctx, models.CapabilityWatchFaceApp)
	if err != nil {
		return models.Node{}, fmt.Errorf("error looking up wearables: %w", err)
	}

	node, ok := SelectBestCompanionNode(info.Nodes)
	if !ok {
		return models.Node{}, ErrNoWearableConnected
	}
	return node, nil
}
