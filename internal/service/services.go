package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/watchface-sync/internal/adapter"
	"github.com/MKhiriev/watchface-sync/internal/config"
	"github.com/MKhiriev/watchface-sync/internal/logger"
	"github.com/MKhiriev/watchface-sync/internal/store"
	"github.com/MKhiriev/watchface-sync/models"
)

// WearableServices groups the services of the watch-face binary.
type WearableServices struct {
	BatterySync  PreferenceSyncService
	Discovery    DiscoveryJob
	PhoneBattery PhoneBatteryListener
}

func NewWearableServices(ctx context.Context, transport adapter.Transport, prefs *store.Preferences, cfg *config.WearableConfig, logger *logger.Logger) *WearableServices {
	batterySync := NewBatterySyncService(transport, prefs.BatterySync(), cfg.Sync, logger)

	return &WearableServices{
		BatterySync:  batterySync,
		Discovery:    NewDiscoveryJob(transport, batterySync, cfg.Workers, logger),
		PhoneBattery: NewPhoneBatteryListener(ctx, transport, prefs.PhoneBatteryLevel(), logger),
	}
}

// Close stops discovery and detaches every listener from the transport.
func (s *WearableServices) Close() error {
	s.Discovery.Stop()
	_ = s.PhoneBattery.Close()
	return s.BatterySync.Close()
}

// CompanionServices groups the services of the phone companion binary.
type CompanionServices struct {
	Companion     CompanionService
	BatteryReport BatteryReportJob
	AppInfo       AppInfoService
}

func NewCompanionServices(transport adapter.Transport, prefs *store.Preferences, cfg *config.CompanionConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*CompanionServices, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	reporter := NewBatteryReportJob(transport, NewSysfsBatteryReader(cfg.Battery, logger), logger)

	return &CompanionServices{
		Companion:     NewCompanionService(transport, prefs.BatterySync(), reporter, cfg.Workers, logger),
		BatteryReport: reporter,
		AppInfo:       appInfo,
	}, nil
}

func (s *CompanionServices) Close() error {
	return s.Companion.Close()
}
