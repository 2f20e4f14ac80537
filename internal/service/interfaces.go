package service

import (
	"context"
	"time"

	"github.com/MKhiriev/watchface-sync/internal/adapter"
	"github.com/MKhiriev/watchface-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// BoolPreference is a persisted boolean the state machine reads and writes.
type BoolPreference interface {
	Get(ctx context.Context) (bool, error)
	Set(ctx context.Context, v bool) error
}

// IntPreference is a persisted integer that may be unset.
type IntPreference interface {
	Get(ctx context.Context) (int, bool, error)
	Set(ctx context.Context, v int) error
}

// PreferenceSyncService keeps one boolean preference in agreement with the
// paired phone. It is both a message and a capability listener.
type PreferenceSyncService interface {
	adapter.MessageListener
	adapter.CapabilityListener

	// OnNodeDiscoveryResult resolves the best companion node out of nodes.
	OnNodeDiscoveryResult(nodes []models.Node)
	// OnNodeDiscoveryFailed moves the machine to PhoneNotFound.
	OnNodeDiscoveryFailed(err error)
	// OnPhoneNodeFound starts a status check against node when appropriate.
	OnPhoneNodeFound(node models.Node)
	// RequestPreferenceChange asks the phone to switch the preference to v.
	RequestPreferenceChange(v bool)
	// OnForceDeactivate clears the persisted preference locally.
	OnForceDeactivate()
	// OnRetry returns the machine to Loading and emits a retry event.
	OnRetry()

	State() models.SyncState
	SubscribeState() (<-chan models.SyncState, func())
	SubscribeErrorEvents() (<-chan models.ErrorEvent, func())
	SubscribeRetryEvents() (<-chan struct{}, func())

	// Close cancels pending work and detaches from the transport.
	Close() error
}

// DiscoveryJob resolves the companion node in the background.
type DiscoveryJob interface {
	Start(ctx context.Context)
	Stop()
}

// BatteryReportJob periodically reports the phone battery level.
type BatteryReportJob interface {
	Start(ctx context.Context, nodeID string, interval time.Duration)
	Stop()
	Running() bool
}

// BatteryReader returns the current battery percentage.
type BatteryReader interface {
	ReadLevel(ctx context.Context) (int, error)
}

// CompanionService is the phone side of the battery sync protocol.
type CompanionService interface {
	adapter.MessageListener

	SendBatterySyncStatus(ctx context.Context, activated bool) error
	SendBatteryStatus(ctx context.Context, percentage int) error
	SendPremiumStatus(ctx context.Context, premium bool) error
	SendNotificationsSyncStatus(ctx context.Context, status models.NotificationsSyncStatus) error
	GetWearableStatus(ctx context.Context) (models.WearableStatus, error)

	Close() error
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
