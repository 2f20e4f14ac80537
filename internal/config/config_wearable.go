package config

import (
	"fmt"

	"github.com/MKhiriev/watchface-sync/internal/utils"
)

// WearableConfig is the configuration of the watch-face binary assembled from
// [StructuredConfig].
type WearableConfig struct {
	// App contains node identity and the pairing secret.
	App App
	// Adapter contains the companion address and transport timeouts.
	Adapter Adapter
	// Storage contains the local preference database settings.
	Storage Storage
	// Sync contains the state machine timeouts.
	Sync Sync
	// Workers contains background job intervals.
	Workers Workers
	// Log contains the log file location.
	Log Log
}

// GetWearableConfig builds and validates the wearable config view from the
// merged structured configuration.
func GetWearableConfig() (*WearableConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	return NewWearableConfig(cfg)
}

// NewWearableConfig maps the wearable fields of cfg, fills defaults and
// validates the result. A missing node ID is replaced by a random one.
func NewWearableConfig(cfg *StructuredConfig) (*WearableConfig, error) {
	wearableCfg := &WearableConfig{
		App: App{
			NodeID:        orString(cfg.App.NodeID, utils.NewNodeID()),
			NodeName:      orString(cfg.App.NodeName, DefaultWearableName),
			PairingSecret: cfg.App.PairingSecret,
			TokenTTL:      orDuration(cfg.App.TokenTTL, DefaultTokenTTL),
			Version:       cfg.App.Version,
		},
		Adapter: Adapter{
			PhoneAddress:   cfg.Adapter.PhoneAddress,
			RequestTimeout: orDuration(cfg.Adapter.RequestTimeout, DefaultAdapterTimeout),
			ReconnectDelay: orDuration(cfg.Adapter.ReconnectDelay, DefaultReconnectDelay),
		},
		Storage: Storage{
			DB: DB{DSN: orString(cfg.Storage.DB.DSN, DefaultWearableDSN)},
		},
		Sync: Sync{
			ResponseTimeout:  orDuration(cfg.Sync.ResponseTimeout, DefaultResponseTimeout),
			DiscoveryTimeout: orDuration(cfg.Sync.DiscoveryTimeout, DefaultDiscoveryTimeout),
		},
		Workers: Workers{
			DiscoveryInterval: cfg.Workers.DiscoveryInterval,
		},
		Log: cfg.Log,
	}

	return wearableCfg, wearableCfg.validate()
}
