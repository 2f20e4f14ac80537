package config

import (
	"fmt"

	"github.com/MKhiriev/watchface-sync/internal/utils"
)

// CompanionConfig is the configuration of the phone companion binary
// assembled from [StructuredConfig].
type CompanionConfig struct {
	// App contains node identity, the pairing secret and the version.
	App App
	// Server contains HTTP and gRPC listen settings.
	Server Server
	// Storage contains the phone preference database settings.
	Storage Storage
	// Workers contains the battery report interval.
	Workers Workers
	// Battery contains battery reader settings.
	Battery Battery
}

// GetCompanionConfig builds and validates the companion config view from the
// merged structured configuration.
func GetCompanionConfig() (*CompanionConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	return NewCompanionConfig(cfg)
}

// NewCompanionConfig maps the companion fields of cfg, fills defaults and
// validates the result.
func NewCompanionConfig(cfg *StructuredConfig) (*CompanionConfig, error) {
	fallback := cfg.Battery.FallbackLevel
	if fallback == 0 {
		fallback = DefaultFallbackBatteryLevel
	}

	companionCfg := &CompanionConfig{
		App: App{
			NodeID:        orString(cfg.App.NodeID, utils.NewNodeID()),
			NodeName:      orString(cfg.App.NodeName, DefaultCompanionName),
			PairingSecret: cfg.App.PairingSecret,
			TokenTTL:      orDuration(cfg.App.TokenTTL, DefaultTokenTTL),
			Version:       cfg.App.Version,
		},
		Server: Server{
			HTTPAddress:    orString(cfg.Server.HTTPAddress, DefaultHTTPAddress),
			GRPCAddress:    orString(cfg.Server.GRPCAddress, DefaultGRPCAddress),
			RequestTimeout: orDuration(cfg.Server.RequestTimeout, DefaultServerRequestTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: orString(cfg.Storage.DB.DSN, DefaultCompanionDSN)},
		},
		Workers: Workers{
			BatteryReportInterval: orDuration(cfg.Workers.BatteryReportInterval, DefaultBatteryReportInterval),
		},
		Battery: Battery{
			SysfsRoot:     orString(cfg.Battery.SysfsRoot, DefaultSysfsRoot),
			FallbackLevel: fallback,
		},
	}

	return companionCfg, companionCfg.validate()
}
