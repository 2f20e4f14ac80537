// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged [StructuredConfig] for values that are invalid
// regardless of the binary that uses it. Missing values are checked by the
// role-specific views after defaults are applied.
func (cfg *StructuredConfig) validate() error {
	if cfg.Battery.FallbackLevel < 0 || cfg.Battery.FallbackLevel > 100 {
		return fmt.Errorf("%w: fallback level %d", ErrInvalidBatteryConfigs, cfg.Battery.FallbackLevel)
	}
	return nil
}

func (cfg *WearableConfig) validate() error {
	if cfg.App.PairingSecret == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Adapter.PhoneAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Sync.ResponseTimeout <= 0 || cfg.Sync.DiscoveryTimeout <= 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Workers.DiscoveryInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *CompanionConfig) validate() error {
	if cfg.App.PairingSecret == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.BatteryReportInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Battery.FallbackLevel < 0 || cfg.Battery.FallbackLevel > 100 {
		return ErrInvalidBatteryConfigs
	}

	return nil
}
