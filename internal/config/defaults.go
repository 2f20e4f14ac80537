package config

import "time"

// Defaults applied by the role-specific config views when a field is unset.
const (
	DefaultResponseTimeout       = 5 * time.Second
	DefaultDiscoveryTimeout      = 5 * time.Second
	DefaultAdapterTimeout        = 5 * time.Second
	DefaultReconnectDelay        = 2 * time.Second
	DefaultTokenTTL              = 5 * time.Minute
	DefaultServerRequestTimeout  = 10 * time.Second
	DefaultBatteryReportInterval = time.Minute
	DefaultHTTPAddress           = "0.0.0.0:8080"
	DefaultGRPCAddress           = "0.0.0.0:9090"
	DefaultSysfsRoot             = "/sys/class/power_supply"
	DefaultFallbackBatteryLevel  = 100
	DefaultWearableDSN           = "wearable.db"
	DefaultCompanionDSN          = "companion.db"
	DefaultWearableName          = "wearable"
	DefaultCompanionName         = "phone"
)

func orDuration(v, def time.Duration) time.Duration {
	if v == 0 {
		return def
	}
	return v
}

func orString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
